// Package normalize turns untrusted dictionary payloads into bounded,
// display-ready word entries.
package normalize

import (
	"strings"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/provider"
)

// Caps bounds the list fields of a normalized entry.
type Caps struct {
	Definitions int
	Examples    int
	Synonyms    int
	Antonyms    int
}

var (
	// CapsCompact is the default policy.
	CapsCompact = Caps{Definitions: 3, Examples: 2, Synonyms: 5, Antonyms: 5}
	// CapsRich shows one more example and one more related word of each kind.
	CapsRich = Caps{Definitions: 3, Examples: 3, Synonyms: 6, Antonyms: 6}
)

// CapsFor returns the caps policy with the given name ("compact" or "rich").
func CapsFor(name string) (Caps, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "compact":
		return CapsCompact, true
	case "rich":
		return CapsRich, true
	}
	return Caps{}, false
}

// clamped returns c with negative limits raised to zero.
func (c Caps) clamped() Caps {
	return Caps{
		Definitions: max(c.Definitions, 0),
		Examples:    max(c.Examples, 0),
		Synonyms:    max(c.Synonyms, 0),
		Antonyms:    max(c.Antonyms, 0),
	}
}

// Normalize flattens raw into a WordEntry bounded by caps.
//
// A nil raw means the lookup service had nothing for the word and yields a
// *domain.WordNotFoundError carrying requestedWord. Missing optional fields
// never cause an error. A negative limit in caps is treated as zero.
func Normalize(raw *provider.RawEntry, requestedWord string, caps Caps) (*domain.WordEntry, error) {
	if raw == nil {
		return nil, domain.NewWordNotFound(requestedWord)
	}
	caps = caps.clamped()

	word := strings.TrimSpace(raw.Word)
	if word == "" {
		word = requestedWord
	}

	entry := &domain.WordEntry{
		Word:          word,
		Pronunciation: pronunciation(raw.Phonetics, word),
		Audio:         audio(raw.Phonetics),
		PartOfSpeech:  domain.FallbackPartOfSpeech,
		Definitions:   make([]string, 0, caps.Definitions),
		Examples:      make([]string, 0, caps.Examples),
	}

	if len(raw.Meanings) > 0 && strings.TrimSpace(raw.Meanings[0].PartOfSpeech) != "" {
		entry.PartOfSpeech = raw.Meanings[0].PartOfSpeech
	}

	synonyms := newBoundedSet(caps.Synonyms)
	antonyms := newBoundedSet(caps.Antonyms)

	for _, m := range raw.Meanings {
		synonyms.add(m.Synonyms...)
		antonyms.add(m.Antonyms...)

		for _, d := range m.Definitions {
			if len(entry.Definitions) < caps.Definitions && strings.TrimSpace(d.Definition) != "" {
				entry.Definitions = append(entry.Definitions, d.Definition)
			}
			if len(entry.Examples) < caps.Examples && strings.TrimSpace(d.Example) != "" {
				entry.Examples = append(entry.Examples, d.Example)
			}
			synonyms.add(d.Synonyms...)
			antonyms.add(d.Antonyms...)
		}
	}

	entry.Synonyms = synonyms.items
	entry.Antonyms = antonyms.items

	if len(raw.Translations) > 0 {
		entry.Translations = make(map[string]string, len(raw.Translations))
		for lang, text := range raw.Translations {
			entry.Translations[lang] = text
		}
	}

	return entry, nil
}

func pronunciation(phonetics []provider.RawPhonetic, word string) string {
	for _, p := range phonetics {
		if strings.TrimSpace(p.Text) != "" {
			return p.Text
		}
	}
	return "/" + word + "/"
}

func audio(phonetics []provider.RawPhonetic) string {
	for _, p := range phonetics {
		if p.Audio != "" {
			return p.Audio
		}
	}
	return ""
}

// boundedSet keeps the first occurrence of each string, up to limit items.
type boundedSet struct {
	limit int
	seen  map[string]struct{}
	items []string
}

func newBoundedSet(limit int) *boundedSet {
	return &boundedSet{
		limit: limit,
		seen:  make(map[string]struct{}),
		items: make([]string, 0, limit),
	}
}

func (s *boundedSet) add(values ...string) {
	for _, v := range values {
		if len(s.items) >= s.limit {
			return
		}
		if v == "" {
			continue
		}
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}
