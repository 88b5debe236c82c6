package tokenize

import "github.com/heartmarshall/clicktionary-backend/internal/domain"

// Summary describes the difficulty make-up of a tokenized text.
type Summary struct {
	Words   int                 `json:"words"`
	Unique  int                 `json:"unique"`
	ByBand  map[domain.Band]int `json:"byBand"`
	Unknown []string            `json:"unknown,omitempty"`
}

// Summarize counts word segments per band. Unique counts distinct keys;
// Unknown lists distinct unclassified keys in first-seen order.
func Summarize(segments []domain.Segment) Summary {
	s := Summary{ByBand: make(map[domain.Band]int, len(domain.Bands))}
	for _, b := range domain.Bands {
		s.ByBand[b] = 0
	}

	seen := make(map[string]struct{})
	for _, seg := range segments {
		if !seg.IsWord() {
			continue
		}
		s.Words++
		s.ByBand[seg.Band]++

		if _, ok := seen[seg.Key]; ok {
			continue
		}
		seen[seg.Key] = struct{}{}
		s.Unique++
		if seg.Band == domain.BandUnknown {
			s.Unknown = append(s.Unknown, seg.Key)
		}
	}
	return s
}
