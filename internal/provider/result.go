// Package provider defines the raw shapes returned by external dictionary
// sources before normalization. Nothing in these types is trusted: any list
// may be empty and any string may be blank.
package provider

// RawEntry is a dictionary record as delivered by a lookup service.
type RawEntry struct {
	Word         string
	Phonetics    []RawPhonetic
	Meanings     []RawMeaning
	Translations map[string]string
}

// RawPhonetic is one pronunciation variant. Either field may be empty.
type RawPhonetic struct {
	Text  string
	Audio string
}

// RawMeaning groups sub-definitions under one part of speech.
type RawMeaning struct {
	PartOfSpeech string
	Definitions  []RawDefinition
	Synonyms     []string
	Antonyms     []string
}

// RawDefinition is a single sense inside a meaning group.
type RawDefinition struct {
	Definition string
	Example    string
	Synonyms   []string
	Antonyms   []string
}
