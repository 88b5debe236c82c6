package domain

import "strings"

// Tier is a CEFR proficiency level assigned to a word.
type Tier string

const (
	TierA1      Tier = "A1"
	TierA2      Tier = "A2"
	TierB1      Tier = "B1"
	TierB2      Tier = "B2"
	TierC1      Tier = "C1"
	TierC2      Tier = "C2"
	TierUnknown Tier = "UNKNOWN"
)

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierA1, TierA2, TierB1, TierB2, TierC1, TierC2, TierUnknown:
		return true
	}
	return false
}

// ParseTier converts a CEFR code such as "b2" into a Tier.
// Anything that is not a CEFR code yields TierUnknown.
func ParseTier(s string) Tier {
	t := Tier(strings.ToUpper(strings.TrimSpace(s)))
	if t == TierUnknown || !t.IsValid() {
		return TierUnknown
	}
	return t
}

// Band maps the tier onto the coarse difficulty band used for display.
func (t Tier) Band() Band {
	switch t {
	case TierA1, TierA2:
		return BandBasic
	case TierB1, TierB2:
		return BandIntermediate
	case TierC1, TierC2:
		return BandAdvanced
	}
	return BandUnknown
}

// Band is the display difficulty of a word.
type Band string

const (
	BandBasic        Band = "basic"
	BandIntermediate Band = "intermediate"
	BandAdvanced     Band = "advanced"
	BandUnknown      Band = "unknown"
)

// Bands lists every band in display order.
var Bands = []Band{BandBasic, BandIntermediate, BandAdvanced, BandUnknown}

func (b Band) String() string { return string(b) }

func (b Band) IsValid() bool {
	switch b {
	case BandBasic, BandIntermediate, BandAdvanced, BandUnknown:
		return true
	}
	return false
}
