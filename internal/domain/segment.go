package domain

// SegmentKind distinguishes clickable words from literal text.
type SegmentKind string

const (
	SegmentWord    SegmentKind = "word"
	SegmentLiteral SegmentKind = "literal"
)

// Segment is one piece of tokenized text. Concatenating the Text of every
// segment of a tokenization reproduces the input.
//
// Key, Tier, and Band are set only for word segments. Index is the position
// of the segment in its sequence.
type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Text  string      `json:"text"`
	Key   string      `json:"key,omitempty"`
	Tier  Tier        `json:"tier,omitempty"`
	Band  Band        `json:"band,omitempty"`
	Index int         `json:"index"`
}

// NewWordSegment creates a classified word segment.
func NewWordSegment(index int, text, key string, tier Tier) Segment {
	return Segment{
		Kind:  SegmentWord,
		Text:  text,
		Key:   key,
		Tier:  tier,
		Band:  tier.Band(),
		Index: index,
	}
}

// NewLiteralSegment creates a pass-through segment.
func NewLiteralSegment(index int, text string) Segment {
	return Segment{Kind: SegmentLiteral, Text: text, Index: index}
}

// IsWord reports whether the segment is a clickable word.
func (s Segment) IsWord() bool { return s.Kind == SegmentWord }
