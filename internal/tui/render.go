package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/service/lookup"
)

// layout is the segment stream wrapped to a width.
type layout struct {
	lines []string
	// lineOf maps a segment index to the line it starts on.
	lineOf []int
}

// renderText wraps segments to width, coloring words by band and
// highlighting the segment at cursor. Literal newlines are kept; runs of
// spaces at a wrap point are dropped. width <= 0 disables wrapping.
func renderText(segments []domain.Segment, cursor, width int) layout {
	if width <= 0 {
		width = math.MaxInt
	}

	out := layout{lineOf: make([]int, len(segments))}
	var (
		b   strings.Builder
		col int
	)
	newline := func() {
		out.lines = append(out.lines, b.String())
		b.Reset()
		col = 0
	}
	place := func(text string, style lipgloss.Style) {
		w := lipgloss.Width(text)
		if col > 0 && col+w > width {
			newline()
		}
		b.WriteString(style.Render(text))
		col += w
	}

	for i, seg := range segments {
		out.lineOf[i] = len(out.lines)

		if seg.IsWord() {
			style := styleFor(seg)
			if i == cursor {
				style = cursorStyle
			}
			place(seg.Text, style)
			continue
		}

		text := strings.ReplaceAll(seg.Text, "\t", " ")
		for j, part := range strings.Split(text, "\n") {
			if j > 0 {
				newline()
			}
			for _, chunk := range chunks(part) {
				if chunk[0] != ' ' {
					place(chunk, plainStyle)
					continue
				}
				switch {
				case col == 0:
				case col+len(chunk) > width:
					newline()
				default:
					b.WriteString(chunk)
					col += len(chunk)
				}
			}
		}
	}
	newline()

	return out
}

// chunks splits s into alternating runs of spaces and non-spaces.
func chunks(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if i == start {
			continue
		}
		prev := rune(s[i-1])
		if (r == ' ') != (prev == ' ') {
			out = append(out, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// renderEntry formats a lookup result for the panel under the text.
func renderEntry(res *lookup.LookupResult, width int) string {
	e := res.Entry
	var b strings.Builder

	b.WriteString(headwordStyle.Render(e.Word))
	if e.Pronunciation != "" {
		b.WriteString("  " + e.Pronunciation)
	}
	if res.Tier != domain.TierUnknown && res.Tier != "" {
		fmt.Fprintf(&b, "  %s", styleFor(domain.Segment{Band: res.Band}).Render(fmt.Sprintf("[%s %s]", res.Tier, res.Band)))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(e.PartOfSpeech))
	b.WriteString("\n")

	for i, def := range e.Definitions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, def)
	}
	for _, ex := range e.Examples {
		fmt.Fprintf(&b, "   %q\n", ex)
	}
	if len(e.Synonyms) > 0 {
		b.WriteString(labelStyle.Render("synonyms: ") + strings.Join(e.Synonyms, ", ") + "\n")
	}
	if len(e.Antonyms) > 0 {
		b.WriteString(labelStyle.Render("antonyms: ") + strings.Join(e.Antonyms, ", ") + "\n")
	}
	if res.Translation != nil {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%s: ", res.Translation.Language)) + res.Translation.Text + "\n")
	}

	return panelStyle.Width(max(width-2, 10)).Render(strings.TrimRightFunc(b.String(), unicode.IsSpace))
}

// renderVocabulary lists saved entries, one per line.
func renderVocabulary(entries []domain.VocabularyEntry, total int) string {
	if len(entries) == 0 {
		return statusStyle.Render("No saved words yet. Press s on a word to save it.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(fmt.Sprintf("Vocabulary (%d)", total)))
	for _, e := range entries {
		line := headwordStyle.Render(e.Word)
		if len(e.Definitions) > 0 {
			line += "  " + e.Definitions[0]
		}
		if e.Note != "" {
			line += "  " + labelStyle.Render(e.Note)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
