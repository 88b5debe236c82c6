package document

import (
	"os"
	"regexp"
	"strings"
)

var (
	headerRegex = regexp.MustCompile(`^\s{0,3}#{1,6}\s+`)
	quoteRegex  = regexp.MustCompile(`^\s*>\s?`)
	bulletRegex = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+`)
	linkRegex   = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	emphasis    = strings.NewReplacer("**", "", "__", "", "`", "")
)

func extractMarkdown(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return stripMarkdown(string(data)), nil
}

// stripMarkdown removes block markers, link targets and emphasis so only
// the prose remains. Fenced code blocks are dropped.
func stripMarkdown(s string) string {
	var (
		out     []string
		inFence bool
	)
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		line = headerRegex.ReplaceAllString(line, "")
		line = quoteRegex.ReplaceAllString(line, "")
		line = bulletRegex.ReplaceAllString(line, "")
		line = linkRegex.ReplaceAllString(line, "$1")
		out = append(out, emphasis.Replace(line))
	}
	return strings.Join(out, "\n")
}
