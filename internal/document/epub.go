package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
)

// extractEPUB concatenates the spine documents of the first rootfile.
// Unreadable chapters are skipped.
func extractEPUB(path string) (string, error) {
	rc, err := epub.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return "", errors.New("no rootfiles found in epub")
	}

	book := rc.Rootfiles[0]
	var out strings.Builder

	for _, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		r, err := ref.Item.Open()
		if err != nil {
			continue
		}
		text, err := htmlToText(r)
		r.Close()
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			out.WriteString(text)
			out.WriteString("\n\n")
		}
	}

	return out.String(), nil
}
