// Package document loads local files as plain reading text. Plain text,
// Markdown and EPUB are supported.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

// Document is a loaded file reduced to text.
type Document struct {
	Title  string
	Format string
	Text   string
}

type format struct {
	name       string
	extensions []string
	extract    func(path string) (string, error)
}

var formats = []format{
	{name: "EPUB", extensions: []string{".epub"}, extract: extractEPUB},
	{name: "Markdown", extensions: []string{".md", ".markdown"}, extract: extractMarkdown},
}

// Load reads path and returns its text. Unknown extensions are read as
// plain UTF-8 text.
func Load(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	for _, f := range formats {
		for _, e := range f.extensions {
			if ext != e {
				continue
			}
			text, err := f.extract(path)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			return newDocument(title, f.name, text)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return newDocument(title, "Text", string(data))
}

// SupportedFormats lists the recognised formats with their extensions.
func SupportedFormats() []string {
	out := make([]string, 0, len(formats)+1)
	for _, f := range formats {
		out = append(out, f.name+" ("+strings.Join(f.extensions, ", ")+")")
	}
	return append(out, "Text (any other extension)")
}

func newDocument(title, format, text string) (*Document, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%s %q: %w: not valid UTF-8", format, title, domain.ErrMalformedInput)
	}
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil, fmt.Errorf("%s %q: no readable text: %w", format, title, domain.ErrNotFound)
	}
	return &Document{Title: title, Format: format, Text: text}, nil
}
