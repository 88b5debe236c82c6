package document

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_PlainText(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "fox.txt", "\r\nThe quick brown fox.\r\nJumps.\r\n")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fox", doc.Title)
	assert.Equal(t, "Text", doc.Format)
	assert.Equal(t, "The quick brown fox.\nJumps.", doc.Text)
}

func TestLoad_Markdown(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "notes.md", "# Title\n\nSome **bold** text with a [link](https://example.com).\n\n```\ncode()\n```\n- item\n> quote\n")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Markdown", doc.Format)
	assert.Equal(t, "Title\n\nSome bold text with a link.\n\nitem\nquote", doc.Text)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := Load(writeFile(t, "bad.txt", "caf\xe9"))
	assert.ErrorIs(t, err, domain.ErrMalformedInput)

	_, err = Load(writeFile(t, "empty.txt", "  \n\t"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	src := `<html>
		<head><title>Ignored</title><style>p { color: red }</style></head>
		<body>
			<h1>Chapter 1</h1>
			<p>This is the <b>first</b>
			   paragraph.</p>
			<div>Some <span>nested</span> text.<br>After break.</div>
			<script>var x = 1;</script>
		</body>
	</html>`

	got, err := htmlToText(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "Chapter 1\nThis is the first paragraph.\nSome nested text.\nAfter break.", got)
}

func TestLoad_EPUB(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "book.epub")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	files := []struct{ name, body string }{
		{"mimetype", "application/epub+zip"},
		{"META-INF/container.xml", `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`},
		{"content.opf", `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0" unique-identifier="id">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title>Book</dc:title></metadata>
  <manifest>
    <item id="c1" href="c1.xhtml" media-type="application/xhtml+xml"/>
    <item id="c2" href="c2.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine>
    <itemref idref="c1"/>
    <itemref idref="c2"/>
  </spine>
</package>`},
		{"c1.xhtml", `<html><body><h1>One</h1><p>The fox ran.</p></body></html>`},
		{"c2.xhtml", `<html><body><p>The end.</p></body></html>`},
	}
	for _, file := range files {
		w, err := zw.Create(file.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(file.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EPUB", doc.Format)
	assert.Equal(t, "One\nThe fox ran.\n\nThe end.", doc.Text)
}

func TestSupportedFormats(t *testing.T) {
	t.Parallel()

	got := SupportedFormats()
	assert.Contains(t, got, "EPUB (.epub)")
	assert.Contains(t, got, "Markdown (.md, .markdown)")
}
