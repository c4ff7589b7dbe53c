// Package source turns raw document files into the docmodel consumed
// by the outline engine. PDF is the interesting case: positioned
// spans with font metadata. Formats with structural markup (DOCX,
// HTML, Markdown) surface their headings as a native TOC instead.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/prakriti82/adobe-hackathon-round-1a/internal/docmodel"
)

// Source converts raw document bytes into a docmodel.Document.
type Source interface {
	Load(r io.Reader, filename string) (*docmodel.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// stem strips the extension from a filename.
func stem(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
