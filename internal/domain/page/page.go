// Package page holds the served HTML document.
// A Page is read from disk exactly once and never changes afterwards, so it
// can be shared by any number of request goroutines without locking.
package page

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// DefaultFile is served when no file argument is given.
const DefaultFile = "loading-page.html"

// Page is the immutable content of the served file.
type Page struct {
	path    string
	content []byte
}

// Load reads path from fs in full. Empty files are valid content.
func Load(fs afero.Fs, path string) (*Page, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", path, err)
	}
	return &Page{path: path, content: content}, nil
}

// New wraps already-loaded bytes. The slice is copied.
func New(path string, content []byte) *Page {
	return &Page{path: path, content: bytes.Clone(content)}
}

// Path returns the file the page was loaded from.
func (p *Page) Path() string {
	return p.path
}

// Len returns the content length in bytes.
func (p *Page) Len() int {
	return len(p.content)
}

// Bytes returns a copy of the content.
func (p *Page) Bytes() []byte {
	return bytes.Clone(p.content)
}

// WriteTo writes the content to w without copying it.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.content)
	return int64(n), err
}
