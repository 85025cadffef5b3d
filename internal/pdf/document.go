// Package pdf opens PDF files and exposes their pages' raw annotation
// dictionaries in the shape the comment extractor consumes.
package pdf

import (
	"fmt"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/annotext/mcp-pdf-comments/internal/comments"
)

// Document is an open PDF file. It satisfies comments.Document.
type Document struct {
	file   *os.File
	reader *pdflib.Reader
	path   string
}

// Open validates basic file properties and parses the PDF at path.
// A failure here is the single hard failure of a document load; no
// partial records ever accompany it.
func Open(path string, maxFileSize int64) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", comments.ErrParseFailure)
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: file does not exist: %s", comments.ErrParseFailure, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot access file: %v", comments.ErrParseFailure, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: path is a directory, not a file: %s", comments.ErrParseFailure, path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return nil, fmt.Errorf("%w: file is not a PDF: %s", comments.ErrParseFailure, path)
	}
	if fileInfo.Size() == 0 {
		return nil, fmt.Errorf("%w: file is empty: %s", comments.ErrParseFailure, path)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("%w: file too large: %d bytes (max: %d bytes)",
			comments.ErrParseFailure, fileInfo.Size(), maxFileSize)
	}

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", comments.ErrParseFailure, err)
	}

	return &Document{file: f, reader: reader, path: path}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// PageAnnotations returns the raw annotation dictionaries of the given
// 1-based page in file order. A malformed page yields no annotations
// rather than an error.
func (d *Document) PageAnnotations(pageNum int) (annots []comments.Object) {
	defer func() {
		if recover() != nil {
			annots = nil
		}
	}()

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil
	}

	arr := page.V.Key("Annots")
	if arr.Kind() != pdflib.Array {
		return nil
	}

	for i := 0; i < arr.Len(); i++ {
		if v := arr.Index(i); v.Kind() == pdflib.Dict {
			annots = append(annots, wrapValue(v))
		}
	}
	return annots
}
