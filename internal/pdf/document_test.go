package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/annotext/mcp-pdf-comments/internal/comments"
)

// buildPDF assembles a minimal single-xref PDF from numbered object
// bodies, computing byte offsets while writing so the cross-reference
// table is always consistent.
func buildPDF(objects []string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefPos)
	return buf.Bytes()
}

// twoPagePDF carries one text comment per page plus a highlight that
// extraction must skip.
func twoPagePDF() []byte {
	return buildPDF([]string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Annots [5 0 R] >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Annots [6 0 R 7 0 R] >>",
		"<< /Type /Annot /Subtype /Text /Rect [10 10 30 30] /Contents (Looks good) /T (Alice) >>",
		"<< /Type /Annot /Subtype /Text /Rect [10 10 30 30] /Contents (Fix this) /M (D:20230101120000) >>",
		"<< /Type /Annot /Subtype /Highlight /Rect [10 10 30 30] /Contents (skip me) >>",
	})
}

func writeTempPDF(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.pdf")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write test PDF: %v", err)
	}
	return path
}

func TestOpen_Errors(t *testing.T) {
	tempDir := t.TempDir()

	textFile := filepath.Join(tempDir, "notes.txt")
	if err := os.WriteFile(textFile, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	emptyPDF := filepath.Join(tempDir, "empty.pdf")
	if err := os.WriteFile(emptyPDF, nil, 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	garbagePDF := filepath.Join(tempDir, "garbage.pdf")
	if err := os.WriteFile(garbagePDF, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	largePDF := filepath.Join(tempDir, "large.pdf")
	if err := os.WriteFile(largePDF, make([]byte, 2048), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name        string
		path        string
		maxFileSize int64
	}{
		{name: "empty path", path: "", maxFileSize: 1 << 20},
		{name: "non-existent file", path: filepath.Join(tempDir, "missing.pdf"), maxFileSize: 1 << 20},
		{name: "directory", path: tempDir + string(filepath.Separator) + "dir.pdf", maxFileSize: 1 << 20},
		{name: "wrong extension", path: textFile, maxFileSize: 1 << 20},
		{name: "empty file", path: emptyPDF, maxFileSize: 1 << 20},
		{name: "garbage content", path: garbagePDF, maxFileSize: 1 << 20},
		{name: "file too large", path: largePDF, maxFileSize: 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name == "directory" {
				if err := os.MkdirAll(tt.path, 0o750); err != nil {
					t.Fatalf("failed to create dir: %v", err)
				}
			}

			doc, err := Open(tt.path, tt.maxFileSize)
			if err == nil {
				doc.Close()
				t.Fatal("expected error but got none")
			}
			if !errors.Is(err, comments.ErrParseFailure) {
				t.Errorf("error should wrap ErrParseFailure, got: %v", err)
			}
		})
	}
}

func TestOpen_ValidDocument(t *testing.T) {
	path := writeTempPDF(t, twoPagePDF())

	doc, err := Open(path, 1<<20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Close()

	if doc.NumPages() != 2 {
		t.Errorf("NumPages() = %d, want 2", doc.NumPages())
	}
	if doc.Path() != path {
		t.Errorf("Path() = %q, want %q", doc.Path(), path)
	}
}

func TestDocument_PageAnnotations(t *testing.T) {
	path := writeTempPDF(t, twoPagePDF())

	doc, err := Open(path, 1<<20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Close()

	page1 := doc.PageAnnotations(1)
	if len(page1) != 1 {
		t.Fatalf("page 1: got %d annotations, want 1", len(page1))
	}
	if subtype, ok := page1[0].Name("Subtype"); !ok || subtype != "Text" {
		t.Errorf("page 1 subtype = %q (ok=%v), want Text", subtype, ok)
	}
	if contents, ok := page1[0].String("Contents"); !ok || contents != "Looks good" {
		t.Errorf("page 1 contents = %q (ok=%v), want Looks good", contents, ok)
	}
	if author, ok := page1[0].String("T"); !ok || author != "Alice" {
		t.Errorf("page 1 author = %q (ok=%v), want Alice", author, ok)
	}

	page2 := doc.PageAnnotations(2)
	if len(page2) != 2 {
		t.Fatalf("page 2: got %d annotations, want 2", len(page2))
	}
	if m, ok := page2[0].String("M"); !ok || m != "D:20230101120000" {
		t.Errorf("page 2 timestamp = %q (ok=%v)", m, ok)
	}
	if subtype, _ := page2[1].Name("Subtype"); subtype != "Highlight" {
		t.Errorf("page 2 second subtype = %q, want Highlight", subtype)
	}
}

func TestDocument_AccessorMisses(t *testing.T) {
	path := writeTempPDF(t, twoPagePDF())

	doc, err := Open(path, 1<<20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Close()

	annot := doc.PageAnnotations(1)[0]

	if _, ok := annot.String("NoSuchKey"); ok {
		t.Error("missing key should not resolve as string")
	}
	if _, ok := annot.String("Subtype"); ok {
		t.Error("name value should not resolve as string")
	}
	if _, ok := annot.Name("Contents"); ok {
		t.Error("string value should not resolve as name")
	}
	if _, ok := annot.Object("Contents"); ok {
		t.Error("string value should not resolve as object")
	}
	if _, ok := annot.Strings("Contents"); ok {
		t.Error("string value should not resolve as array")
	}
	if _, ok := annot.JSON("Contents"); ok {
		t.Error("string value should not resolve via JSON fallback")
	}
}

func TestExtractFromRealDocument(t *testing.T) {
	path := writeTempPDF(t, twoPagePDF())

	doc, err := Open(path, 1<<20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Close()

	records, empty := comments.NewExtractor().Extract(doc)
	if empty {
		t.Fatal("expected records, got empty result")
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	want := []comments.CommentRecord{
		{Page: 1, Author: "Alice", Comment: "Looks good", Modified: ""},
		{Page: 2, Author: "", Comment: "Fix this", Modified: "2023-01-01 12:00:00Z"},
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}
