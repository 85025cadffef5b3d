package comments

// CommentRecord is the canonical form of one extracted text annotation.
// Records are immutable once created; a new document load rebuilds the
// whole sequence.
type CommentRecord struct {
	Page     int    // 1-based page number, always >= 1
	Author   string // declared creator, possibly empty
	Comment  string // trimmed annotation text, never empty
	Modified string // "YYYY-MM-DD HH:MM:SSZ" or empty
}

// Object is an untyped annotation dictionary as yielded by the PDF
// parser. PDF producers disagree on which fields are present and in
// what shape, so accessors report ok=false for anything missing or
// mistyped instead of failing. A malformed annotation must never be
// able to abort a whole extraction run.
type Object interface {
	// String returns the string value stored under key.
	String(key string) (string, bool)

	// Name returns the PDF name value stored under key.
	Name(key string) (string, bool)

	// Object returns the nested dictionary stored under key.
	Object(key string) (Object, bool)

	// Strings returns the string elements of the array stored under
	// key. Non-string elements are omitted.
	Strings(key string) ([]string, bool)

	// JSON returns a JSON rendering of the dictionary stored under
	// key. It is the last-resort source for annotation text.
	JSON(key string) (string, bool)
}

// Document is a loaded PDF exposing its pages' raw annotations.
type Document interface {
	// NumPages returns the page count of the document.
	NumPages() int

	// PageAnnotations returns the raw annotation objects of the given
	// 1-based page, in the order the parser yields them. Pages without
	// annotations return an empty slice.
	PageAnnotations(page int) []Object
}
