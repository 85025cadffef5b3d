package comments

import "strings"

// textAnnotationSubtype is the PDF sticky-note comment annotation kind.
// Every other subtype (highlights, stamps, links, widgets, ink) is
// deliberately excluded from extraction.
const textAnnotationSubtype = "Text"

// fieldSource resolves one candidate location of a logical field on a
// raw annotation object. Sources are tried in order and the first one
// yielding a non-empty string wins.
type fieldSource func(Object) (string, bool)

// stringField reads a plain string field.
func stringField(key string) fieldSource {
	return func(o Object) (string, bool) {
		return o.String(key)
	}
}

// nestedStringField reads a string sub-field of an object-shaped field.
func nestedStringField(key, subKey string) fieldSource {
	return func(o Object) (string, bool) {
		inner, ok := o.Object(key)
		if !ok {
			return "", false
		}
		return inner.String(subKey)
	}
}

// joinedListField reads a list-shaped field joined with single spaces.
func joinedListField(key string) fieldSource {
	return func(o Object) (string, bool) {
		parts, ok := o.Strings(key)
		if !ok || len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, " "), true
	}
}

// jsonField stringifies an object-shaped field as a last resort.
func jsonField(key string) fieldSource {
	return func(o Object) (string, bool) {
		return o.JSON(key)
	}
}

// commentSources lists the places PDF producers have been seen to put
// the annotation text, most direct first.
var commentSources = []fieldSource{
	stringField("Contents"),
	nestedStringField("Contents", "Str"),
	nestedStringField("Contents", "Alt"),
	joinedListField("Contents"),
	jsonField("Contents"),
	stringField("ContentsObj"),
	nestedStringField("ContentsObj", "Str"),
	nestedStringField("ContentsObj", "Alt"),
}

// authorSources lists the known author/title field variants.
var authorSources = []fieldSource{
	nestedStringField("TitleObj", "Str"),
	stringField("T"),
	stringField("Title"),
	stringField("Author"),
	stringField("UserName"),
	stringField("TU"),
}

// modifiedSources lists the known modification-timestamp fields.
var modifiedSources = []fieldSource{
	stringField("M"),
	stringField("ModDate"),
	stringField("CreationDate"),
}

// Extractor walks a parsed document and produces the canonical ordered
// comment record sequence. It holds no state between invocations.
type Extractor struct{}

// NewExtractor creates a new comment extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes every page of doc in ascending order and returns
// the comment records found, ordered by page and then by the order the
// parser yielded the annotations. The returned flag is true when the
// document contained no extractable comments; that is an advisory, not
// an error. Problems in a single annotation's field shape only cause
// that annotation to be skipped.
func (e *Extractor) Extract(doc Document) ([]CommentRecord, bool) {
	records := []CommentRecord{}

	for page := 1; page <= doc.NumPages(); page++ {
		for _, annot := range doc.PageAnnotations(page) {
			if subtypeOf(annot) != textAnnotationSubtype {
				continue
			}

			comment := strings.TrimSpace(firstNonEmpty(annot, commentSources))
			if comment == "" {
				continue
			}

			records = append(records, CommentRecord{
				Page:     page,
				Author:   firstNonEmpty(annot, authorSources),
				Comment:  comment,
				Modified: NormalizeDate(firstNonEmpty(annot, modifiedSources)),
			})
		}
	}

	return records, len(records) == 0
}

// subtypeOf determines the annotation kind from the first of the
// subtype field variants found. Producers store it as a PDF name or,
// in sloppier files, as a plain string.
func subtypeOf(o Object) string {
	for _, key := range []string{"Subtype", "AnnotationType"} {
		if name, ok := o.Name(key); ok && name != "" {
			return name
		}
		if s, ok := o.String(key); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstNonEmpty runs the sources in order and returns the first
// non-empty value, or "" when none match.
func firstNonEmpty(o Object, sources []fieldSource) string {
	for _, src := range sources {
		if s, ok := src(o); ok && s != "" {
			return s
		}
	}
	return ""
}
