// Package export turns comment record sequences into the textual
// output formats: CSV for file export, TSV for rich clipboard paste,
// and a human-readable text block. Every renderer is a pure function
// of its inputs.
package export

// Field names one of the fixed set of exportable columns.
type Field string

const (
	FieldPage     Field = "Page"
	FieldAuthor   Field = "Author"
	FieldModified Field = "Modified"
	FieldComment  Field = "Comment"
)

// fieldOrder fixes the column order of tabular output regardless of
// which columns are enabled.
var fieldOrder = []Field{FieldPage, FieldAuthor, FieldModified, FieldComment}

// KnownField reports whether name is one of the exportable columns.
func KnownField(name string) bool {
	switch Field(name) {
	case FieldPage, FieldAuthor, FieldModified, FieldComment:
		return true
	}
	return false
}

// ColumnProjection records which columns are included in exports.
// Comment is always included; attempts to disable it are ignored. The
// projection is a user preference that outlives document loads.
type ColumnProjection struct {
	Page     bool
	Author   bool
	Modified bool
}

// DefaultProjection enables every column.
func DefaultProjection() ColumnProjection {
	return ColumnProjection{Page: true, Author: true, Modified: true}
}

// Set toggles a column by name. Setting FieldComment has no effect,
// and unknown fields are ignored.
func (p *ColumnProjection) Set(field Field, on bool) {
	switch field {
	case FieldPage:
		p.Page = on
	case FieldAuthor:
		p.Author = on
	case FieldModified:
		p.Modified = on
	}
}

// Enabled reports whether a column is included in exports. Comment is
// always enabled.
func (p ColumnProjection) Enabled(field Field) bool {
	switch field {
	case FieldPage:
		return p.Page
	case FieldAuthor:
		return p.Author
	case FieldModified:
		return p.Modified
	case FieldComment:
		return true
	}
	return false
}

// Fields returns the enabled columns in the fixed output order.
func (p ColumnProjection) Fields() []Field {
	fields := make([]Field, 0, len(fieldOrder))
	for _, f := range fieldOrder {
		if p.Enabled(f) {
			fields = append(fields, f)
		}
	}
	return fields
}
