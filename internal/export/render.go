package export

import (
	"strconv"
	"strings"

	"github.com/annotext/mcp-pdf-comments/internal/comments"
)

// fieldValue renders one column of a record as its output string.
func fieldValue(rec comments.CommentRecord, field Field) string {
	switch field {
	case FieldPage:
		return strconv.Itoa(rec.Page)
	case FieldAuthor:
		return rec.Author
	case FieldModified:
		return rec.Modified
	case FieldComment:
		return rec.Comment
	}
	return ""
}

// csvEscape quotes a CSV field value. When force is false the value
// passes through verbatim unless it contains a comma, a double quote,
// or a line terminator. Quoting wraps the value in double quotes and
// doubles any internal quotes.
func csvEscape(value string, force bool) string {
	if !force && !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// RenderCSV renders the records as a comma-delimited table. The
// comment column is always quoted because it is free-form text; other
// columns are quoted only when their content requires it. An empty
// record set yields an empty string.
func RenderCSV(records []comments.CommentRecord, proj ColumnProjection) string {
	fields := proj.Fields()
	if len(records) == 0 || len(fields) == 0 {
		return ""
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(f))
	}
	for _, rec := range records {
		b.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvEscape(fieldValue(rec, f), f == FieldComment))
		}
	}
	return b.String()
}

// RenderTSV renders the records as a tab-delimited table for
// spreadsheet paste. Every field is quoted, empty ones included, so
// that embedded newlines survive the paste unambiguously.
func RenderTSV(records []comments.CommentRecord, proj ColumnProjection) string {
	fields := proj.Fields()
	if len(records) == 0 || len(fields) == 0 {
		return ""
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(csvEscape(string(f), true))
	}
	for _, rec := range records {
		b.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(csvEscape(fieldValue(rec, f), true))
		}
	}
	return b.String()
}

// RenderText renders the records as a human-readable block. Each
// record becomes "<prefix> - <comment>" where the prefix is built from
// the enabled non-comment columns (page as "P<number>", author and
// modified only when non-empty), joined with ", ". Records are
// separated by a blank line.
func RenderText(records []comments.CommentRecord, proj ColumnProjection) string {
	if len(records) == 0 {
		return ""
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		var parts []string
		if proj.Enabled(FieldPage) {
			parts = append(parts, "P"+strconv.Itoa(rec.Page))
		}
		if proj.Enabled(FieldAuthor) && rec.Author != "" {
			parts = append(parts, rec.Author)
		}
		if proj.Enabled(FieldModified) && rec.Modified != "" {
			parts = append(parts, rec.Modified)
		}
		prefix := strings.Join(parts, ", ")

		switch {
		case !proj.Enabled(FieldComment):
			lines = append(lines, prefix)
		case prefix == "":
			lines = append(lines, rec.Comment)
		default:
			lines = append(lines, prefix+" - "+rec.Comment)
		}
	}
	return strings.Join(lines, "\n\n")
}
