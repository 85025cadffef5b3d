package export

import "fmt"

// Format selects one of the output representations.
type Format string

const (
	FormatCSV  Format = "csv"  // comma-separated, for file export
	FormatTSV  Format = "tsv"  // tab-separated, for rich clipboard paste
	FormatText Format = "text" // human-readable block
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatTSV, FormatText:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown export format: %q (must be csv, tsv, or text)", s)
}

// Extension returns the file extension used when saving this format.
func (f Format) Extension() string {
	if f == FormatCSV {
		return "csv"
	}
	return "txt"
}

// MIMEType returns the content type handed to the file-save sink.
func (f Format) MIMEType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "text/plain"
}
