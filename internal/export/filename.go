package export

import (
	"path/filepath"
	"strings"
)

// fallbackBaseName is used when the original document name is unknown.
const fallbackBaseName = "file"

// ExportFilename derives the suggested save-as name for an export of
// the named source document: "<base>_comments.<ext>", where base is
// the original file name without its extension.
func ExportFilename(original string, format Format) string {
	base := filepath.Base(original)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = fallbackBaseName
	}
	return base + "_comments." + format.Extension()
}
