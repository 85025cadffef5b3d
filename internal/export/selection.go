package export

import (
	"sort"

	"github.com/annotext/mcp-pdf-comments/internal/comments"
)

// RowSelection is an explicit set of record indices into the canonical
// sequence. An empty selection means "all records".
type RowSelection []int

// Subset returns the records the selection applies to, always in the
// original record order no matter what order the indices were added
// in. An empty selection yields every record; indices outside the
// sequence are ignored.
func Subset(records []comments.CommentRecord, sel RowSelection) []comments.CommentRecord {
	if len(sel) == 0 {
		return records
	}

	indices := make([]int, 0, len(sel))
	seen := make(map[int]bool, len(sel))
	for _, i := range sel {
		if i < 0 || i >= len(records) || seen[i] {
			continue
		}
		seen[i] = true
		indices = append(indices, i)
	}
	sort.Ints(indices)

	subset := make([]comments.CommentRecord, 0, len(indices))
	for _, i := range indices {
		subset = append(subset, records[i])
	}
	return subset
}
