package comments

import "errors"

// Failure taxonomy for whole-document and export-boundary problems.
// Per-annotation field issues are absorbed as skips and never surface
// through any of these.
var (
	// ErrParseFailure means the document could not be opened or read
	// at all. No records accompany it.
	ErrParseFailure = errors.New("document could not be opened or read")

	// ErrNoDocument means an operation needing a loaded document was
	// invoked before any successful extraction.
	ErrNoDocument = errors.New("no document loaded")

	// ErrNothingToExport means an export was requested while the
	// applicable record subset or enabled column set is empty.
	ErrNothingToExport = errors.New("nothing to export")

	// ErrSinkFailure means the clipboard or file-save sink rejected an
	// already-rendered export. Session state is unaffected by it.
	ErrSinkFailure = errors.New("output sink rejected the operation")
)
