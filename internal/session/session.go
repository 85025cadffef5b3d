// Package session owns the state surrounding one loaded document: the
// extracted comment records, the user's row selection and column
// projection, and the clipboard/file sinks exports are handed to.
// Only one document is loaded at a time; loading a new one replaces
// the previous session state wholesale.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/annotext/mcp-pdf-comments/internal/comments"
	"github.com/annotext/mcp-pdf-comments/internal/export"
)

// Session holds the mutable state of the comment export workflow.
// The extractor and renderers themselves stay pure; everything
// stateful lives here.
type Session struct {
	mu sync.Mutex

	loaded       bool
	documentName string
	records      []comments.CommentRecord
	selection    export.RowSelection
	projection   export.ColumnProjection
	darkMode     bool

	prefsPath string
	extractor *comments.Extractor

	clipOnce sync.Once
	clipOK   bool
}

// New creates a session. Column projection and the dark-mode flag are
// restored from the preferences file at prefsPath when it exists;
// an empty prefsPath disables persistence.
func New(prefsPath string) *Session {
	prefs := loadPrefs(prefsPath)
	return &Session{
		projection: prefs.projection(),
		darkMode:   prefs.DarkMode,
		prefsPath:  prefsPath,
		extractor:  comments.NewExtractor(),
	}
}

// Load extracts the comment records of doc, replacing any previously
// loaded document. The row selection resets to empty ("all records");
// the column projection is a user preference and survives. It returns
// the record count and whether the document contained no extractable
// comments (an advisory, not an error).
func (s *Session) Load(name string, doc comments.Document) (int, bool) {
	records, empty := s.extractor.Extract(doc)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.documentName = name
	s.records = records
	s.selection = nil
	return len(records), empty
}

// Unload clears the loaded document and selection. The column
// projection and dark-mode preference are kept.
func (s *Session) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.documentName = ""
	s.records = nil
	s.selection = nil
}

// Loaded reports whether a document is currently loaded.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// DocumentName returns the name of the loaded document, "" when none.
func (s *Session) DocumentName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documentName
}

// Records returns a copy of the canonical record sequence.
func (s *Session) Records() []comments.CommentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]comments.CommentRecord, len(s.records))
	copy(out, s.records)
	return out
}

// RecordCount returns the number of extracted records.
func (s *Session) RecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// SetSelection replaces the row selection. An empty slice clears it,
// which export treats as "all records".
func (s *Session) SetSelection(indices []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(indices) == 0 {
		s.selection = nil
		return
	}
	s.selection = append(export.RowSelection(nil), indices...)
}

// Selection returns a copy of the current row selection.
func (s *Session) Selection() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.selection...)
}

// SetColumn toggles an export column and persists the preference.
// Disabling the Comment column is silently ignored.
func (s *Session) SetColumn(field export.Field, on bool) error {
	if !export.KnownField(string(field)) {
		return fmt.Errorf("unknown column: %q", field)
	}

	s.mu.Lock()
	s.projection.Set(field, on)
	s.mu.Unlock()

	s.persistPrefs()
	return nil
}

// Projection returns the current column projection.
func (s *Session) Projection() export.ColumnProjection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projection
}

// DarkMode reports the persisted dark-mode preference.
func (s *Session) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// SetDarkMode updates and persists the dark-mode preference.
func (s *Session) SetDarkMode(on bool) {
	s.mu.Lock()
	s.darkMode = on
	s.mu.Unlock()

	s.persistPrefs()
}

// Export renders the applicable record subset in the requested format.
// It returns ErrNoDocument before any load and ErrNothingToExport when
// the rendered output would be empty, so callers never hand a zero
// byte payload to a sink.
func (s *Session) Export(format export.Format) (string, error) {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return "", comments.ErrNoDocument
	}
	subset := export.Subset(s.records, s.selection)
	proj := s.projection
	s.mu.Unlock()

	var out string
	switch format {
	case export.FormatCSV:
		out = export.RenderCSV(subset, proj)
	case export.FormatTSV:
		out = export.RenderTSV(subset, proj)
	case export.FormatText:
		out = export.RenderText(subset, proj)
	default:
		return "", fmt.Errorf("unknown export format: %q", format)
	}

	if out == "" {
		return "", comments.ErrNothingToExport
	}
	return out, nil
}

// CopyToClipboard renders the export and writes it to the system
// clipboard. The rendered text is returned even when the sink fails,
// so the caller can fall back to presenting it directly.
func (s *Session) CopyToClipboard(format export.Format) (string, error) {
	out, err := s.Export(format)
	if err != nil {
		return "", err
	}
	if err := s.writeClipboard([]byte(out)); err != nil {
		return out, err
	}
	return out, nil
}

// SaveTo renders the export and writes it into dir under the derived
// "<base>_comments.<ext>" name. It returns the written path.
func (s *Session) SaveTo(dir string, format export.Format) (string, error) {
	out, err := s.Export(format)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, export.ExportFilename(s.DocumentName(), format))
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", comments.ErrSinkFailure, err)
	}
	return path, nil
}
