package session

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/annotext/mcp-pdf-comments/internal/export"
)

// Prefs is the only state persisted across runs: the export column
// projection and the dark-mode flag. Anything else is rebuilt per
// document load.
type Prefs struct {
	DarkMode bool        `yaml:"dark_mode"`
	Columns  ColumnPrefs `yaml:"columns"`
}

// ColumnPrefs mirrors the toggleable part of the column projection.
// Comment has no entry because it cannot be disabled.
type ColumnPrefs struct {
	Page     bool `yaml:"page"`
	Author   bool `yaml:"author"`
	Modified bool `yaml:"modified"`
}

func defaultPrefs() Prefs {
	return Prefs{
		Columns: ColumnPrefs{Page: true, Author: true, Modified: true},
	}
}

func (p Prefs) projection() export.ColumnProjection {
	return export.ColumnProjection{
		Page:     p.Columns.Page,
		Author:   p.Columns.Author,
		Modified: p.Columns.Modified,
	}
}

// loadPrefs reads the preferences file. If anything goes wrong it
// returns defaults; a broken preference file must never block startup.
func loadPrefs(path string) Prefs {
	prefs := defaultPrefs()
	if path == "" {
		return prefs
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}
	if err := yaml.Unmarshal(b, &prefs); err != nil {
		return defaultPrefs()
	}
	return prefs
}

func savePrefs(path string, p Prefs) error {
	b, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}

// persistPrefs writes the current preferences best-effort. Persistence
// problems are not worth failing a user action over.
func (s *Session) persistPrefs() {
	s.mu.Lock()
	path := s.prefsPath
	prefs := Prefs{
		DarkMode: s.darkMode,
		Columns: ColumnPrefs{
			Page:     s.projection.Page,
			Author:   s.projection.Author,
			Modified: s.projection.Modified,
		},
	}
	s.mu.Unlock()

	if path == "" {
		return
	}
	_ = savePrefs(path, prefs)
}
