package cache

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Manager handles the local chapter cache, used for offline re-reads and
// as a fallback when a chapter fetch fails.
type Manager struct {
	baseDir string
}

// New creates a cache Manager rooted at baseDir.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// DefaultDir returns the user-level cache directory for inkctl.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "inkctl")
}

// Path returns the cache path for one chapter.
// Layout: <baseDir>/<bookID>/<chapterID>.json
func (m *Manager) Path(bookID, chapterID uuid.UUID) string {
	return filepath.Join(m.baseDir, bookID.String(), chapterID.String()+".json")
}

// Exists reports whether the chapter is cached.
func (m *Manager) Exists(bookID, chapterID uuid.UUID) bool {
	_, err := os.Stat(m.Path(bookID, chapterID))
	return err == nil
}

// Remove deletes one cached chapter if present.
func (m *Manager) Remove(bookID, chapterID uuid.UUID) error {
	err := os.Remove(m.Path(bookID, chapterID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clear deletes every cached chapter of one book.
func (m *Manager) Clear(bookID uuid.UUID) error {
	return os.RemoveAll(filepath.Join(m.baseDir, bookID.String()))
}
