package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
)

// Store writes a chapter to the cache. The write goes through a temp file
// and a rename so a crash never leaves a truncated entry.
func (m *Manager) Store(ch *api.Chapter) error {
	if ch == nil {
		return fmt.Errorf("nil chapter")
	}

	destPath := m.Path(ch.EbookID, ch.ID)
	if err := os.MkdirAll(filepath.Dir(destPath), 0750); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("encoding chapter: %w", err)
	}

	tmpPath := destPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing to cache: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Load reads a cached chapter. A missing entry returns nil with no error.
func (m *Manager) Load(bookID, chapterID uuid.UUID) (*api.Chapter, error) {
	data, err := os.ReadFile(m.Path(bookID, chapterID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var ch api.Chapter
	if err := json.Unmarshal(data, &ch); err != nil {
		// A corrupt entry is dropped rather than surfaced.
		_ = m.Remove(bookID, chapterID)
		return nil, nil
	}
	return &ch, nil
}
