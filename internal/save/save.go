// Package save persists a player snapshot to disk as gamesave.json. The
// snapshot carries the chip balance, the player's position and facing in
// the casino floor scene, and the auto-save preferences.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNoSave is returned by Load when no save file exists.
var ErrNoSave = errors.New("no save file found")

// FileName is the on-disk name of the snapshot inside the save directory.
const FileName = "gamesave.json"

// Snapshot is the persisted game state.
type Snapshot struct {
	PositionX            float64 `json:"positionX"`
	PositionY            float64 `json:"positionY"`
	PositionZ            float64 `json:"positionZ"`
	RotationY            float64 `json:"rotationY"`
	PlayerBalance        int64   `json:"playerBalance"`
	AutoSaveEnabled      bool    `json:"autoSaveEnabled"`
	AutoSaveIntervalMins int     `json:"autoSaveIntervalMinutes"`
	LastSaveTimestamp    string  `json:"lastSaveTimestamp"`
}

// Manager reads and writes snapshots under a fixed directory.
type Manager struct {
	dir string
}

// NewManager creates a save manager rooted at dir, creating it if needed.
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// Path returns the full path of the save file.
func (m *Manager) Path() string {
	return filepath.Join(m.dir, FileName)
}

// Exists reports whether a save file is present.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.Path())
	return err == nil
}

// Save writes the snapshot atomically via a temp file and rename. The
// timestamp is stamped at write time.
func (m *Manager) Save(snap Snapshot) error {
	snap.LastSaveTimestamp = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode save data: %w", err)
	}

	tmp, err := os.CreateTemp(m.dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write save data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp save file: %w", err)
	}
	if err := os.Rename(tmpName, m.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to commit save file: %w", err)
	}
	return nil
}

// Load reads the snapshot. ErrNoSave when the file does not exist.
func (m *Manager) Load() (Snapshot, error) {
	data, err := os.ReadFile(m.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, ErrNoSave
		}
		return Snapshot{}, fmt.Errorf("failed to read save file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode save file: %w", err)
	}
	return snap, nil
}

// Reset moves the current save aside as a .bak backup, replacing any
// previous backup. A missing save file is not an error.
func (m *Manager) Reset() error {
	path := m.Path()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat save file: %w", err)
	}
	if err := os.Rename(path, path+".bak"); err != nil {
		return fmt.Errorf("failed to back up save file: %w", err)
	}
	return nil
}

// Info describes the save file for display: its location, whether it
// exists, and the last recorded balance and save time.
func (m *Manager) Info() string {
	snap, err := m.Load()
	if errors.Is(err, ErrNoSave) {
		return fmt.Sprintf("no save file at %s", m.Path())
	}
	if err != nil {
		return fmt.Sprintf("unreadable save file at %s: %v", m.Path(), err)
	}
	return fmt.Sprintf("save file %s: balance %d, last saved %s",
		m.Path(), snap.PlayerBalance, snap.LastSaveTimestamp)
}
