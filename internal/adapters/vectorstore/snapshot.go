package vectorstore

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
)

// Snapshot is the persisted form of the similarity index: the embedded corpus
// plus the model identity it was built with. It is written once by the
// offline corpus build and loaded read-only at service startup.
type Snapshot struct {
	Model     string
	Dimension int
	Examples  []core.ScamExample
}

// SaveSnapshot writes the snapshot atomically: a partial write never
// clobbers a previously good snapshot.
func SaveSnapshot(path string, snap *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(snap); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot back from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	var snap Snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	for i, ex := range snap.Examples {
		if len(ex.Embedding) != snap.Dimension {
			return nil, fmt.Errorf("snapshot entry %d has dimension %d, header says %d", i, len(ex.Embedding), snap.Dimension)
		}
	}

	return &snap, nil
}
