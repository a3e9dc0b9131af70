package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bankscope-dev/bankscope/internal/model"
)

// WriteMetadata persists the run metadata record next to the tables,
// through the same temp-and-rename dance.
func (s *Store) WriteMetadata(meta model.RunMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, MetadataFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp metadata: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing metadata: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp metadata: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, MetadataFile)); err != nil {
		return fmt.Errorf("swapping metadata into place: %w", err)
	}
	return nil
}

// LoadMetadata reads the last run's metadata.
func (s *Store) LoadMetadata() (model.RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, MetadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return model.RunMetadata{}, fmt.Errorf("%s: %w", MetadataFile, ErrTableMissing)
		}
		return model.RunMetadata{}, fmt.Errorf("reading metadata: %w", err)
	}

	var meta model.RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return model.RunMetadata{}, fmt.Errorf("parsing metadata: %w", err)
	}
	return meta, nil
}
