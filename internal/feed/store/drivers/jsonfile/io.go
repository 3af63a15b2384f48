package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"microfeed/internal/feed/store"
)

// readCollection reads the JSON sequence at path into out. A missing file
// is not an error: the collection is simply empty. Data that exists but
// fails to decode is reported as store.ErrCorrupt.
func readCollection(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %w", store.ErrCorrupt, filepath.Base(path), err)
	}
	return nil
}

// writeCollection serializes the full sequence and replaces path atomically:
// write to a temp file in the same directory, then rename over the target.
// Readers never observe a partial write.
func writeCollection(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
