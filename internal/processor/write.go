package processor

import (
	"encoding/json"
	"fmt"
	"os"
)

// Write stores records as indented JSON with non-ASCII text left unescaped.
func Write(path string, records []Record) (err error) {
	if records == nil {
		records = []Record{}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, closeErr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	return nil
}
