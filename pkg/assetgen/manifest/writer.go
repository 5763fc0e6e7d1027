package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Encode marshals a manifest document as indented JSON with a trailing
// newline. Map keys marshal sorted, so an unchanged entry set produces
// byte-identical output apart from the generated timestamp.
func Encode(doc any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// Write persists a manifest document to path, creating the parent
// directory if absent. The previous file is fully overwritten.
func Write(path string, doc any) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Write atomically using a temp file and rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Cleanup temp file on rename failure
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
