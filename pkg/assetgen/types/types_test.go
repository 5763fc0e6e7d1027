package types

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStatOrZero(t *testing.T) {
	t.Parallel()

	t.Run("returns metadata for existing file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "data.json")
		content := []byte(`{"name":"alice"}`)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		meta := StatOrZero(path)
		if meta.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", meta.Size, len(content))
		}
		if meta.ModTime == 0 {
			t.Error("ModTime = 0, want non-zero")
		}
	})

	t.Run("degrades to zero for missing file", func(t *testing.T) {
		t.Parallel()
		meta := StatOrZero(filepath.Join(t.TempDir(), "missing.json"))
		if meta.Size != 0 || meta.ModTime != 0 {
			t.Errorf("StatOrZero() = %+v, want zero values", meta)
		}
	})
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	if got := Timestamp(at); got != "2024-06-15T10:30:00Z" {
		t.Errorf("Timestamp() = %q, want %q", got, "2024-06-15T10:30:00Z")
	}

	// Non-UTC input normalizes to UTC.
	loc := time.FixedZone("plus2", 2*60*60)
	at = time.Date(2024, 6, 15, 12, 30, 0, 0, loc)
	if got := Timestamp(at); got != "2024-06-15T10:30:00Z" {
		t.Errorf("Timestamp() = %q, want %q", got, "2024-06-15T10:30:00Z")
	}
}
