// Package types provides shared data types for the asset manifest
// generator: file metadata records, scan warnings, and the stat-or-zero
// helper used by every collector.
package types

import (
	"os"
	"time"
)

// FileMeta holds the basic filesystem metadata recorded for a manifest
// entry. Sizes are bytes, modification times are Unix seconds.
type FileMeta struct {
	Size    int64
	ModTime int64
}

// StatOrZero reads size and mtime for path. Any OS-level failure degrades
// to a zero-valued FileMeta; metadata absence is tolerated, file absence
// during selection is handled by the collectors.
func StatOrZero(path string) FileMeta {
	info, err := os.Stat(path)
	if err != nil {
		return FileMeta{}
	}
	return FileMeta{
		Size:    info.Size(),
		ModTime: info.ModTime().Unix(),
	}
}

// Warning records a non-fatal condition encountered during a scan, such
// as a subdirectory missing its required file. Warnings are collected and
// reported; they never abort the run.
type Warning struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Timestamp formats t as the RFC 3339 UTC string used for the manifest
// "generated" field.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
