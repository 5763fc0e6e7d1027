// Package manifest defines the generated manifest documents and the
// atomic JSON writer that persists them.
package manifest

import (
	"time"

	"github.com/bpb/resume-tailor/pkg/assetgen/types"
)

// Version is the manifest schema version, pinned until the site's
// frontend loader understands anything newer.
const Version = "1.0.0"

// ResumeEntry describes one resume subdirectory: the data file, the
// optional profile photo, and their metadata.
type ResumeEntry struct {
	JSONFile         string `json:"jsonFile"`
	JSONSize         int64  `json:"jsonSize"`
	JSONLastModified int64  `json:"jsonLastModified"`
	PNGFile          string `json:"pngFile,omitempty"`
	PNGSize          int64  `json:"pngSize"`
	PNGLastModified  int64  `json:"pngLastModified"`
	HasPNGPhoto      bool   `json:"hasPngPhoto"`
}

// ResumeManifest is the document written to data/resumes.json.
// TotalResumes always equals len(Resumes) at write time.
type ResumeManifest struct {
	Version      string                 `json:"version"`
	Generated    string                 `json:"generated"`
	TotalResumes int                    `json:"totalResumes"`
	Resumes      map[string]ResumeEntry `json:"resumes"`
}

// NewResumeManifest builds a resume manifest document from collected
// entries, capturing the generation timestamp and deriving the count.
func NewResumeManifest(entries map[string]ResumeEntry, now time.Time) *ResumeManifest {
	if entries == nil {
		entries = map[string]ResumeEntry{}
	}
	return &ResumeManifest{
		Version:      Version,
		Generated:    types.Timestamp(now),
		TotalResumes: len(entries),
		Resumes:      entries,
	}
}

// ThemeEntry describes one theme directory's CSS bundle.
type ThemeEntry struct {
	FilePath           string `json:"filePath"`
	FileSize           int64  `json:"fileSize"`
	LastModified       int64  `json:"lastModified"`
	HasMediaQueryPrint bool   `json:"hasMediaQueryPrint"`
}

// ThemeManifest is the document written to data/themes.json.
// TotalThemes always equals len(Themes) at write time.
type ThemeManifest struct {
	Version     string                `json:"version"`
	Generated   string                `json:"generated"`
	TotalThemes int                   `json:"totalThemes"`
	Themes      map[string]ThemeEntry `json:"themes"`
}

// NewThemeManifest builds a theme manifest document from collected entries.
func NewThemeManifest(entries map[string]ThemeEntry, now time.Time) *ThemeManifest {
	if entries == nil {
		entries = map[string]ThemeEntry{}
	}
	return &ThemeManifest{
		Version:     Version,
		Generated:   types.Timestamp(now),
		TotalThemes: len(entries),
		Themes:      entries,
	}
}
