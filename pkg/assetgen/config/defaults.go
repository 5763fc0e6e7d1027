// Package config provides configuration management for the asset
// manifest generator.
package config

// Default configuration values. The roots and output paths reproduce the
// layout the resume-tailor site has always used, so running with no config
// file at the repository root does the right thing.
const (
	// DefaultBase is the directory manifest paths are made relative to.
	DefaultBase = "."

	// DefaultResumesOutput is the resume manifest path, relative to base.
	DefaultResumesOutput = "data/resumes.json"

	// DefaultThemesOutput is the theme manifest path, relative to base.
	DefaultThemesOutput = "data/themes.json"

	// DefaultThemeBundle is the bundle file a theme directory must contain.
	DefaultThemeBundle = "theme.css"

	// DefaultStrategy selects the photo selection policy for resumes.
	DefaultStrategy = "first"

	// DefaultDebounce is the settle window for watch mode.
	DefaultDebounce = "500ms"
)

// DefaultResumeRoots are the directories scanned for resume subdirectories,
// in order. Later roots override earlier ones on key collision.
var DefaultResumeRoots = []string{"resources", ".private/resources"}

// DefaultThemeRoots are the directories scanned for theme subdirectories.
var DefaultThemeRoots = []string{"css", ".private/css"}
