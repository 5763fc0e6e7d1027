// Package theme collects CSS theme bundles from the theme trees and
// builds the entries for the theme manifest.
package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bpb/resume-tailor/pkg/assetgen/config"
	"github.com/bpb/resume-tailor/pkg/assetgen/logging"
	"github.com/bpb/resume-tailor/pkg/assetgen/manifest"
	"github.com/bpb/resume-tailor/pkg/assetgen/types"
)

// Options configures the theme collector.
type Options struct {
	// Base is the directory recorded paths are made relative to.
	Base string

	// Roots are the directories scanned for theme subdirectories, in
	// order. A missing root is skipped; later roots override earlier
	// ones on key collision.
	Roots []string

	// Bundle is the CSS file a subdirectory must contain to count as a
	// theme.
	Bundle string
}

// Collector scans the CSS roots and produces theme entries keyed by
// directory name.
type Collector struct {
	opts Options
	log  *logging.Logger
}

// New creates a Collector, applying defaults for zero-valued options.
func New(opts Options) *Collector {
	if opts.Base == "" {
		opts.Base = config.DefaultBase
	}
	if len(opts.Roots) == 0 {
		opts.Roots = config.DefaultThemeRoots
	}
	if opts.Bundle == "" {
		opts.Bundle = config.DefaultThemeBundle
	}
	return &Collector{
		opts: opts,
		log:  logging.Get("themes"),
	}
}

// Collect walks each existing root's immediate subdirectories and builds
// an entry per subdirectory containing the bundle file. Subdirectories
// without one are skipped with a warning.
func (c *Collector) Collect() (map[string]manifest.ThemeEntry, []types.Warning) {
	entries := make(map[string]manifest.ThemeEntry)
	var warnings []types.Warning

	for _, root := range c.opts.Roots {
		rootPath := filepath.Join(c.opts.Base, root)

		dirEntries, err := os.ReadDir(rootPath)
		if err != nil {
			if os.IsNotExist(err) {
				c.log.Info("skipping missing root", "root", root)
				continue
			}
			warnings = append(warnings, types.Warning{
				Path:   root,
				Reason: fmt.Sprintf("cannot read root: %v", err),
			})
			continue
		}

		for _, de := range dirEntries {
			if !de.IsDir() {
				continue
			}

			bundlePath := filepath.Join(rootPath, de.Name(), c.opts.Bundle)
			if _, err := os.Stat(bundlePath); err != nil {
				warn := types.Warning{
					Path:   filepath.Join(rootPath, de.Name()),
					Reason: fmt.Sprintf("missing %s", c.opts.Bundle),
				}
				c.log.Warn("skipping directory", "path", warn.Path, "reason", warn.Reason)
				warnings = append(warnings, warn)
				continue
			}

			meta := types.StatOrZero(bundlePath)
			entries[de.Name()] = manifest.ThemeEntry{
				FilePath:           c.relPath(bundlePath),
				FileSize:           meta.Size,
				LastModified:       meta.ModTime,
				HasMediaQueryPrint: HasMediaQueryPrint(bundlePath),
			}
			c.log.Debug("added theme", "name", de.Name(), "root", root)
		}
	}

	return entries, warnings
}

// relPath records a path relative to the base directory, with forward
// slashes so manifests are identical across platforms.
func (c *Collector) relPath(path string) string {
	rel, err := filepath.Rel(c.opts.Base, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}
