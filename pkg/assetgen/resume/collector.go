// Package resume collects resume data/photo pairs from the resource
// trees and builds the entries for the resume manifest.
package resume

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bpb/resume-tailor/pkg/assetgen/config"
	"github.com/bpb/resume-tailor/pkg/assetgen/logging"
	"github.com/bpb/resume-tailor/pkg/assetgen/manifest"
	"github.com/bpb/resume-tailor/pkg/assetgen/types"
)

// Strategy selects how the profile photo for a resume is chosen.
type Strategy string

const (
	// StrategyFirst takes the first .png alphabetically and requires one;
	// a subdirectory without a photo is skipped.
	StrategyFirst Strategy = "first"

	// StrategyPaired matches the photo to the data file stem by naming
	// convention; the photo is optional.
	StrategyPaired Strategy = "paired"
)

// ErrInvalidStrategy is returned for unrecognized strategy names.
var ErrInvalidStrategy = errors.New("invalid photo strategy")

// ParseStrategy parses a strategy name from configuration.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(s)) {
	case StrategyFirst:
		return StrategyFirst, nil
	case StrategyPaired:
		return StrategyPaired, nil
	default:
		return StrategyFirst, fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
}

// Options configures the resume collector.
type Options struct {
	// Base is the directory recorded paths are made relative to.
	Base string

	// Roots are the directories scanned for resume subdirectories, in
	// order. A missing root is skipped; later roots override earlier
	// ones on key collision.
	Roots []string

	// Strategy selects the photo selection policy.
	Strategy Strategy
}

// Collector scans the resource roots and produces resume entries keyed
// by subdirectory name.
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
		opts.Roots = config.DefaultResumeRoots
	}
	if opts.Strategy == "" {
		opts.Strategy = StrategyFirst
	}
	return &Collector{
		opts: opts,
		log:  logging.Get("resumes"),
	}
}

// Collect walks each existing root's immediate subdirectories and builds
// an entry per subdirectory that has the required files. Subdirectories
// missing a required file are skipped with a warning; nothing here aborts
// the run.
func (c *Collector) Collect() (map[string]manifest.ResumeEntry, []types.Warning) {
	entries := make(map[string]manifest.ResumeEntry)
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

			entry, warn := c.collectSubdir(rootPath, de.Name())
			if warn != nil {
				c.log.Warn("skipping subdirectory", "path", warn.Path, "reason", warn.Reason)
				warnings = append(warnings, *warn)
				continue
			}

			entries[de.Name()] = *entry
			c.log.Debug("added resume", "name", de.Name(), "json", entry.JSONFile, "png", entry.PNGFile)
		}
	}

	return entries, warnings
}

// collectSubdir selects the data file and photo for one subdirectory and
// builds its entry. Returns a warning instead of an entry when a required
// file is absent.
func (c *Collector) collectSubdir(rootPath, name string) (*manifest.ResumeEntry, *types.Warning) {
	subPath := filepath.Join(rootPath, name)

	jsonNames, pngNames, err := candidateFiles(subPath)
	if err != nil {
		return nil, &types.Warning{Path: subPath, Reason: fmt.Sprintf("cannot read directory: %v", err)}
	}

	if len(jsonNames) == 0 {
		return nil, &types.Warning{Path: subPath, Reason: "missing .json data file"}
	}

	pngName, ok := c.selectPhoto(jsonNames[0], pngNames)
	if !ok && c.opts.Strategy == StrategyFirst {
		return nil, &types.Warning{Path: subPath, Reason: "missing .png photo"}
	}

	jsonPath := filepath.Join(subPath, jsonNames[0])
	jsonMeta := types.StatOrZero(jsonPath)

	entry := &manifest.ResumeEntry{
		JSONFile:         c.relPath(jsonPath),
		JSONSize:         jsonMeta.Size,
		JSONLastModified: jsonMeta.ModTime,
	}

	if ok {
		pngPath := filepath.Join(subPath, pngName)
		pngMeta := types.StatOrZero(pngPath)
		entry.PNGFile = c.relPath(pngPath)
		entry.PNGSize = pngMeta.Size
		entry.PNGLastModified = pngMeta.ModTime
		entry.HasPNGPhoto = true
	}

	return entry, nil
}

// selectPhoto applies the configured strategy to pick a photo file from
// the candidates. Candidates arrive in alphabetical order.
func (c *Collector) selectPhoto(jsonName string, pngNames []string) (string, bool) {
	if len(pngNames) == 0 {
		return "", false
	}

	switch c.opts.Strategy {
	case StrategyPaired:
		stems := make([]string, len(pngNames))
		for i, name := range pngNames {
			stems[i] = stem(name)
		}
		matched, ok := MatchPhoto(stem(jsonName), stems)
		if !ok {
			return "", false
		}
		for i, s := range stems {
			if s == matched {
				return pngNames[i], true
			}
		}
		return "", false
	default:
		return pngNames[0], true
	}
}

// candidateFiles lists the .json and .png files directly inside dir,
// alphabetically. Only top-level files in each subdir are considered.
func candidateFiles(dir string) (jsonNames, pngNames []string, err error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(de.Name())) {
		case ".json":
			jsonNames = append(jsonNames, de.Name())
		case ".png":
			pngNames = append(pngNames, de.Name())
		}
	}

	return jsonNames, pngNames, nil
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

// stem returns a filename without its extension.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
