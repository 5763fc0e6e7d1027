package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bpb/resume-tailor/pkg/assetgen/config"
	"github.com/bpb/resume-tailor/pkg/assetgen/logging"
	"github.com/bpb/resume-tailor/pkg/assetgen/manifest"
	"github.com/bpb/resume-tailor/pkg/assetgen/resume"
	"github.com/bpb/resume-tailor/pkg/assetgen/theme"
	"github.com/bpb/resume-tailor/pkg/assetgen/types"
)

// runGenerateAll is the root command handler: generate both manifests,
// or keep regenerating them in watch mode.
func runGenerateAll(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if watchRequested() {
		return runWatch(cfg, true, true)
	}
	return generate(cfg, true, true)
}

// generate performs one full generation pass for the selected manifests.
// A write failure aborts and surfaces as a non-zero exit; scan warnings
// do not.
func generate(cfg *config.Config, doResumes, doThemes bool) error {
	runID := shortRunID()
	logger := logging.Get("generate").With("run", runID)
	start := time.Now()

	if doResumes {
		if err := generateResumes(cfg, logger); err != nil {
			printError("resume manifest generation failed: %v", err)
			return err
		}
	}

	if doThemes {
		if err := generateThemes(cfg, logger); err != nil {
			printError("theme manifest generation failed: %v", err)
			return err
		}
	}

	logger.Debug("generation complete", "elapsed", time.Since(start))
	return nil
}

// generateResumes collects resume entries and writes data/resumes.json.
func generateResumes(cfg *config.Config, logger *logging.Logger) error {
	strategy, err := resume.ParseStrategy(cfg.Resumes.Strategy)
	if err != nil {
		return err
	}

	collector := resume.New(resume.Options{
		Base:     cfg.Base,
		Roots:    cfg.Resumes.Roots,
		Strategy: strategy,
	})

	entries, warnings := collector.Collect()
	doc := manifest.NewResumeManifest(entries, time.Now())

	outPath := filepath.Join(cfg.Base, cfg.Resumes.Output)
	if err := manifest.Write(outPath, doc); err != nil {
		return fmt.Errorf("writing resume manifest: %w", err)
	}

	size := types.StatOrZero(outPath).Size
	logger.Info("wrote resume manifest",
		"path", cfg.Resumes.Output,
		"resumes", doc.TotalResumes,
		"skipped", len(warnings),
		"size", humanize.IBytes(uint64(size)))
	printInfo("Wrote %s (%d resumes, %s)", cfg.Resumes.Output, doc.TotalResumes, humanize.IBytes(uint64(size)))

	return nil
}

// generateThemes collects theme entries and writes data/themes.json.
func generateThemes(cfg *config.Config, logger *logging.Logger) error {
	collector := theme.New(theme.Options{
		Base:   cfg.Base,
		Roots:  cfg.Themes.Roots,
		Bundle: cfg.Themes.Bundle,
	})

	entries, warnings := collector.Collect()
	doc := manifest.NewThemeManifest(entries, time.Now())

	outPath := filepath.Join(cfg.Base, cfg.Themes.Output)
	if err := manifest.Write(outPath, doc); err != nil {
		return fmt.Errorf("writing theme manifest: %w", err)
	}

	size := types.StatOrZero(outPath).Size
	logger.Info("wrote theme manifest",
		"path", cfg.Themes.Output,
		"themes", doc.TotalThemes,
		"skipped", len(warnings),
		"size", humanize.IBytes(uint64(size)))
	printInfo("Wrote %s (%d themes, %s)", cfg.Themes.Output, doc.TotalThemes, humanize.IBytes(uint64(size)))

	return nil
}

// shortRunID returns a short identifier correlating the log lines of one
// generation pass.
func shortRunID() string {
	return uuid.NewString()[:8]
}
