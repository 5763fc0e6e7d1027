package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bpb/resume-tailor/pkg/assetgen/config"
	"github.com/bpb/resume-tailor/pkg/assetgen/doctor"
	"github.com/bpb/resume-tailor/pkg/assetgen/resume"
	"github.com/bpb/resume-tailor/pkg/assetgen/theme"
)

var doctorStrict bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Audit resource trees against the manifests",
	Long: `Re-collect both manifests in memory, then walk every configured root
and report files that no manifest entry references (orphans) plus
referenced files missing from disk.

With --strict, findings produce a non-zero exit code.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorStrict, "strict", false, "exit non-zero when problems are found")
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor audits the resource trees against a fresh in-memory collection.
func runDoctor(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	referenced, err := collectReferenced(cfg)
	if err != nil {
		return err
	}

	report, err := doctor.Audit(doctor.Options{
		Base:       cfg.Base,
		Roots:      watchRoots(cfg, true, true),
		Referenced: referenced,
	})
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	printInfo("Scanned %d files, %d referenced by manifests", report.FilesScanned, len(referenced))

	if len(report.Orphans) > 0 {
		printInfo("\nOrphaned files (%d, %s):", len(report.Orphans), humanize.IBytes(uint64(report.OrphanBytes)))
		for _, path := range report.Orphans {
			printInfo("  %s", path)
		}
	}

	if len(report.Missing) > 0 {
		printInfo("\nReferenced but missing from disk (%d):", len(report.Missing))
		for _, path := range report.Missing {
			printInfo("  %s", path)
		}
	}

	if report.Clean() {
		printInfo("No problems found")
		return nil
	}

	if doctorStrict {
		return fmt.Errorf("audit found %d orphans and %d missing files", len(report.Orphans), len(report.Missing))
	}
	return nil
}

// collectReferenced gathers every path the manifests would reference right
// now, from a fresh scan of both collectors.
func collectReferenced(cfg *config.Config) (map[string]struct{}, error) {
	referenced := make(map[string]struct{})

	strategy, err := resume.ParseStrategy(cfg.Resumes.Strategy)
	if err != nil {
		return nil, err
	}

	resumeEntries, _ := resume.New(resume.Options{
		Base:     cfg.Base,
		Roots:    cfg.Resumes.Roots,
		Strategy: strategy,
	}).Collect()
	for _, entry := range resumeEntries {
		referenced[entry.JSONFile] = struct{}{}
		if entry.HasPNGPhoto {
			referenced[entry.PNGFile] = struct{}{}
		}
	}

	themeEntries, _ := theme.New(theme.Options{
		Base:   cfg.Base,
		Roots:  cfg.Themes.Roots,
		Bundle: cfg.Themes.Bundle,
	}).Collect()
	for _, entry := range themeEntries {
		referenced[entry.FilePath] = struct{}{}
	}

	return referenced, nil
}
