package main

import (
	"github.com/spf13/cobra"
)

var resumesCmd = &cobra.Command{
	Use:   "resumes",
	Short: "Generate the resume manifest",
	Long: `Scan the resume resource roots and write data/resumes.json.

Each immediate subdirectory holding a .json data file (and, depending on
the strategy, a .png photo) becomes one manifest entry keyed by the
subdirectory name.`,
	Args: cobra.NoArgs,
	RunE: runResumes,
}

func init() {
	rootCmd.AddCommand(resumesCmd)
}

// runResumes generates only the resume manifest.
func runResumes(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if watchRequested() {
		return runWatch(cfg, true, false)
	}
	return generate(cfg, true, false)
}
