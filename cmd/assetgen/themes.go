package main

import (
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Generate the theme manifest",
	Long: `Scan the CSS roots and write data/themes.json.

Each immediate subdirectory containing the theme bundle file (theme.css
by default) becomes one manifest entry keyed by the directory name.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

// runThemes generates only the theme manifest.
func runThemes(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if watchRequested() {
		return runWatch(cfg, false, true)
	}
	return generate(cfg, false, true)
}
