package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bpb/resume-tailor/pkg/assetgen/config"
	"github.com/bpb/resume-tailor/pkg/assetgen/logging"
)

var (
	cfgFile string
	cfgErr  error
	rootCmd = &cobra.Command{
		Use:   "assetgen",
		Short: "Generate the resume and theme asset manifests",
		Long: `Assetgen scans the site's resource trees and writes the JSON manifests
the frontend loads (data/resumes.json and data/themes.json).

Each run is a full fresh scan: enumerate the roots, stat the files, write
the manifests. Re-running against an unchanged tree produces identical
output apart from the generation timestamp.

Examples:
  assetgen                   # Generate both manifests
  assetgen resumes           # Generate data/resumes.json only
  assetgen themes            # Generate data/themes.json only
  assetgen --watch           # Regenerate on filesystem changes
  assetgen doctor            # Audit resource trees against the manifests
  assetgen config show       # Show configuration`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: initLogging,
		RunE:              runGenerateAll,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./assetgen.yaml)")
	rootCmd.PersistentFlags().StringP("base", "b", "", "base directory manifest paths are relative to")
	rootCmd.PersistentFlags().BoolP("watch", "w", false, "regenerate when watched roots change")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "warnings and errors only")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")
	rootCmd.PersistentFlags().String("strategy", "", "photo selection strategy (first or paired)")

	// Bind flags to viper
	_ = viper.BindPFlag("base", rootCmd.PersistentFlags().Lookup("base"))
	_ = viper.BindPFlag("watch_mode", rootCmd.PersistentFlags().Lookup("watch"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("resumes.strategy", rootCmd.PersistentFlags().Lookup("strategy"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("assetgen")
		viper.SetConfigType("yaml")

		// Repo-local config first, then the user-level fallback
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "assetgen"))
	}

	config.BindEnv(viper.GetViper())
	config.SetDefaults(viper.GetViper())

	// A missing config file is fine unless one was named explicitly; the
	// error is surfaced from PersistentPreRunE, where cobra can report it.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
		}
	}
}

// initLogging configures the logging system from the effective settings.
func initLogging(_ *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return cfgErr
	}

	level := viper.GetString("logging.level")
	if getVerbose() {
		level = "debug"
	} else if getQuiet() {
		level = "warn"
	}

	return logging.Init(logging.Config{
		Level:      level,
		Components: viper.GetStringMapString("logging.components"),
	})
}

// loadConfig unmarshals the effective configuration from the global viper.
func loadConfig() (*config.Config, error) {
	return config.FromViper(viper.GetViper())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// watchRequested returns true if --watch was given.
func watchRequested() bool {
	return viper.GetBool("watch_mode")
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
