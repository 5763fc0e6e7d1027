package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bpb/resume-tailor/pkg/assetgen/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage assetgen configuration settings.

Configuration is loaded from:
  1. The file given with --config
  2. ./assetgen.yaml
  3. $XDG_CONFIG_HOME/assetgen/assetgen.yaml

Environment variables can override config file settings using the
ASSETGEN_ prefix:
  ASSETGEN_BASE=/srv/site
  ASSETGEN_RESUMES_STRATEGY=paired`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Create a default assetgen.yaml in the current directory if one doesn't exist.`,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("base:              %s\n", cfg.Base)
	fmt.Printf("resumes.roots:     %v\n", cfg.Resumes.Roots)
	fmt.Printf("resumes.output:    %s\n", cfg.Resumes.Output)
	fmt.Printf("resumes.strategy:  %s\n", cfg.Resumes.Strategy)
	fmt.Printf("themes.roots:      %v\n", cfg.Themes.Roots)
	fmt.Printf("themes.output:     %s\n", cfg.Themes.Output)
	fmt.Printf("themes.bundle:     %s\n", cfg.Themes.Bundle)
	fmt.Printf("watch.debounce:    %s\n", cfg.Watch.Debounce)
	fmt.Printf("logging.level:     %s\n", cfg.Logging.Level)

	fmt.Println("\nEnvironment Overrides:")
	fmt.Println("----------------------")
	envVars := []string{
		"ASSETGEN_BASE",
		"ASSETGEN_RESUMES_ROOTS",
		"ASSETGEN_RESUMES_OUTPUT",
		"ASSETGEN_RESUMES_STRATEGY",
		"ASSETGEN_THEMES_ROOTS",
		"ASSETGEN_THEMES_OUTPUT",
		"ASSETGEN_THEMES_BUNDLE",
		"ASSETGEN_WATCH_DEBOUNCE",
		"ASSETGEN_LOGGING_LEVEL",
	}

	anyOverrides := false
	for _, name := range envVars {
		if val := os.Getenv(name); val != "" {
			fmt.Printf("%s=%s\n", name, val)
			anyOverrides = true
		}
	}
	if !anyOverrides {
		fmt.Println("(none)")
	}

	return nil
}

// runConfigInit creates a default config file in the current directory.
func runConfigInit(_ *cobra.Command, _ []string) error {
	const path = "assetgen.yaml"

	if _, err := os.Stat(path); err == nil {
		printInfo("Config file already exists: %s", path)
		return nil
	}

	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	printInfo("Created default config file: %s", path)
	return nil
}
