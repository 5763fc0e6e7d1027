package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// BindEnv enables ASSETGEN_-prefixed environment variable overrides on a
// viper instance (e.g., ASSETGEN_RESUMES_STRATEGY=paired).
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("ASSETGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// ResumesConfig configures the resume manifest generator.
type ResumesConfig struct {
	Roots    []string `mapstructure:"roots"`
	Output   string   `mapstructure:"output"`
	Strategy string   `mapstructure:"strategy"`
}

// ThemesConfig configures the theme manifest generator.
type ThemesConfig struct {
	Roots  []string `mapstructure:"roots"`
	Output string   `mapstructure:"output"`
	Bundle string   `mapstructure:"bundle"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `mapstructure:"debounce"`
}

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Components map[string]string `mapstructure:"components"`
}

// Config represents the application configuration.
type Config struct {
	Base    string        `mapstructure:"base"`
	Resumes ResumesConfig `mapstructure:"resumes"`
	Themes  ThemesConfig  `mapstructure:"themes"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SetDefaults installs the default values on a viper instance. The cobra
// layer shares these defaults through the global viper.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("base", DefaultBase)
	v.SetDefault("resumes.roots", DefaultResumeRoots)
	v.SetDefault("resumes.output", DefaultResumesOutput)
	v.SetDefault("resumes.strategy", DefaultStrategy)
	v.SetDefault("themes.roots", DefaultThemeRoots)
	v.SetDefault("themes.output", DefaultThemesOutput)
	v.SetDefault("themes.bundle", DefaultThemeBundle)
	v.SetDefault("watch.debounce", DefaultDebounce)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.components", map[string]string{
		"resumes": "info",
		"themes":  "info",
		"doctor":  "info",
		"watch":   "info",
	})
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - the explicit path in cfgFile, when non-empty
//   - ./assetgen.yaml (the repository root the tool runs from)
//   - $XDG_CONFIG_HOME/assetgen/assetgen.yaml
//
// Environment variables are prefixed with ASSETGEN_
// (e.g., ASSETGEN_RESUMES_STRATEGY).
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("assetgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "assetgen"))
	}

	BindEnv(v)
	SetDefaults(v)

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// An explicit --config path that does not exist is a hard error.
			if cfgFile != "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// FromViper unmarshals a Config from an already-configured viper instance,
// typically the global one the cobra layer binds flags into.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// WriteDefault writes a commented default config file at path.
// Returns nil without writing if a config file already exists there.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# Asset manifest generator configuration

# Directory that manifest paths are recorded relative to
base: %s

# Resume manifest settings
resumes:
  roots:
    - resources
    - .private/resources
  output: %s
  # Photo selection: "first" (first .png alphabetically, required) or
  # "paired" (stem-matching heuristic, photo optional)
  strategy: %s

# Theme manifest settings
themes:
  roots:
    - css
    - .private/css
  output: %s
  bundle: %s

# Watch mode settings
watch:
  debounce: %s

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: info
  # Per-component log levels
  components:
    resumes: info
    themes: info
    doctor: info
    watch: info
`, DefaultBase, DefaultResumesOutput, DefaultStrategy,
		DefaultThemesOutput, DefaultThemeBundle, DefaultDebounce)

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}
