package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultLogLevel is used when no log level is specified.
	DefaultLogLevel = "info"

	// MediaDirName is the photo directory inside an Anki profile folder.
	MediaDirName = "collection.media"

	// OutputSuffix replaces the .pdf suffix on the roster path to form the
	// default output path.
	OutputSuffix = ".Anki_Import.txt"
)

// Config holds all configuration for a photo roster import run.
type Config struct {
	// RosterPath is the photo roster PDF to import.
	RosterPath string

	// AnkiDir is the Anki profile directory; photos are written into its
	// collection.media subdirectory.
	AnkiDir string

	// ExistingPath optionally points at the existing record set: either a
	// tab-separated export file or a directory holding a collection
	// database. Empty means a first import with no existing records.
	ExistingPath string

	// OutputPath is where the import file is written. Empty means next to
	// the roster, with the .pdf suffix replaced by .Anki_Import.txt.
	OutputPath string

	// Application configuration
	Version  string
	LogLevel string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  "1.0.0",
		LogLevel: DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	for _, p := range []*string{&cfg.RosterPath, &cfg.AnkiDir, &cfg.ExistingPath, &cfg.OutputPath} {
		if *p != "" {
			if expanded, err := filepath.Abs(*p); err == nil {
				*p = expanded
			}
		}
	}

	if cfg.OutputPath == "" && cfg.RosterPath != "" {
		cfg.OutputPath = strings.TrimSuffix(cfg.RosterPath, ".pdf") + OutputSuffix
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("ROSTER")
	viper.AutomaticEnv()

	viper.SetDefault("roster", cfg.RosterPath)
	viper.SetDefault("ankidir", cfg.AnkiDir)
	viper.SetDefault("existing", cfg.ExistingPath)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("loglevel", cfg.LogLevel)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("roster", cfg.RosterPath,
		"Photo roster PDF file, in the large format with 6 photos per page")
	pflag.String("ankidir", cfg.AnkiDir,
		"Anki profile directory (must contain a collection.media subdirectory)")
	pflag.String("existing", cfg.ExistingPath,
		"Existing records: a tab-separated export file, or a directory holding collection.anki2")
	pflag.String("output", cfg.OutputPath,
		"Import file to write (default: roster path with .pdf replaced by .Anki_Import.txt)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("roster", pflag.Lookup("roster"))
	_ = viper.BindPFlag("ankidir", pflag.Lookup("ankidir"))
	_ = viper.BindPFlag("existing", pflag.Lookup("existing"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPhoto Roster Import - create an import file and photo set from a photo roster PDF\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --roster=math115a.pdf --ankidir=~/Anki/User\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --roster=math115a.pdf --ankidir=~/Anki/User --existing=export.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  ROSTER_ROSTER    Photo roster PDF file\n")
		fmt.Fprintf(os.Stderr, "  ROSTER_ANKIDIR   Anki profile directory\n")
		fmt.Fprintf(os.Stderr, "  ROSTER_EXISTING  Existing record source\n")
		fmt.Fprintf(os.Stderr, "  ROSTER_OUTPUT    Import file to write\n")
		fmt.Fprintf(os.Stderr, "  ROSTER_LOGLEVEL  Log level\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.RosterPath = viper.GetString("roster")
	cfg.AnkiDir = viper.GetString("ankidir")
	cfg.ExistingPath = viper.GetString("existing")
	cfg.OutputPath = viper.GetString("output")
	cfg.LogLevel = viper.GetString("loglevel")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.RosterPath == "" {
		return errors.New("roster path cannot be empty")
	}
	if !strings.HasSuffix(strings.ToLower(c.RosterPath), ".pdf") {
		return fmt.Errorf("%s does not appear to be a PDF file", c.RosterPath)
	}

	if c.AnkiDir == "" {
		return errors.New("anki directory cannot be empty")
	}
	photoDir := c.PhotoDir()
	if info, err := os.Stat(photoDir); err != nil {
		return fmt.Errorf("cannot access photo directory %s: %w", photoDir, err)
	} else if !info.IsDir() {
		return fmt.Errorf("photo directory %s is not a directory", photoDir)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// PhotoDir returns the directory photos are persisted into.
func (c *Config) PhotoDir() string {
	return filepath.Join(c.AnkiDir, MediaDirName)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{RosterPath: %s, AnkiDir: %s, ExistingPath: %s, OutputPath: %s, LogLevel: %s}",
		c.RosterPath, c.AnkiDir, c.ExistingPath, c.OutputPath, c.LogLevel)
}
