package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"assetcopy/internal/domain"

	"github.com/spf13/pflag"
)

type Config struct {
	SourceDir             string
	DestDir               string
	Mapping               []domain.AssetPair
	AllowDuplicateSources bool
	ListFilters           []string
	// Strict makes the process exit non-zero when any asset did not copy or
	// the destination could not be listed.
	Strict  bool
	Verbose bool
	DryRun  bool
	TUI     bool
}

// DefaultMapping is the logo set of the public site. The third entry's source
// is repeated by the fifth, so only favicon.ico is produced from it unless
// duplicate sources are allowed.
var DefaultMapping = []domain.AssetPair{
	{Source: "uploaded_image_0_1766495277190.png", Dest: "vion-logo-text-light.png"},
	{Source: "uploaded_image_1_1766495277190.png", Dest: "vion-logo-icon-light.png"},
	{Source: "uploaded_image_2_1766495277190.png", Dest: "vion-logo-icon-dark.png"},
	{Source: "uploaded_image_3_1766495277190.png", Dest: "vion-logo-full-dark.png"},
	{Source: "uploaded_image_2_1766495277190.png", Dest: "favicon.ico"},
}

var DefaultListFilters = []string{"vion", "favicon"}

func Default() Config {
	return Config{
		Mapping:     append([]domain.AssetPair(nil), DefaultMapping...),
		ListFilters: append([]string(nil), DefaultListFilters...),
	}
}

// Flags holds the raw command-line values. Only flags that were set on the
// command line take precedence over the environment and the config file.
type Flags struct {
	ConfigPath            string
	SourceDir             string
	DestDir               string
	AllowDuplicateSources bool
	Strict                bool
	Verbose               bool
	DryRun                bool
	TUI                   bool
}

func BindFlags(fs *pflag.FlagSet) *Flags {
	flags := &Flags{}
	fs.StringVarP(&flags.ConfigPath, "config", "c", "", "YAML file with directories and asset mapping")
	fs.StringVarP(&flags.SourceDir, "source", "s", "", "Source directory to copy from")
	fs.StringVarP(&flags.DestDir, "dest", "d", "", "Destination directory to copy to")
	fs.BoolVar(&flags.AllowDuplicateSources, "allow-duplicate-sources", false, "Copy a repeated source to every destination instead of only the last")
	fs.BoolVar(&flags.Strict, "strict", false, "Exit non-zero if any asset is missing or fails to copy")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", false, "Verbose output on stderr")
	fs.BoolVarP(&flags.DryRun, "dry-run", "n", false, "Show what would be copied without writing")
	fs.BoolVar(&flags.TUI, "tui", false, "Interactive progress view")
	return flags
}

// Resolve builds the run configuration from defaults, the config file,
// the environment and the flags, in increasing order of precedence. Both
// directories are returned as absolute paths.
func Resolve(fs *pflag.FlagSet, flags *Flags) (Config, error) {
	cfg := Default()

	path := flags.ConfigPath
	if path == "" {
		path = envOrEmpty("ASSETCOPY_CONFIG")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dir := envOrEmpty("ASSETCOPY_SOURCE_DIR"); dir != "" {
		cfg.SourceDir = dir
	}
	if dir := envOrEmpty("ASSETCOPY_DEST_DIR"); dir != "" {
		cfg.DestDir = dir
	}
	if envTruthy("ASSETCOPY_VERBOSE") {
		cfg.Verbose = true
	}
	if envTruthy("ASSETCOPY_STRICT") {
		cfg.Strict = true
	}

	if fs.Changed("source") {
		cfg.SourceDir = flags.SourceDir
	}
	if fs.Changed("dest") {
		cfg.DestDir = flags.DestDir
	}
	if fs.Changed("allow-duplicate-sources") {
		cfg.AllowDuplicateSources = flags.AllowDuplicateSources
	}
	if fs.Changed("strict") {
		cfg.Strict = flags.Strict
	}
	if fs.Changed("verbose") {
		cfg.Verbose = flags.Verbose
	}
	cfg.DryRun = flags.DryRun
	cfg.TUI = flags.TUI

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	var err error
	if cfg.SourceDir, err = filepath.Abs(cfg.SourceDir); err != nil {
		return Config{}, fmt.Errorf("resolving source: %w", err)
	}
	if cfg.DestDir, err = filepath.Abs(cfg.DestDir); err != nil {
		return Config{}, fmt.Errorf("resolving dest: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SourceDir == "" || c.DestDir == "" {
		return errors.New("source and dest are required")
	}
	if len(c.Mapping) == 0 {
		return errors.New("asset mapping is empty")
	}
	for i, pair := range c.Mapping {
		if pair.Source == "" || pair.Dest == "" {
			return fmt.Errorf("mapping entry %d: source and dest names are required", i+1)
		}
	}
	if c.DryRun && c.TUI {
		return errors.New("dry-run and tui cannot be combined")
	}
	return nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
