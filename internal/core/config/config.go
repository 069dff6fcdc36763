// Package config handles configuration loading and validation for canvas-todo.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/styles"
)

// LedgerFileName is the ledger file created in the data directory when no
// explicit path is configured.
const LedgerFileName = "imported_assignments.json"

// Environment variables read on top of the config file. The unprefixed names
// are kept for .env files written for earlier versions of the tool.
var (
	envCanvasURL   = []string{"CANVAS_API_URL", "API_URL"}
	envCanvasToken = []string{"CANVAS_API_KEY", "API_KEY"}
	envListName    = []string{"THINGS_LIST_NAME", "LIST_NAME"}
)

// Config holds the application configuration.
type Config struct {
	Canvas  CanvasConfig `yaml:"canvas"`
	Things  ThingsConfig `yaml:"things"`
	Ledger  LedgerConfig `yaml:"ledger"`
	Courses CourseFilter `yaml:"courses"`
	Opener  string       `yaml:"opener"` // command used to open URLs; empty picks the platform default
	Theme   string       `yaml:"theme"`  // console color theme
	DataDir string       `yaml:"-"`      // set by caller, not from config file
}

// CanvasConfig holds the LMS connection settings.
type CanvasConfig struct {
	URL   string `yaml:"url"`   // base URL, e.g. https://school.instructure.com
	Token string `yaml:"token"` // API access token
}

// ThingsConfig controls the tasks created in Things.
type ThingsConfig struct {
	ListName string   `yaml:"list_name"` // destination list; empty means inbox
	Tags     []string `yaml:"tags"`      // tags added before the "New" sentinel
}

// LedgerConfig controls where and how often imported ids are persisted.
type LedgerConfig struct {
	Path string `yaml:"path"`
	// Incremental saves the ledger after every dispatched task instead of
	// once at the end of the run.
	Incremental bool `yaml:"incremental"`
}

// CourseFilter narrows the courses considered during a sync. Patterns are
// doublestar globs matched against course names.
type CourseFilter struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Things: ThingsConfig{
			Tags: []string{},
		},
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path, applies environment
// overrides, and sets the data directory. If configPath is empty or doesn't
// exist, defaults plus the environment are used.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.ApplyEnv(os.LookupEnv)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides file values with any environment variables that are set
// and non-empty.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v := firstEnv(lookup, envCanvasURL); v != "" {
		c.Canvas.URL = v
	}
	if v := firstEnv(lookup, envCanvasToken); v != "" {
		c.Canvas.Token = v
	}
	if v := firstEnv(lookup, envListName); v != "" {
		c.Things.ListName = v
	}
}

func firstEnv(lookup func(string) (string, bool), keys []string) string {
	for _, k := range keys {
		if v, ok := lookup(k); ok && v != "" {
			return v
		}
	}
	return ""
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = styles.DefaultTheme
	}
	if c.Things.Tags == nil {
		c.Things.Tags = []string{}
	}
	c.Things.Tags = slices.DeleteFunc(c.Things.Tags, func(s string) bool { return s == "" })
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" && c.Ledger.Path == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Canvas.URL != "" {
		if err := isHTTPURL(c.Canvas.URL); err != nil {
			return fmt.Errorf("canvas.url: %w", err)
		}
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("theme: unknown theme %q (available: %s)", c.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	for _, p := range c.Courses.Include {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("courses.include: invalid pattern %q", p)
		}
	}
	for _, p := range c.Courses.Exclude {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("courses.exclude: invalid pattern %q", p)
		}
	}

	return nil
}

// RequireCanvas checks that the LMS connection settings needed for a sync are
// present.
func (c *Config) RequireCanvas() error {
	var errs []error
	if c.Canvas.URL == "" {
		errs = append(errs, errors.New("canvas url is not set (set CANVAS_API_URL or canvas.url)"))
	}
	if c.Canvas.Token == "" {
		errs = append(errs, errors.New("canvas token is not set (set CANVAS_API_KEY, canvas.token, or run 'canvas-todo auth login')"))
	}
	return errors.Join(errs...)
}

// LedgerFile returns the path to the import ledger.
func (c *Config) LedgerFile() string {
	if c.Ledger.Path != "" {
		return c.Ledger.Path
	}
	return filepath.Join(c.DataDir, LedgerFileName)
}

// CanvasHost returns the host portion of the Canvas URL. It keys stored
// credentials.
func (c *Config) CanvasHost() string {
	u, err := url.Parse(c.Canvas.URL)
	if err != nil || u.Host == "" {
		return c.Canvas.URL
	}
	return u.Host
}

func isHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
