// Package config loads the wiki build settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name looked up by the CLI.
const DefaultFile = "wiki.yaml"

// Config holds every build setting. Paths are used as given; relative paths
// resolve against the working directory.
type Config struct {
	SourceRoot     string `yaml:"source_root"`
	OutputRoot     string `yaml:"output_root"`
	BaseURL        string `yaml:"base_url"`      // empty for root-relative links
	EditBaseURL    string `yaml:"edit_base_url"` // empty omits edit links
	ReadmeFileName string `yaml:"readme_file_name"`
	Title          string `yaml:"title"`
	Extension      string `yaml:"extension"`
	HighlightStyle string `yaml:"highlight_style"`
	Manifest       bool   `yaml:"manifest"`
	Labels         Labels `yaml:"labels"`
}

// Labels holds the visible texts of navigation links.
type Labels struct {
	Back  string `yaml:"back"`
	Edit  string `yaml:"edit"`
	Index string `yaml:"index"`
}

// Default returns a Config with every optional field set.
func Default() Config {
	c := Config{}
	c.ApplyDefaults()
	return c
}

// LoadEnv loads variables from a .env file in the working directory, if any.
// Variables already set in the environment take precedence.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads a configuration file, expanding ${VAR} references against the
// environment. A missing file is an error; use Default when no file is wanted.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills empty optional fields.
func (c *Config) ApplyDefaults() {
	if c.ReadmeFileName == "" {
		c.ReadmeFileName = "README.md"
	}
	if c.Title == "" {
		c.Title = "Wiki"
	}
	if c.Extension == "" {
		c.Extension = ".md"
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if c.HighlightStyle == "" {
		c.HighlightStyle = "github"
	}
	if c.Labels.Back == "" {
		c.Labels.Back = "Back to index"
	}
	if c.Labels.Edit == "" {
		c.Labels.Edit = "Edit this page"
	}
	if c.Labels.Index == "" {
		c.Labels.Index = "Index"
	}
}

// Validate reports the first setting that prevents a build.
func (c *Config) Validate() error {
	if c.SourceRoot == "" {
		return errors.New("source_root is required")
	}
	if c.OutputRoot == "" {
		return errors.New("output_root is required")
	}
	src, err := filepath.Abs(c.SourceRoot)
	if err != nil {
		return fmt.Errorf("resolve source_root: %w", err)
	}
	out, err := filepath.Abs(c.OutputRoot)
	if err != nil {
		return fmt.Errorf("resolve output_root: %w", err)
	}
	if src == out {
		return fmt.Errorf("output_root must differ from source_root (%s)", src)
	}
	if strings.ContainsAny(c.ReadmeFileName, `/\`) {
		return fmt.Errorf("readme_file_name %q must name a file in source_root", c.ReadmeFileName)
	}
	if _, ok := styles.Registry[strings.ToLower(c.HighlightStyle)]; !ok {
		return fmt.Errorf("unknown highlight_style %q", c.HighlightStyle)
	}
	return nil
}

// Init writes an example configuration file to path.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	example := Default()
	example.SourceRoot = "./wiki"
	example.OutputRoot = "./public"
	example.EditBaseURL = "https://git.example.com/team/wiki/_edit/main"

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
