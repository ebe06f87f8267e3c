// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format        string `yaml:"format"`
		SummaryLength string `yaml:"summary_length"`
		Checks        string `yaml:"checks"`
		Verbose       bool   `yaml:"verbose"`
		Debug         bool   `yaml:"debug"`
		NoColor       bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Server settings for the web mode
	Server struct {
		ListenAddr  string `yaml:"listen_addr"`
		DatabaseURL string `yaml:"database_url"`
		MaxUpload   int64  `yaml:"max_upload_bytes"`
	} `yaml:"server"`

	// Profiles for different analysis scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents an analysis profile with specific settings
type Profile struct {
	Format        string `yaml:"format"`
	SummaryLength string `yaml:"summary_length"`
	Checks        string `yaml:"checks"`
	Verbose       bool   `yaml:"verbose"`
	Debug         bool   `yaml:"debug"`
	NoColor       bool   `yaml:"no_color"`
	Description   string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.SummaryLength = "detailed"
	config.Defaults.Checks = "all"
	config.Defaults.Verbose = false
	config.Defaults.Debug = false
	config.Defaults.NoColor = false
	config.Server.ListenAddr = ":8080"
	config.Server.MaxUpload = 10 << 20

	// Add default quick-review profile
	config.Profiles["quick"] = Profile{
		Format:        "text",
		SummaryLength: "short",
		Checks:        "clauses,statutory",
		NoColor:       true,
		Description:   "Fast review with a short summary and the core clause and statutory checks",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads configuration, falling back to defaults on any
// error. Analysis should never be blocked by a broken config file.
func LoadConfigOrDefault(configPath string) *Config {
	config, err := LoadConfig(configPath)
	if err != nil {
		defaults, _ := LoadConfig("")
		return defaults
	}
	return config
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("lexiscan.yaml") {
		return "lexiscan.yaml"
	}
	if fileExists("lexiscan.yml") {
		return "lexiscan.yml"
	}

	// Project-specific config
	if fileExists(".lexiscan.yaml") {
		return ".lexiscan.yaml"
	}
	if fileExists(".lexiscan.yml") {
		return ".lexiscan.yml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(home, ".lexiscan", name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// ValidateConfig checks the configuration for invalid values
func ValidateConfig(config *Config) error {
	if err := validateProfileValues(config.Defaults.Format, config.Defaults.SummaryLength); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for name, profile := range config.Profiles {
		if err := validateProfileValues(profile.Format, profile.SummaryLength); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return nil
}

func validateProfileValues(format, summaryLength string) error {
	switch format {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	switch summaryLength {
	case "", "short", "medium", "detailed":
	default:
		return fmt.Errorf("unknown summary length %q", summaryLength)
	}
	return nil
}

// ApplyProfile overlays a named profile onto the defaults. Unset profile
// fields keep the default value.
func (c *Config) ApplyProfile(name string) error {
	profile, ok := c.Profiles[name]
	if !ok {
		return fmt.Errorf("unknown profile %q", name)
	}
	if profile.Format != "" {
		c.Defaults.Format = profile.Format
	}
	if profile.SummaryLength != "" {
		c.Defaults.SummaryLength = profile.SummaryLength
	}
	if profile.Checks != "" {
		c.Defaults.Checks = profile.Checks
	}
	c.Defaults.Verbose = c.Defaults.Verbose || profile.Verbose
	c.Defaults.Debug = c.Defaults.Debug || profile.Debug
	c.Defaults.NoColor = c.Defaults.NoColor || profile.NoColor
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
