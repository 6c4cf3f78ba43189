// Package config loads loader configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds service endpoints and listing parameters. Zero fields fall
// back to the defaults; flags may override individual values afterwards.
type Config struct {
	Catalog struct {
		BaseURL string `yaml:"base_url"`
		Token   string `yaml:"token"`
	} `yaml:"catalog"`
	Directory struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"directory"`
	PageSize int `yaml:"page_size"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.Catalog.BaseURL = "https://www.sciencebase.gov/catalog"
	c.Directory.BaseURL = "https://www.sciencebase.gov/directory"
	c.PageSize = 20
	return c
}

// Load reads a YAML file and overlays it on the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = Default().Catalog.BaseURL
	}
	if c.Directory.BaseURL == "" {
		c.Directory.BaseURL = Default().Directory.BaseURL
	}
	if c.PageSize <= 0 {
		c.PageSize = Default().PageSize
	}
	return c, nil
}
