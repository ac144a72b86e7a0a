// Package config holds the toolkit configuration, loaded with viper from
// an optional config file plus environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/JaviLunes/AdventCodeTools/paths"
)

// Config holds all configuration for the toolkit.
type Config struct {
	// Project configuration
	Project ProjectConfig `mapstructure:"project"`

	// Scrape configuration
	Scrape ScrapeConfig `mapstructure:"scrape"`

	// Pixel configuration
	Pixel PixelConfig `mapstructure:"pixel"`
}

// ProjectConfig locates the yearly puzzle project on disk.
type ProjectConfig struct {
	Year    int    `mapstructure:"year"`
	BaseDir string `mapstructure:"base_dir"`
}

// ScrapeConfig holds configuration for the puzzle website client.
type ScrapeConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // in seconds
}

// PixelConfig holds the marks used by banner decoding.
type PixelConfig struct {
	OnPixel  string `mapstructure:"on_pixel"`
	OffPixel string `mapstructure:"off_pixel"`
}

// Load reads configuration from the given viper instance, applying
// defaults and environment variable overrides.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(config)

	// Bound CLI flags surface their zero defaults through viper even when
	// unset; treat zero values as absent.
	if config.Project.Year == 0 {
		config.Project.Year = currentEventYear()
	}
	if config.Project.BaseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			config.Project.BaseDir = wd
		}
	}

	return config, nil
}

// Paths builds the path manager of the configured project.
func (c *Config) Paths() *paths.Manager {
	return &paths.Manager{Year: c.Project.Year, BaseDir: c.Project.BaseDir}
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Project defaults
	v.SetDefault("project.year", currentEventYear())
	if wd, err := os.Getwd(); err == nil {
		v.SetDefault("project.base_dir", wd)
	}

	// Scrape defaults
	v.SetDefault("scrape.base_url", "https://adventofcode.com")
	v.SetDefault("scrape.timeout", 30)

	// Pixel defaults
	v.SetDefault("pixel.on_pixel", "#")
	v.SetDefault("pixel.off_pixel", ".")
}

// currentEventYear resolves the most recent Advent of Code edition. The
// yearly event opens on December 1st, so earlier months belong to the
// previous year's calendar.
func currentEventYear() int {
	now := time.Now()
	if now.Month() < time.December {
		return now.Year() - 1
	}

	return now.Year()
}

// overrideWithEnv overrides config with environment variables.
func overrideWithEnv(config *Config) {
	if year := os.Getenv("ADVENT_YEAR"); year != "" {
		if parsed, err := strconv.Atoi(year); err == nil {
			config.Project.Year = parsed
		}
	}
	if baseDir := os.Getenv("ADVENT_BASE_DIR"); baseDir != "" {
		config.Project.BaseDir = baseDir
	}
	if baseURL := os.Getenv("ADVENT_BASE_URL"); baseURL != "" {
		config.Scrape.BaseURL = baseURL
	}
}
