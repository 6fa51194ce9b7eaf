package config

import (
	_ "embed"
	"errors"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Betaface  BetafaceConfig
	Detection DetectionConfig
}

type BetafaceConfig struct {
	URL     string        // API base URL, defaults to https://www.betafaceapi.com/api
	APIKey  string        // sent as a form field or JSON body field, never as a header
	Secret  string        // loaded but not used by any request
	Timeout time.Duration // per-request timeout for the HTTP client
}

type DetectionConfig struct {
	DefaultFlags []string `yaml:"default_flags"`
	KnownFlags   []string `yaml:"known_flags"`
}

type defaults struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Detection DetectionConfig `yaml:"detection"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString returns the env var value or defaultVal when it is unset or blank.
func envString(key, defaultVal string) string {
	if s := strings.TrimSpace(os.Getenv(key)); s != "" {
		return s
	}
	return defaultVal
}

func loadDefaults() defaults {
	var d defaults
	if err := yaml.Unmarshal(defaultsYAML, &d); err != nil {
		// embedded file, an error here is a build problem
		panic("failed to unmarshal embedded defaults.yaml: " + err.Error())
	}
	return d
}

func Load() *Config {
	d := loadDefaults()

	return &Config{
		Betaface: BetafaceConfig{
			URL:     strings.TrimRight(envString("BETAFACE_URL", d.API.BaseURL), "/"),
			APIKey:  strings.TrimSpace(os.Getenv("BETAFACE_API_KEY")),
			Secret:  strings.TrimSpace(os.Getenv("BETAFACE_API_SECRET")),
			Timeout: time.Duration(envInt("BETAFACE_TIMEOUT", d.API.TimeoutSeconds)) * time.Second,
		},
		Detection: d.Detection,
	}
}

// Validate reports configuration that makes every request fail.
func (c *Config) Validate() error {
	if c.Betaface.APIKey == "" {
		return errors.New("BETAFACE_API_KEY is not set")
	}
	if c.Betaface.URL == "" {
		return errors.New("BETAFACE_URL is empty")
	}
	return nil
}

// UnknownFlags returns the flags that are not in the known detection flag list,
// preserving their order.
func (c *DetectionConfig) UnknownFlags(flags []string) []string {
	var unknown []string
	for _, f := range flags {
		if !slices.Contains(c.KnownFlags, f) {
			unknown = append(unknown, f)
		}
	}
	return unknown
}
