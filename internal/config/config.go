package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultWindowHours applies when a service omits max_hours_window
// or sets it to zero/negative.
const DefaultWindowHours = 4

// ServiceDescriptor describes one search-result source to sweep.
// Immutable for the duration of a run.
type ServiceDescriptor struct {
	Name            string   `yaml:"name"`
	DisplayName     string   `yaml:"display_name"`
	Table           string   `yaml:"table"`
	Enabled         bool     `yaml:"enabled"`
	URL             string   `yaml:"url"`
	ValidationWords []string `yaml:"validation_words"`
	MaxHoursWindow  int      `yaml:"max_hours_window"`
}

// Window returns the freshness threshold in hours, defaulted.
func (s ServiceDescriptor) Window() int {
	if s.MaxHoursWindow <= 0 {
		return DefaultWindowHours
	}
	return s.MaxHoursWindow
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
		OutDir  string `yaml:"out_dir"`
	} `yaml:"app"`

	Scraper struct {
		Endpoint string `yaml:"endpoint"`
	} `yaml:"scraper"`

	Notify struct {
		Enabled bool  `yaml:"enabled"`
		ChatID  int64 `yaml:"chat_id"`
	} `yaml:"notify"`

	Services []ServiceDescriptor `yaml:"services"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.OutDir == "" {
		cfg.App.OutDir = "out"
	}
	if cfg.Scraper.Endpoint == "" {
		cfg.Scraper.Endpoint = "https://api.scraperapi.com/"
	}
}

// Enabled returns the services that should run, in config order.
func (c Config) EnabledServices() []ServiceDescriptor {
	var out []ServiceDescriptor
	for _, s := range c.Services {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}
