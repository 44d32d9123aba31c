package config

import (
	"os"
	"time"

	"github.com/mj-jones15/pastProjects/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port        string `yaml:"port"`
		IdleTimeout string `yaml:"idle_timeout"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Worksheet struct {
		TTL string `yaml:"ttl"`
	} `yaml:"worksheet"`
	Seat struct {
		TTL string `yaml:"ttl"`
	} `yaml:"seat"`
	Drill struct {
		ShowAnswers bool `yaml:"show_answers"`
	} `yaml:"drill"`
	// Worksheets declared inline are served when no Postgres is configured.
	Worksheets []domain.Worksheet `yaml:"worksheets"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadWorksheets reads a YAML document holding a top-level worksheets list.
func LoadWorksheets(path string) ([]domain.Worksheet, error) {
	var doc struct {
		Worksheets []domain.Worksheet `yaml:"worksheets"`
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Worksheets, nil
}

// Duration parses a duration string or returns the fallback if empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
