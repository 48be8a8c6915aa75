package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"documentos/document"
)

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

type SMTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
}

type EmailConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Timeout bounds one document render.
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	// Documents is the directory holding one <id>.yaml file per document.
	Documents string            `yaml:"documents"`
	Document  document.Settings `yaml:"document"`
	SMTP      SMTPConfig        `yaml:"smtp"`
	Email     EmailConfig       `yaml:"email"`
	Server    ServerConfig      `yaml:"server"`
}

// Default returns the configuration used for keys missing from the file.
func Default() *Config {
	return &Config{
		Documents: "documents",
		Document:  document.DefaultSettings(),
		SMTP:      SMTPConfig{Port: 587},
		Server:    ServerConfig{Addr: ":8080", Timeout: 30 * time.Second},
	}
}

// loadConfig reads the configuration from path. With an empty path it looks
// for name in the working directory and then in the user configuration
// directory, and falls back to the defaults when neither exists.
func loadConfig(name, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = findConfig(name)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Documents == "" {
		return nil, errors.New("no documents directory configured")
	}
	if g := cfg.Document.Geometry; g.ContentWidth() <= 0 || g.Limit() <= g.Top {
		return nil, fmt.Errorf("page geometry leaves no room for content: %+v", g)
	}
	return cfg, nil
}

func findConfig(name string) string {
	candidates := []string{name}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "documentos", name))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
