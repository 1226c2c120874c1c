package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultURL = "https://media.istockphoto.com/id/1352010441/it/foto/" +
		"coppia-di-gattini-addormentati-innamorati-il-giorno-di-san-valentino" +
		"-i-nasi-dei-gatti-si.jpg?s=612x612&w=0&k=20&c=bd60KCbS1ImSwQbdND-8c3uGUVGK9VLrDPMQ-ebAJ0Q="
	DefaultFilename = "sfondo_gattini.jpg"
)

type Config struct {
	URL      string `yaml:"url"`
	Filename string `yaml:"filename"`
	Notify   bool   `yaml:"notify"`
	Fallback bool   `yaml:"fallback"`
}

// Load reads ~/.config/changebg/config.yaml. A missing file is not an error.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaults(), nil
	}
	return LoadFile(filepath.Join(home, ".config", "changebg", "config.yaml"))
}

// LoadFile reads the config at path, falling back to defaults for any unset key.
func LoadFile(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Filename == "" {
		cfg.Filename = DefaultFilename
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		URL:      DefaultURL,
		Filename: DefaultFilename,
	}
}

// ResolvedImagePath returns the absolute location of the downloaded image.
// Relative filenames land in the current working directory.
func (c *Config) ResolvedImagePath() (string, error) {
	if filepath.IsAbs(c.Filename) {
		return c.Filename, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, c.Filename), nil
}
