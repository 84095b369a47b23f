package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and in the
// user config directory.
const FileName = ".tinytest.yaml"

// Constants for default values.
const (
	DefaultPadding = 32
	DefaultTheme   = "default"
)

// FileConfig is the content of a .tinytest.yaml file.
type FileConfig struct {
	Padding      int    `yaml:"padding"`
	Theme        string `yaml:"theme"`
	Silent       bool   `yaml:"silent"`
	SilentErrors bool   `yaml:"silent_errors"`
	NoBench      bool   `yaml:"no_bench"`
	LogFile      string `yaml:"log_file"`
	NoColor      bool   `yaml:"no_color"`
	Debug        bool   `yaml:"debug"`
}

// LoadFile reads the config file, if one exists. It returns the path it
// read, or "" when no file was found. A file that exists but cannot be read
// or parsed is reported as an error together with an empty config.
func LoadFile() (*FileConfig, string, error) {
	path := getConfigPath()
	if path == "" {
		return &FileConfig{}, "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &FileConfig{}, path, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &FileConfig{}, path, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, path, nil
}

// getConfigPath checks the working directory first, then the user config
// directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "tinytest", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
