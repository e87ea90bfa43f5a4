package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	SaveDirectory string
	Locale        string
	Theme         string
	Confirmations bool
	Database      string
	Debug         bool
	dataDir       string
}

func defaultConfig(homeDir string) *Config {
	config := &Config{
		Theme:         "auto",
		Confirmations: true,
	}
	if homeDir != "" {
		config.dataDir = filepath.Join(homeDir, ".octalysis")
	}
	return config
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig("")
	}

	file, err := os.Open(filepath.Join(homeDir, ".octalysisrc"))
	if err != nil {
		return defaultConfig(homeDir)
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig(homeDir)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "database", "db":
			config.Database = expandPath(value, homeDir)
		case "locale", "language", "lang":
			config.Locale = strings.ToLower(value)
		case "theme":
			switch strings.ToLower(value) {
			case "light", "dark", "auto":
				config.Theme = strings.ToLower(value)
			}
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "debug":
			config.Debug = strings.ToLower(value) == "true"
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0o755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

// DatabasePath is the snapshot database, by default inside ~/.octalysis.
func (c *Config) DatabasePath() string {
	if c.Database != "" {
		return c.Database
	}
	if c.dataDir == "" {
		return "octalysis.db"
	}
	return filepath.Join(c.dataDir, "octalysis.db")
}

func (c *Config) LogPath() string {
	if c.dataDir == "" {
		return "octalysis.log"
	}
	return filepath.Join(c.dataDir, "octalysis.log")
}
