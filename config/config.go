package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"iwmenu/log"
)

const ConfigFileName = "config.json"

// GetConfigDir returns the path to the application's configuration directory.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, "iwmenu"), nil
}

// Config holds the persisted defaults substituted into prompts that the user
// leaves empty. An empty string means the field is unset.
type Config struct {
	// Station is the default wireless interface (e.g. wlan0), used as <wlan>.
	Station string `json:"station,omitempty"`
	// Adapter is the default physical radio (e.g. phy0), used as <phy>.
	Adapter string `json:"adapter,omitempty"`
}

// DefaultConfig returns the default configuration with both fields unset.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads the configuration from disk. A missing, unreadable or
// malformed file yields the default configuration; corruption is logged but
// never surfaced as an error to the caller.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read config file: %v", err)
		}
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.WarningLog.Printf("failed to parse config file, resetting defaults: %v", err)
		return DefaultConfig()
	}

	return &config
}

// saveConfig saves the configuration to disk. The write goes through a
// sibling temp file and a rename, so an interrupted save never leaves a
// half-written config behind for LoadConfig to reject.
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := configPath + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp config file: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// SaveConfig exports the saveConfig function for use by other packages.
func SaveConfig(config *Config) error {
	return saveConfig(config)
}

// ResetConfig removes the stored configuration file. A file that does not
// exist is not an error.
func ResetConfig() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	err = os.Remove(filepath.Join(configDir, ConfigFileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	return nil
}
