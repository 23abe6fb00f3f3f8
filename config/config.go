package config

import (
	"calcgrid/log"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".calcgrid"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// Insets mirrors layout.Insets so the config package stays free of UI imports.
type Insets struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Bottom int `json:"bottom"`
	Right  int `json:"right"`
}

// Config represents the application configuration
type Config struct {
	// Gap is the spacing between grid cells, in terminal cells.
	Gap int `json:"gap"`
	// Insets is the margin around the keypad.
	Insets Insets `json:"insets"`
	// Mouse enables clicking buttons.
	Mouse bool `json:"mouse"`
	// ShowMenu shows the one-line key help below the keypad.
	ShowMenu bool `json:"show_menu"`
	// ErrorTimeoutMs is how long an error stays in the error box.
	ErrorTimeoutMs int `json:"error_timeout_ms"`
	// StartInverted starts with the inversion toggle on.
	StartInverted bool `json:"start_inverted"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Gap:            1,
		Mouse:          true,
		ShowMenu:       true,
		ErrorTimeoutMs: 3000,
	}
}

// ErrorTimeout returns ErrorTimeoutMs as a duration. Non-positive values fall
// back to the default.
func (c *Config) ErrorTimeout() time.Duration {
	if c.ErrorTimeoutMs <= 0 {
		return time.Duration(DefaultConfig().ErrorTimeoutMs) * time.Millisecond
	}
	return time.Duration(c.ErrorTimeoutMs) * time.Millisecond
}

// Validate reports settings the keypad cannot work with.
func (c *Config) Validate() error {
	if c.Gap < 0 {
		return fmt.Errorf("gap must not be negative, got %d", c.Gap)
	}
	if c.Insets.Top < 0 || c.Insets.Left < 0 || c.Insets.Bottom < 0 || c.Insets.Right < 0 {
		return fmt.Errorf("insets must not be negative, got %+v", c.Insets)
	}
	return nil
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	// Fields missing from the file keep their defaults.
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		log.WarningLog.Printf("invalid config at %s: %v", configPath, err)
		return DefaultConfig()
	}

	return config
}

// saveConfig saves the configuration to disk
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

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	return saveConfig(config)
}
