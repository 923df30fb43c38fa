package configs

import (
	"fmt"
	"os"
	"strconv"

	errs "github.com/PolarWolf314/enigma/internal/errors"
)

// DefaultGroupSize is the historical five-symbol output grouping.
const DefaultGroupSize = 5

type UserConfig struct {
	Defaults Defaults `toml:"defaults" json:"defaults"`
}

type Defaults struct {
	// Machine is the description used when a command is given none.
	Machine string `toml:"machine" json:"machine"`
	// GroupSize is the output group width; 0 disables grouping.
	GroupSize int `toml:"group_size" json:"group_size"`
	// Journal is the session journal path; empty disables journalling.
	Journal string `toml:"journal" json:"journal"`
}

// Setting keys accepted by UserConfig.Set.
const (
	KeyMachine   = "machine"
	KeyGroupSize = "group_size"
	KeyJournal   = "journal"
)

// SettingKeys lists the keys accepted by UserConfig.Set.
var SettingKeys = []string{KeyMachine, KeyGroupSize, KeyJournal}

// DefaultUserConfig returns the configuration used when no file exists.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{Defaults: Defaults{GroupSize: DefaultGroupSize}}
}

// LoadUserConfig loads the user configuration from the config file. Keys
// missing from the file keep their defaults.
func LoadUserConfig() (*UserConfig, error) {
	configPath := UserConfigPath()
	config := DefaultUserConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	if config.Defaults.GroupSize < 0 {
		return nil, fmt.Errorf("%w: group_size %d is negative", errs.ErrInvalidUserSetting, config.Defaults.GroupSize)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(UserConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// Set assigns value to the setting named key.
func (c *UserConfig) Set(key, value string) error {
	switch key {
	case KeyMachine:
		c.Defaults.Machine = value
	case KeyJournal:
		c.Defaults.Journal = value
	case KeyGroupSize:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: group_size must be a non-negative integer, got %q", errs.ErrInvalidUserSetting, value)
		}
		c.Defaults.GroupSize = n
	default:
		return fmt.Errorf("%w: unknown key %q", errs.ErrInvalidUserSetting, key)
	}
	return nil
}

// Get returns the value of the setting named key as text.
func (c *UserConfig) Get(key string) (string, error) {
	switch key {
	case KeyMachine:
		return c.Defaults.Machine, nil
	case KeyJournal:
		return c.Defaults.Journal, nil
	case KeyGroupSize:
		return strconv.Itoa(c.Defaults.GroupSize), nil
	default:
		return "", fmt.Errorf("%w: unknown key %q", errs.ErrInvalidUserSetting, key)
	}
}
