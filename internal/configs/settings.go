package configs

import (
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
}

var UserEnigmaSettings *UserSettings

func init() {
	UserEnigmaSettings = &UserSettings{
		UserConfigsPath: userConfigsPath(),
	}
}

func userConfigsPath() string {
	if dir := os.Getenv("ENIGMA_CONFIG_DIR"); dir != "" {
		return dir
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		// No HOME or XDG_CONFIG_HOME; keep preferences next to the working directory.
		return filepath.Join(".", ".enigma")
	}
	return filepath.Join(configDir, "enigma")
}

// UserConfigPath returns the location of the user's config.toml.
func UserConfigPath() string {
	return filepath.Join(UserEnigmaSettings.UserConfigsPath, "config.toml")
}
