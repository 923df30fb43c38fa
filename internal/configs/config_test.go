package configs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/enigma/internal/configs"
	errs "github.com/PolarWolf314/enigma/internal/errors"
)

// useConfigDir points the user settings at a fresh directory for one test.
func useConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := configs.UserEnigmaSettings.UserConfigsPath
	configs.UserEnigmaSettings.UserConfigsPath = dir
	t.Cleanup(func() { configs.UserEnigmaSettings.UserConfigsPath = orig })
	return dir
}

func TestLoadUserConfigDefaults(t *testing.T) {
	useConfigDir(t)

	cfg, err := configs.LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultUserConfig(), cfg)
	assert.Equal(t, configs.DefaultGroupSize, cfg.Defaults.GroupSize)
}

func TestUserConfigRoundTrip(t *testing.T) {
	dir := useConfigDir(t)

	cfg := configs.DefaultUserConfig()
	require.NoError(t, cfg.Set(configs.KeyMachine, "/machines/naval.conf"))
	require.NoError(t, cfg.Set(configs.KeyGroupSize, "4"))
	require.NoError(t, cfg.Set(configs.KeyJournal, "journal.jsonl"))
	require.NoError(t, configs.SaveUserConfig(cfg))

	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	loaded, err := configs.LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	got, err := loaded.Get(configs.KeyGroupSize)
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}

func TestLoadUserConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := useConfigDir(t)
	data := []byte("[defaults]\nmachine = \"naval.yaml\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), data, 0644))

	cfg, err := configs.LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "naval.yaml", cfg.Defaults.Machine)
	assert.Equal(t, configs.DefaultGroupSize, cfg.Defaults.GroupSize)
}

func TestLoadUserConfigRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative group size", "[defaults]\ngroup_size = -1\n"},
		{"unknown key", "[defaults]\nwheels = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := useConfigDir(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(tt.data), 0644))

			_, err := configs.LoadUserConfig()
			assert.ErrorIs(t, err, errs.ErrInvalidUserSetting)
		})
	}
}

func TestUserConfigSetErrors(t *testing.T) {
	cfg := configs.DefaultUserConfig()

	assert.ErrorIs(t, cfg.Set("wheels", "3"), errs.ErrInvalidUserSetting)
	assert.ErrorIs(t, cfg.Set(configs.KeyGroupSize, "five"), errs.ErrInvalidUserSetting)
	assert.ErrorIs(t, cfg.Set(configs.KeyGroupSize, "-2"), errs.ErrInvalidUserSetting)
	assert.Equal(t, configs.DefaultGroupSize, cfg.Defaults.GroupSize)

	_, err := cfg.Get("wheels")
	assert.ErrorIs(t, err, errs.ErrInvalidUserSetting)
}

func TestUserConfigPathHonoursOverride(t *testing.T) {
	dir := useConfigDir(t)
	assert.Equal(t, filepath.Join(dir, "config.toml"), configs.UserConfigPath())
}
