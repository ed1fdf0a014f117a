// path: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"quantum_shogi/internal/game"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseEnvDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for the
	// defaults to apply.
	t.Setenv("QSHOGI_ADDR", "")
	t.Setenv("QSHOGI_SETTINGS", "")
	require.NoError(t, os.Unsetenv("QSHOGI_ADDR"))
	require.NoError(t, os.Unsetenv("QSHOGI_SETTINGS"))

	cfg, err := ParseEnv()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Empty(t, cfg.SettingsPath)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("QSHOGI_ADDR", "127.0.0.1:9000")
	t.Setenv("QSHOGI_SETTINGS", "/etc/qshogi.yaml")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Addr)
	require.Equal(t, "/etc/qshogi.yaml", cfg.SettingsPath)
}

func TestLoadSettingsEmptyPath(t *testing.T) {
	settings, err := LoadSettings("")
	require.NoError(t, err)
	require.Equal(t, game.DefaultSettings(), settings)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadSettingsPartialFile(t *testing.T) {
	path := writeSettings(t, "max_worlds: 3\nhand_mode: global\n")

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, 3, settings.MaxWorlds)
	require.Equal(t, game.HandGlobal, settings.HandMode)
	// Omitted fields keep their defaults.
	require.Equal(t, 5, settings.MaxTimeJump)
	require.Equal(t, game.TimePastOnly, settings.TimePolicy)
	require.Equal(t, game.CheckPossible, settings.CheckMode)
}

func TestLoadSettingsFullFile(t *testing.T) {
	path := writeSettings(t, `
max_worlds: 9
max_time_jump: 2
hand_mode: per_world
time_policy: any
check_mode: certain
`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, game.Settings{
		MaxWorlds:   9,
		MaxTimeJump: 2,
		HandMode:    game.HandPerWorld,
		TimePolicy:  game.TimeAnyDirection,
		CheckMode:   game.CheckCertain,
	}, settings)
}

func TestLoadSettingsUnknownEnum(t *testing.T) {
	path := writeSettings(t, "time_policy: sideways\n")

	_, err := LoadSettings(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "time_policy")
}

func TestLoadSettingsValidation(t *testing.T) {
	path := writeSettings(t, "max_worlds: 0\nmax_time_jump: -1\n")

	_, err := LoadSettings(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "max_worlds")
	require.Contains(t, err.Error(), "max_time_jump")
}

func TestLoadSettingsBadYAML(t *testing.T) {
	path := writeSettings(t, "max_worlds: [oops\n")

	_, err := LoadSettings(path)
	require.Error(t, err)
}
