// path: internal/config/config.go
// Package config loads the process environment and the rule-settings file.
package config

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"quantum_shogi/internal/game"
)

// Server is the process-level configuration, from environment variables.
type Server struct {
	Addr         string `env:"QSHOGI_ADDR" envDefault:":8080"`
	SettingsPath string `env:"QSHOGI_SETTINGS"`
}

// ParseEnv loads Server from the environment.
func ParseEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// settingsFile is the yaml shape of the rule settings.
type settingsFile struct {
	MaxWorlds   int    `yaml:"max_worlds"`
	MaxTimeJump int    `yaml:"max_time_jump"`
	HandMode    string `yaml:"hand_mode"`
	TimePolicy  string `yaml:"time_policy"`
	CheckMode   string `yaml:"check_mode"`
}

// LoadSettings reads the rule settings from a yaml file, falling back to the
// defaults for an empty path or omitted fields, and validates the result.
func LoadSettings(path string) (game.Settings, error) {
	settings := game.DefaultSettings()
	if strings.TrimSpace(path) == "" {
		return settings, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return settings, errors.Wrap(err, "read settings")
	}
	file := settingsFile{
		MaxWorlds:   settings.MaxWorlds,
		MaxTimeJump: settings.MaxTimeJump,
		HandMode:    settings.HandMode.String(),
		TimePolicy:  settings.TimePolicy.String(),
		CheckMode:   settings.CheckMode.String(),
	}
	if err := yaml.Unmarshal(b, &file); err != nil {
		return settings, errors.Wrap(err, "settings yaml")
	}
	settings, err = file.toSettings()
	if err != nil {
		return settings, err
	}
	if err := settings.Validate(); err != nil {
		return settings, errors.Wrap(err, "settings")
	}
	return settings, nil
}

func (f settingsFile) toSettings() (game.Settings, error) {
	out := game.Settings{
		MaxWorlds:   f.MaxWorlds,
		MaxTimeJump: f.MaxTimeJump,
	}
	switch strings.ToLower(strings.TrimSpace(f.HandMode)) {
	case "", "per_world":
		out.HandMode = game.HandPerWorld
	case "global":
		out.HandMode = game.HandGlobal
	default:
		return out, errors.Errorf("unknown hand_mode %q", f.HandMode)
	}
	switch strings.ToLower(strings.TrimSpace(f.TimePolicy)) {
	case "", "past_only":
		out.TimePolicy = game.TimePastOnly
	case "any":
		out.TimePolicy = game.TimeAnyDirection
	default:
		return out, errors.Errorf("unknown time_policy %q", f.TimePolicy)
	}
	switch strings.ToLower(strings.TrimSpace(f.CheckMode)) {
	case "", "possible":
		out.CheckMode = game.CheckPossible
	case "certain":
		out.CheckMode = game.CheckCertain
	default:
		return out, errors.Errorf("unknown check_mode %q", f.CheckMode)
	}
	return out, nil
}
