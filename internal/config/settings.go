package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the user-editable runtime configuration, stored as YAML.
// The desktop preferences surface of earlier builds maps 1:1 onto this file.
type Settings struct {
	// ServerPort is the localhost port the birthday feed is served on.
	ServerPort string `yaml:"server_port"`

	// SourceMode selects the contact source: SourceModeLocal or SourceModeWeb.
	SourceMode string `yaml:"source_mode"`

	// LocalPath is the absolute path to a .vcf file (local mode).
	LocalPath string `yaml:"local_path"`

	// WebURL is the CardDAV/WebDAV address of the contact source (web mode).
	WebURL string `yaml:"web_url"`

	// WebUser is the HTTP Basic Auth username for web mode. The password is
	// never stored here; it lives in the system keyring under KeyringService.
	WebUser string `yaml:"web_user"`

	// Language selects the greeting/notification locale (ISO 639-1).
	Language string `yaml:"language"`

	// ReminderCron is a cron-style schedule for the daily reminder pass.
	ReminderCron string `yaml:"reminder_cron"`

	// ReminderTrigger is an ISO8601 duration for feed alarms (e.g. "-P1D").
	// Empty disables VALARM generation.
	ReminderTrigger string `yaml:"reminder_trigger"`

	// DataFile overrides the default birthday data file location.
	DataFile string `yaml:"data_file"`
}

// DefaultSettings returns an in-memory default configuration.
func DefaultSettings() *Settings {
	return &Settings{
		ServerPort:      DefaultPort,
		SourceMode:      SourceModeLocal,
		Language:        DefaultLanguage,
		ReminderCron:    DefaultReminderCron,
		ReminderTrigger: DefaultReminderTrigger,
	}
}

// Normalize fills in missing/zero values so that partially-filled settings
// files (e.g. older versions) still behave correctly.
func (s *Settings) Normalize() {
	if s.ServerPort == "" {
		s.ServerPort = DefaultPort
	}
	switch s.SourceMode {
	case SourceModeLocal, SourceModeWeb:
	default:
		s.SourceMode = SourceModeLocal
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.ReminderCron == "" {
		s.ReminderCron = DefaultReminderCron
	}
}

// LoadSettings reads the settings file at path. A missing file is not an
// error: defaults are returned and a first-run file is written best-effort.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s := DefaultSettings()
		_ = s.Save(path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}
	s.Normalize()
	return &s, nil
}

// Save writes the settings to path with owner-only permissions.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", ErrCreateDir, err)
	}
	if err := os.WriteFile(path, data, FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	return nil
}

// DefaultSettingsPath returns the per-user location of the settings file.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrDataDir, err)
	}
	return filepath.Join(dir, AppID, SettingsFileName), nil
}

// DefaultDataPath returns the per-user location of the birthday data file.
func DefaultDataPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrDataDir, err)
	}
	return filepath.Join(dir, AppID, DataFileName), nil
}
