package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studytimer/internal/core/model"
	"studytimer/internal/platform"
	"studytimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

const (
	maxStudyMinutes = 180
	maxBreakMinutes = 60
)

type yamlSettings struct {
	Variant          string `yaml:"variant"`
	StudyMinutes     int    `yaml:"study_minutes"`
	BreakMinutes     int    `yaml:"break_minutes"`
	BreakButton      *bool  `yaml:"break_button"`
	NewSessionReveal *bool  `yaml:"new_session_reveal"`
	Language         string `yaml:"language"`
	LogLevel         string `yaml:"log_level"`
	LogFormat        string `yaml:"log_format"`
}

// LoadSettings reads user preferences from the YAML file in the user config
// directory. If the file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, string, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), "", err
	}
	settings, err := LoadSettingsFile(configPath)
	return settings, configPath, err
}

// LoadSettingsFile reads user preferences from configPath. Defaults are
// returned alongside any error.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Variant != "" {
		settings.Variant = model.ParseVariant(fileData.Variant)
	}
	if fileData.StudyMinutes > 0 && fileData.StudyMinutes <= maxStudyMinutes {
		settings.StudyDuration = time.Duration(fileData.StudyMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 && fileData.BreakMinutes <= maxBreakMinutes {
		settings.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}

	settings.BreakButton = fileData.BreakButton
	settings.NewSessionReveal = fileData.NewSessionReveal

	settings.Language = strings.TrimSpace(fileData.Language)
	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}
	if fileData.LogFormat != "" {
		settings.LogFormat = fileData.LogFormat
	}
}
