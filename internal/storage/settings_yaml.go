package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"focustimer/internal/core/model"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	SoundEnabled      *bool  `yaml:"sound_enabled"`
	VibrationEnabled  *bool  `yaml:"vibration_enabled"`
	WorkSeconds       int    `yaml:"work_seconds"`
	BreakSeconds      int    `yaml:"break_seconds"`
	LongBreakSeconds  int    `yaml:"long_break_seconds"`
	LongBreakInterval int    `yaml:"long_break_interval"`
	AutoAdvance       *bool  `yaml:"auto_advance"`
	DailyReminders    bool   `yaml:"daily_reminders"`
	ReminderTime      string `yaml:"reminder_time"`
	Theme             string `yaml:"theme"`
}

// SettingsStore keeps AppSettings in memory and persists them as YAML.
type SettingsStore struct {
	mu       sync.RWMutex
	path     string
	settings model.AppSettings
}

// OpenSettings loads the settings file at path.
// If the file does not exist, default settings are used.
func OpenSettings(path string) (*SettingsStore, error) {
	store := &SettingsStore{path: path, settings: model.DefaultSettings()}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return store, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return store, fmt.Errorf("parse settings yaml: %w", err)
	}

	store.settings = applyYamlSettings(store.settings, fileData)
	return store, nil
}

// SettingsPath returns the settings file location inside configDir.
func SettingsPath(configDir string) string {
	return filepath.Join(configDir, settingsFileName)
}

// Get returns the current settings.
func (store *SettingsStore) Get() model.AppSettings {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.settings
}

// Settings implements timekeeper.SettingsSource.
func (store *SettingsStore) Settings() model.AppSettings {
	return store.Get()
}

// Update applies a partial update and writes the result to disk.
// The in-memory settings change even when the write fails.
func (store *SettingsStore) Update(patch model.SettingsPatch) (model.AppSettings, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.settings = patch.Apply(store.settings)
	return store.settings, store.saveLocked()
}

func (store *SettingsStore) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	settings := store.settings
	fileData := yamlSettings{
		SoundEnabled:      &settings.SoundEnabled,
		VibrationEnabled:  &settings.VibrationEnabled,
		WorkSeconds:       int(settings.WorkDuration / time.Second),
		BreakSeconds:      int(settings.BreakDuration / time.Second),
		LongBreakSeconds:  int(settings.LongBreakDuration / time.Second),
		LongBreakInterval: settings.LongBreakInterval,
		AutoAdvance:       &settings.AutoAdvance,
		DailyReminders:    settings.DailyReminders,
		ReminderTime:      settings.ReminderTime,
		Theme:             string(settings.Theme),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := writeFileAtomic(store.path, serialized); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings model.AppSettings, fileData yamlSettings) model.AppSettings {
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.VibrationEnabled != nil {
		settings.VibrationEnabled = *fileData.VibrationEnabled
	}
	if fileData.AutoAdvance != nil {
		settings.AutoAdvance = *fileData.AutoAdvance
	}
	if fileData.WorkSeconds > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkSeconds) * time.Second
	}
	if fileData.BreakSeconds > 0 {
		settings.BreakDuration = time.Duration(fileData.BreakSeconds) * time.Second
	}
	if fileData.LongBreakSeconds > 0 {
		settings.LongBreakDuration = time.Duration(fileData.LongBreakSeconds) * time.Second
	}
	if fileData.LongBreakInterval > 0 {
		settings.LongBreakInterval = fileData.LongBreakInterval
	}
	if fileData.ReminderTime != "" {
		settings.ReminderTime = fileData.ReminderTime
	}
	if fileData.Theme != "" {
		settings.Theme = model.Theme(fileData.Theme)
	}

	settings.DailyReminders = fileData.DailyReminders
	return settings.Normalize()
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
