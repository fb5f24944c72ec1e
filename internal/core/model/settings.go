package model

import (
	"fmt"
	"time"
)

// Theme selects the UI color variant.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// AppSettings contains global defaults used when no timer definition overrides them.
type AppSettings struct {
	SoundEnabled     bool
	VibrationEnabled bool

	WorkDuration      time.Duration
	BreakDuration     time.Duration
	LongBreakDuration time.Duration
	LongBreakInterval int

	// AutoAdvance keeps a normal session running across work/break transitions.
	AutoAdvance bool

	DailyReminders bool
	ReminderTime   string
	Theme          Theme
}

// DefaultSettings returns default settings for FocusTimer.
func DefaultSettings() AppSettings {
	return AppSettings{
		SoundEnabled:      true,
		VibrationEnabled:  true,
		WorkDuration:      25 * time.Minute,
		BreakDuration:     5 * time.Minute,
		LongBreakDuration: 15 * time.Minute,
		LongBreakInterval: 4,
		AutoAdvance:       true,
		DailyReminders:    false,
		ReminderTime:      "09:00",
		Theme:             ThemeAuto,
	}
}

// Normalize replaces out-of-range values with defaults.
func (settings AppSettings) Normalize() AppSettings {
	defaults := DefaultSettings()
	if settings.WorkDuration < time.Second {
		settings.WorkDuration = defaults.WorkDuration
	}
	if settings.BreakDuration < time.Second {
		settings.BreakDuration = defaults.BreakDuration
	}
	if settings.LongBreakDuration < time.Second {
		settings.LongBreakDuration = defaults.LongBreakDuration
	}
	settings.WorkDuration = settings.WorkDuration.Truncate(time.Second)
	settings.BreakDuration = settings.BreakDuration.Truncate(time.Second)
	settings.LongBreakDuration = settings.LongBreakDuration.Truncate(time.Second)
	if settings.LongBreakInterval < 1 {
		settings.LongBreakInterval = defaults.LongBreakInterval
	}
	if _, err := ParseReminderTime(settings.ReminderTime); err != nil {
		settings.ReminderTime = defaults.ReminderTime
	}
	switch settings.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		settings.Theme = defaults.Theme
	}
	return settings
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	SoundEnabled      *bool
	VibrationEnabled  *bool
	WorkDuration      *time.Duration
	BreakDuration     *time.Duration
	LongBreakDuration *time.Duration
	LongBreakInterval *int
	AutoAdvance       *bool
	DailyReminders    *bool
	ReminderTime      *string
	Theme             *Theme
}

// Apply returns settings with the patch applied and normalized.
func (patch SettingsPatch) Apply(settings AppSettings) AppSettings {
	if patch.SoundEnabled != nil {
		settings.SoundEnabled = *patch.SoundEnabled
	}
	if patch.VibrationEnabled != nil {
		settings.VibrationEnabled = *patch.VibrationEnabled
	}
	if patch.WorkDuration != nil {
		settings.WorkDuration = *patch.WorkDuration
	}
	if patch.BreakDuration != nil {
		settings.BreakDuration = *patch.BreakDuration
	}
	if patch.LongBreakDuration != nil {
		settings.LongBreakDuration = *patch.LongBreakDuration
	}
	if patch.LongBreakInterval != nil {
		settings.LongBreakInterval = *patch.LongBreakInterval
	}
	if patch.AutoAdvance != nil {
		settings.AutoAdvance = *patch.AutoAdvance
	}
	if patch.DailyReminders != nil {
		settings.DailyReminders = *patch.DailyReminders
	}
	if patch.ReminderTime != nil {
		settings.ReminderTime = *patch.ReminderTime
	}
	if patch.Theme != nil {
		settings.Theme = *patch.Theme
	}
	return settings.Normalize()
}

// ParseReminderTime parses an "HH:MM" reminder time.
func ParseReminderTime(value string) (time.Duration, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("parse reminder time %q: %w", value, err)
	}
	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
}
