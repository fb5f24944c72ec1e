package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"focustimer/internal/core/model"
)

// Values holds the editable form contents of the preferences window.
type Values struct {
	WorkMinutes       string
	BreakMinutes      string
	LongBreakMinutes  string
	LongBreakInterval string

	SoundEnabled     bool
	VibrationEnabled bool
	AutoAdvance      bool
	DailyReminders   bool
	ReminderTime     string
	Theme            model.Theme
}

// ValuesFromSettings fills the form from stored settings.
func ValuesFromSettings(settings model.AppSettings) Values {
	return Values{
		WorkMinutes:       formatMinutes(settings.WorkDuration),
		BreakMinutes:      formatMinutes(settings.BreakDuration),
		LongBreakMinutes:  formatMinutes(settings.LongBreakDuration),
		LongBreakInterval: strconv.Itoa(settings.LongBreakInterval),
		SoundEnabled:      settings.SoundEnabled,
		VibrationEnabled:  settings.VibrationEnabled,
		AutoAdvance:       settings.AutoAdvance,
		DailyReminders:    settings.DailyReminders,
		ReminderTime:      settings.ReminderTime,
		Theme:             settings.Theme,
	}
}

// Patch converts form values to a settings update. Numeric fields that do
// not parse as positive integers and an invalid reminder time are left out.
func (values Values) Patch() model.SettingsPatch {
	patch := model.SettingsPatch{
		SoundEnabled:     boolPtr(values.SoundEnabled),
		VibrationEnabled: boolPtr(values.VibrationEnabled),
		AutoAdvance:      boolPtr(values.AutoAdvance),
		DailyReminders:   boolPtr(values.DailyReminders),
	}

	if minutes, ok := parsePositiveInt(values.WorkMinutes); ok {
		patch.WorkDuration = minutesPtr(minutes)
	}
	if minutes, ok := parsePositiveInt(values.BreakMinutes); ok {
		patch.BreakDuration = minutesPtr(minutes)
	}
	if minutes, ok := parsePositiveInt(values.LongBreakMinutes); ok {
		patch.LongBreakDuration = minutesPtr(minutes)
	}
	if interval, ok := parsePositiveInt(values.LongBreakInterval); ok {
		patch.LongBreakInterval = &interval
	}

	reminder := strings.TrimSpace(values.ReminderTime)
	if _, err := model.ParseReminderTime(reminder); err == nil {
		patch.ReminderTime = &reminder
	}
	switch values.Theme {
	case model.ThemeLight, model.ThemeDark, model.ThemeAuto:
		theme := values.Theme
		patch.Theme = &theme
	}
	return patch
}

func formatMinutes(value time.Duration) string {
	return fmt.Sprintf("%d", int(value.Minutes()))
}

func minutesPtr(minutes int) *time.Duration {
	value := time.Duration(minutes) * time.Minute
	return &value
}

func boolPtr(value bool) *bool {
	return &value
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
