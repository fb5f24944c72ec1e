package timers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"focustimer/internal/core/model"
)

// Colors offered for timer accents.
var Colors = []string{
	"#FF6B35", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7", "#DDA0DD",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9", "#F8C471", "#82E0AA",
}

// Emojis offered for timer icons.
var Emojis = []string{"🍅", "📚", "💪", "🎯", "🚀", "⭐", "🌟", "🔥", "💎", "🎨", "🎮", "🏃"}

// NormalValues holds the editable fields of a normal timer.
// Durations use Go duration syntax such as "25m" or "1m30s".
// Empty break fields fall back to the global settings.
type NormalValues struct {
	Name              string
	Emoji             string
	Color             string
	Work              string
	Break             string
	LongBreak         string
	LongBreakInterval string
	Repetitions       string
}

// NormalValuesFrom fills the form from an existing timer.
func NormalValuesFrom(timer model.NormalTimer) NormalValues {
	values := NormalValues{
		Name:        timer.Name,
		Emoji:       timer.Emoji,
		Color:       timer.Color,
		Work:        FormatDuration(timer.WorkDuration),
		Break:       FormatDuration(timer.BreakDuration),
		LongBreak:   FormatDuration(timer.LongBreakDuration),
		Repetitions: strconv.Itoa(timer.Repetitions),
	}
	if timer.LongBreakInterval > 0 {
		values.LongBreakInterval = strconv.Itoa(timer.LongBreakInterval)
	}
	return values
}

// Timer builds a validated normal timer. info supplies the ID of the timer being edited.
func (values NormalValues) Timer(info model.TimerInfo) (model.NormalTimer, error) {
	timer := model.NormalTimer{
		TimerInfo: model.TimerInfo{
			ID:    info.ID,
			Name:  strings.TrimSpace(values.Name),
			Emoji: values.Emoji,
			Color: values.Color,
		},
	}

	var err error
	if timer.WorkDuration, err = parseDuration("work", values.Work); err != nil {
		return model.NormalTimer{}, err
	}
	if timer.BreakDuration, err = parseDuration("break", values.Break); err != nil {
		return model.NormalTimer{}, err
	}
	if timer.LongBreakDuration, err = parseDuration("long break", values.LongBreak); err != nil {
		return model.NormalTimer{}, err
	}
	if timer.LongBreakInterval, err = parseCount("long break interval", values.LongBreakInterval, 0); err != nil {
		return model.NormalTimer{}, err
	}
	if timer.Repetitions, err = parseCount("repetitions", values.Repetitions, 1); err != nil {
		return model.NormalTimer{}, err
	}

	if err := timer.Validate(); err != nil {
		return model.NormalTimer{}, err
	}
	return timer, nil
}

// SequenceTimer builds a validated sequence timer from segment lines.
func SequenceTimer(info model.TimerInfo, segments string) (model.SequenceTimer, error) {
	parsed, err := ParseSegments(segments)
	if err != nil {
		return model.SequenceTimer{}, err
	}
	info.Name = strings.TrimSpace(info.Name)
	timer := model.SequenceTimer{TimerInfo: info, Segments: parsed}
	if err := timer.Validate(); err != nil {
		return model.SequenceTimer{}, err
	}
	return timer, nil
}

// ParseSegments reads one segment per line in the form
// "<duration> <work|break> [label]". Blank lines and lines starting with # are ignored.
func ParseSegments(text string) ([]model.Segment, error) {
	var segments []model.Segment
	for number, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected \"<duration> <work|break> [label]\"", number+1)
		}
		duration, err := time.ParseDuration(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", number+1, err)
		}

		segment := model.Segment{Duration: duration}
		switch strings.ToLower(fields[1]) {
		case "work":
		case "break", "rest":
			segment.IsBreak = true
		default:
			return nil, fmt.Errorf("line %d: unknown segment kind %q", number+1, fields[1])
		}
		if len(fields) > 2 {
			segment.Label = strings.Join(fields[2:], " ")
		}
		segments = append(segments, segment)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: sequence has no segments", model.ErrInvalidDefinition)
	}
	return segments, nil
}

// FormatSegments renders segments in the format read by ParseSegments.
func FormatSegments(segments []model.Segment) string {
	lines := make([]string, 0, len(segments))
	for _, segment := range segments {
		kind := "work"
		if segment.IsBreak {
			kind = "break"
		}
		line := FormatDuration(segment.Duration) + " " + kind
		if segment.Label != "" {
			line += " " + segment.Label
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// FormatDuration renders a duration compactly, such as "25m" or "1m30s".
// Zero renders as an empty string.
func FormatDuration(value time.Duration) string {
	if value <= 0 {
		return ""
	}
	value = value.Truncate(time.Second)
	hours := value / time.Hour
	minutes := (value % time.Hour) / time.Minute
	seconds := (value % time.Minute) / time.Second

	var builder strings.Builder
	if hours > 0 {
		fmt.Fprintf(&builder, "%dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&builder, "%dm", minutes)
	}
	if seconds > 0 {
		fmt.Fprintf(&builder, "%ds", seconds)
	}
	return builder.String()
}

// Summary describes a timer in one line for the list.
func Summary(definition model.Definition) string {
	switch timer := definition.(type) {
	case model.NormalTimer:
		text := fmt.Sprintf("%s focus", FormatDuration(timer.WorkDuration))
		if timer.BreakDuration > 0 {
			text += fmt.Sprintf(" · %s break", FormatDuration(timer.BreakDuration))
		}
		return text + fmt.Sprintf(" · %d×", timer.Repetitions)
	case model.SequenceTimer:
		return fmt.Sprintf("%d segments · %s total", len(timer.Segments), FormatDuration(timer.TotalDuration()))
	}
	return ""
}

func parseDuration(field, value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return parsed, nil
}

func parseCount(field, value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return parsed, nil
}
