package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"focustimer/internal/core/model"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const timersFileName = "timers.yaml"

// ErrTimerNotFound indicates no stored timer has the requested ID.
var ErrTimerNotFound = errors.New("timer not found")

type yamlTimerFile struct {
	Timers []yamlTimer `yaml:"timers"`
}

type yamlTimer struct {
	ID    string `yaml:"id"`
	Type  string `yaml:"type"`
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
	Emoji string `yaml:"emoji,omitempty"`

	WorkSeconds       int `yaml:"work_seconds,omitempty"`
	BreakSeconds      int `yaml:"break_seconds,omitempty"`
	LongBreakSeconds  int `yaml:"long_break_seconds,omitempty"`
	LongBreakInterval int `yaml:"long_break_interval,omitempty"`
	Repetitions       int `yaml:"repetitions,omitempty"`

	Sequence []yamlSegment `yaml:"sequence,omitempty"`
}

type yamlSegment struct {
	Seconds int    `yaml:"seconds"`
	IsBreak bool   `yaml:"is_break"`
	Label   string `yaml:"label,omitempty"`
}

// TimerStore persists user timer definitions as YAML, in insertion order.
type TimerStore struct {
	mu     sync.Mutex
	path   string
	timers []model.Definition
}

// OpenTimers loads the timers file at path. A missing file yields an empty store.
// Entries that fail validation are skipped.
func OpenTimers(path string) (*TimerStore, error) {
	store := &TimerStore{path: path}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return store, fmt.Errorf("read timers file: %w", err)
	}

	var fileData yamlTimerFile
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return store, fmt.Errorf("parse timers yaml: %w", err)
	}

	var skipped []error
	for _, entry := range fileData.Timers {
		definition, err := entry.definition()
		if err == nil {
			err = definition.Validate()
		}
		if err != nil {
			skipped = append(skipped, fmt.Errorf("timer %q: %w", entry.Name, err))
			continue
		}
		store.timers = append(store.timers, definition)
	}
	return store, errors.Join(skipped...)
}

// TimersPath returns the timers file location inside configDir.
func TimersPath(configDir string) string {
	return filepath.Join(configDir, timersFileName)
}

// List returns copies of all stored timers.
func (store *TimerStore) List() ([]model.Definition, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	timers := make([]model.Definition, 0, len(store.timers))
	for _, definition := range store.timers {
		timers = append(timers, definition.Clone())
	}
	return timers, nil
}

// Get returns the timer with the given ID.
func (store *TimerStore) Get(id string) (model.Definition, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexLocked(id)
	if index < 0 {
		return nil, fmt.Errorf("get timer %s: %w", id, ErrTimerNotFound)
	}
	return store.timers[index].Clone(), nil
}

// Save validates and stores a timer, replacing any timer with the same ID.
// A timer without an ID gets a new one. The stored copy is returned.
func (store *TimerStore) Save(definition model.Definition) (model.Definition, error) {
	if definition == nil {
		return nil, fmt.Errorf("save timer: %w: nil definition", model.ErrInvalidDefinition)
	}
	if err := definition.Validate(); err != nil {
		return nil, fmt.Errorf("save timer: %w", err)
	}
	definition = withID(definition.Clone())

	store.mu.Lock()
	defer store.mu.Unlock()

	previous := append([]model.Definition(nil), store.timers...)
	if index := store.indexLocked(definition.Info().ID); index >= 0 {
		store.timers[index] = definition
	} else {
		store.timers = append(store.timers, definition)
	}
	if err := store.saveLocked(); err != nil {
		store.timers = previous
		return nil, err
	}
	return definition.Clone(), nil
}

// Delete removes the timer with the given ID.
func (store *TimerStore) Delete(id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexLocked(id)
	if index < 0 {
		return fmt.Errorf("delete timer %s: %w", id, ErrTimerNotFound)
	}
	previous := append([]model.Definition(nil), store.timers...)
	store.timers = append(store.timers[:index:index], store.timers[index+1:]...)
	if err := store.saveLocked(); err != nil {
		store.timers = previous
		return err
	}
	return nil
}

func (store *TimerStore) indexLocked(id string) int {
	for index, definition := range store.timers {
		if definition.Info().ID == id {
			return index
		}
	}
	return -1
}

func (store *TimerStore) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlTimerFile{Timers: make([]yamlTimer, 0, len(store.timers))}
	for _, definition := range store.timers {
		fileData.Timers = append(fileData.Timers, toYamlTimer(definition))
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal timers yaml: %w", err)
	}
	if err := writeFileAtomic(store.path, serialized); err != nil {
		return fmt.Errorf("write timers file: %w", err)
	}
	return nil
}

func withID(definition model.Definition) model.Definition {
	if definition.Info().ID != "" {
		return definition
	}
	id := uuid.New().String()
	switch timer := definition.(type) {
	case model.NormalTimer:
		timer.ID = id
		return timer
	case model.SequenceTimer:
		timer.ID = id
		return timer
	}
	return definition
}

func toYamlTimer(definition model.Definition) yamlTimer {
	info := definition.Info()
	entry := yamlTimer{
		ID:    info.ID,
		Type:  string(definition.Kind()),
		Name:  info.Name,
		Color: info.Color,
		Emoji: info.Emoji,
	}

	switch timer := definition.(type) {
	case model.NormalTimer:
		entry.WorkSeconds = seconds(timer.WorkDuration)
		entry.BreakSeconds = seconds(timer.BreakDuration)
		entry.LongBreakSeconds = seconds(timer.LongBreakDuration)
		entry.LongBreakInterval = timer.LongBreakInterval
		entry.Repetitions = timer.Repetitions
	case model.SequenceTimer:
		for _, segment := range timer.Segments {
			entry.Sequence = append(entry.Sequence, yamlSegment{
				Seconds: seconds(segment.Duration),
				IsBreak: segment.IsBreak,
				Label:   segment.Label,
			})
		}
	}
	return entry
}

func (entry yamlTimer) definition() (model.Definition, error) {
	info := model.TimerInfo{ID: entry.ID, Name: entry.Name, Color: entry.Color, Emoji: entry.Emoji}

	switch model.TimerKind(entry.Type) {
	case model.KindNormal, "":
		return model.NormalTimer{
			TimerInfo:         info,
			WorkDuration:      time.Duration(entry.WorkSeconds) * time.Second,
			BreakDuration:     time.Duration(entry.BreakSeconds) * time.Second,
			LongBreakDuration: time.Duration(entry.LongBreakSeconds) * time.Second,
			LongBreakInterval: entry.LongBreakInterval,
			Repetitions:       entry.Repetitions,
		}, nil
	case model.KindSequence:
		timer := model.SequenceTimer{TimerInfo: info}
		for _, segment := range entry.Sequence {
			timer.Segments = append(timer.Segments, model.Segment{
				Duration: time.Duration(segment.Seconds) * time.Second,
				IsBreak:  segment.IsBreak,
				Label:    segment.Label,
			})
		}
		return timer, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", model.ErrInvalidDefinition, entry.Type)
	}
}

func seconds(value time.Duration) int {
	return int(value / time.Second)
}
