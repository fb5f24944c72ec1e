package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustimer/internal/core/model"
)

func findItem(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	require.Failf(t, "menu item not found", "label %q", label)
	return nil
}

func TestManager_StartTimerSubmenu(t *testing.T) {
	var started []string
	manager := New(nil, Callbacks{OnStartTimer: func(id string) { started = append(started, id) }})
	manager.SetTimers([]model.TimerInfo{{ID: "a", Name: "Deep Work", Emoji: "🧠"}, {ID: "b", Name: "Tabata"}})

	start := findItem(t, manager.Menu(), "Start timer")
	require.NotNil(t, start.ChildMenu)
	items := start.ChildMenu.Items
	require.Len(t, items, 4)
	assert.Equal(t, "Pomodoro", items[0].Label)
	assert.True(t, items[1].IsSeparator)
	assert.Equal(t, "🧠 Deep Work", items[2].Label)
	assert.Equal(t, "Tabata", items[3].Label)

	items[0].Action()
	items[3].Action()
	assert.Equal(t, []string{"", "b"}, started)
}

func TestManager_SetSession(t *testing.T) {
	manager := New(nil, Callbacks{})
	manager.SetStatus("Focus Time 24:59")
	manager.SetSession(model.SessionState{IsRunning: true})

	menu := manager.Menu()
	assert.Equal(t, "Status: Focus Time 24:59", menu.Items[0].Label)
	assert.False(t, findItem(t, menu, "Pause").Disabled)

	manager.SetSession(model.SessionState{})
	menu = manager.Menu()
	assert.Equal(t, "Status: Focus Time 24:59 (paused)", menu.Items[0].Label)
	findItem(t, menu, "Start")

	manager.SetSession(model.SessionState{Finished: true})
	menu = manager.Menu()
	assert.Equal(t, "Status: Focus Time 24:59 (complete)", menu.Items[0].Label)
	assert.True(t, findItem(t, menu, "Start").Disabled)
	assert.True(t, findItem(t, menu, "Skip phase").Disabled)
}

func TestManager_Callbacks(t *testing.T) {
	var calls []string
	manager := New(nil, Callbacks{
		OnPlayPause: func() { calls = append(calls, "play") },
		OnSkip:      func() { calls = append(calls, "skip") },
		OnReset:     func() { calls = append(calls, "reset") },
		OnQuit:      func() { calls = append(calls, "quit") },
	})
	menu := manager.Menu()
	findItem(t, menu, "Start").Action()
	findItem(t, menu, "Skip phase").Action()
	findItem(t, menu, "Reset").Action()
	findItem(t, menu, "Quit").Action()
	findItem(t, menu, "Preferences").Action()
	assert.Equal(t, []string{"play", "skip", "reset", "quit"}, calls)
}
