package tray

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"focustimer/internal/core/model"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnTimers      func()
	OnPreferences func()
	OnPlayPause   func()
	OnSkip        func()
	OnReset       func()
	OnStartTimer  func(id string)
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	playItem    *fyne.MenuItem
	skipItem    *fyne.MenuItem
	startItem   *fyne.MenuItem
	running     bool
	finished    bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks. A nil app builds
// the menu without installing it.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: ready", nil)
	manager.statusItem.Disabled = true

	manager.playItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnPlayPause != nil {
			manager.callbacks.OnPlayPause()
		}
	})
	manager.skipItem = fyne.NewMenuItem("Skip phase", func() {
		if manager.callbacks.OnSkip != nil {
			manager.callbacks.OnSkip()
		}
	})

	manager.startItem = fyne.NewMenuItem("Start timer", nil)
	manager.SetTimers(nil)

	return manager
}

// SetTimers rebuilds the timer submenu. The first entry always starts an
// ad-hoc pomodoro from settings.
func (manager *Manager) SetTimers(timers []model.TimerInfo) {
	items := []*fyne.MenuItem{
		fyne.NewMenuItem("Pomodoro", func() {
			if manager.callbacks.OnStartTimer != nil {
				manager.callbacks.OnStartTimer("")
			}
		}),
	}
	if len(timers) > 0 {
		items = append(items, fyne.NewMenuItemSeparator())
	}
	for _, info := range timers {
		id := info.ID
		items = append(items, fyne.NewMenuItem(TimerLabel(info), func() {
			if manager.callbacks.OnStartTimer != nil {
				manager.callbacks.OnStartTimer(id)
			}
		}))
	}
	manager.startItem.ChildMenu = fyne.NewMenu("", items...)
	manager.refreshMenu()
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetSession updates run state and the items that depend on it.
func (manager *Manager) SetSession(state model.SessionState) {
	manager.running = state.IsRunning
	manager.finished = state.Finished
	if state.IsRunning {
		manager.playItem.Label = "Pause"
	} else {
		manager.playItem.Label = "Start"
	}
	manager.playItem.Disabled = state.Finished
	manager.skipItem.Disabled = state.Finished
	manager.refreshStatus()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("FocusTimer",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShowTimer != nil {
				manager.callbacks.OnShowTimer()
			}
		}),
		fyne.NewMenuItemSeparator(),
		manager.playItem,
		manager.skipItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		manager.startItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Timers", func() {
			if manager.callbacks.OnTimers != nil {
				manager.callbacks.OnTimers()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

// TimerLabel is the menu text for a stored timer.
func TimerLabel(info model.TimerInfo) string {
	return strings.TrimSpace(info.Emoji + " " + info.Name)
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if status == "" {
		status = "ready"
	}
	switch {
	case manager.finished:
		status = fmt.Sprintf("%s (complete)", status)
	case !manager.running:
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}
