package main

import (
	"errors"
	"log"
	"time"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timekeeper"
	"focustimer/internal/feedback"
	"focustimer/internal/platform"
	"focustimer/internal/storage"
	"focustimer/internal/ui/preferences"
	uitheme "focustimer/internal/ui/theme"
	"focustimer/internal/ui/timers"
	"focustimer/internal/ui/timerview"
	"focustimer/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "FocusTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: activated running %s", appName)
		} else {
			log.Printf("single instance: %v", err)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		log.Printf("config dir: %v", err)
	}
	settingsStore, err := storage.OpenSettings(storage.SettingsPath(configDir))
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	timerStore, err := storage.OpenTimers(storage.TimersPath(configDir))
	if err != nil {
		log.Printf("load timers: %v", err)
	}

	fyneApp := app.NewWithID("com.focustimer.app")
	uitheme.Apply(fyneApp, settingsStore.Get().Theme)

	keeper := timekeeper.New(settingsStore, feedback.NewDesktop(appName, fyneApp), timekeeper.Config{TickInterval: time.Second})

	timerWindow := timerview.New(fyneApp, keeper)
	timerWindow.Window().SetCloseIntercept(func() {
		timerWindow.Window().Hide()
	})

	var trayManager *tray.Manager
	startTimer := func(definition model.Definition) {
		keeper.Start(definition)
		timerWindow.SetTimer(keeper.Definition())
		timerWindow.Render(keeper.Snapshot())
		timerWindow.Show()
	}

	timersWindow := timers.New(fyneApp, timerStore, startTimer, func(updated []model.Definition) {
		if trayManager != nil {
			trayManager.SetTimers(timerInfos(updated))
		}
	})

	prefsWindow := preferences.New(fyneApp, settingsStore.Get(), func(patch model.SettingsPatch) {
		updated, err := settingsStore.Update(patch)
		if err != nil {
			log.Printf("save settings: %v", err)
		}
		keeper.SettingsChanged()
		uitheme.Apply(fyneApp, updated.Theme)
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowTimer:   timerWindow.Show,
			OnTimers:      timersWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnPlayPause:   keeper.PlayPause,
			OnSkip:        keeper.Skip,
			OnReset:       keeper.Reset,
			OnStartTimer: func(id string) {
				if id == "" {
					startTimer(nil)
					return
				}
				definition, err := timerStore.Get(id)
				if err != nil {
					log.Printf("start timer: %v", err)
					return
				}
				startTimer(definition)
			},
			OnQuit: func() {
				keeper.Stop()
				fyneApp.Quit()
			},
		})
		if stored, err := timerStore.List(); err == nil {
			trayManager.SetTimers(timerInfos(stored))
		}
	} else {
		log.Printf("system tray unsupported on this platform")
		timerWindow.Window().SetCloseIntercept(nil)
		timerWindow.Window().SetMaster()
	}

	guard.Serve(func() {
		fyne.Do(timerWindow.Show)
	})

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			timerWindow.Update(event)
			if trayManager != nil {
				event := event
				fyne.Do(func() {
					trayManager.SetStatus(event.Label + " " + timerview.FormatClock(event.Session.TimeLeft))
					trayManager.SetSession(event.Session)
				})
			}
		}
	}()

	initial := keeper.Snapshot()
	timerWindow.Render(initial)
	if trayManager != nil {
		trayManager.SetStatus(initial.Label + " " + timerview.FormatClock(initial.Session.TimeLeft))
		trayManager.SetSession(initial.Session)
	}

	timerWindow.Show()
	fyneApp.Run()
	keeper.Stop()
}

func timerInfos(definitions []model.Definition) []model.TimerInfo {
	infos := make([]model.TimerInfo, 0, len(definitions))
	for _, definition := range definitions {
		infos = append(infos, definition.Info())
	}
	return infos
}
