package main

import (
	"errors"

	"studytimer/internal/core/schedule"
	"studytimer/internal/core/session"
	"studytimer/internal/i18n"
	"studytimer/internal/logging"
	"studytimer/internal/platform"
	"studytimer/internal/storage"
	"studytimer/internal/ui/timerview"
	"studytimer/internal/ui/tray"
	"studytimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog/log"
)

const appName = "StudyTimer"

func main() {
	settings, configPath, settingsErr := storage.LoadSettings(appName)

	logger := logging.New(settings.Logging(), nil)
	log.Logger = logger
	if settingsErr != nil {
		logger.Warn().Err(settingsErr).Str("path", configPath).Msg("settings not loaded, using defaults")
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info().Msg("already running, activated the existing window")
			return
		}
		logger.Error().Err(err).Msg("single instance")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	language := i18n.Setup(settings.Language)
	features := settings.Features()
	logger.Info().
		Str("variant", string(settings.Variant)).
		Str("language", language).
		Dur("study", settings.StudyDuration).
		Dur("break", settings.BreakDuration).
		Bool("break_button", features.BreakButton).
		Bool("new_session_reveal", features.NewSessionReveal).
		Msg("starting")

	fyneApp := app.NewWithID("com.studytimer.app")
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))

	var controller *session.Controller
	view := timerview.New(fyneApp, timerview.Config{
		Title:    i18n.T("Study Timer"),
		Geometry: timerview.GeometryFor(settings.Variant, features),
		Labels: timerview.Labels{
			NewSession: i18n.T("New study session"),
			Break:      i18n.T("Break timer"),
		},
	}, timerview.Callbacks{
		OnPlayPause:  func() { controller.OnPlayPauseClicked() },
		OnNewSession: func() { controller.OnNewSessionClicked() },
		OnBreak:      func() { controller.OnBreakClicked() },
	})

	controller = session.New(settings.SessionConfig(), session.Options{
		Scheduler: schedule.NewSystem(fyne.Do),
		Renderer:  view,
		Messages:  translatedMessages(),
		Logger:    logger,
	})

	quit := func() {
		controller.Close()
		fyneApp.Quit()
	}

	go guard.Serve(func() {
		fyne.Do(view.Show)
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, i18n.T("Study Timer"), features, tray.Icons{
			Running: resources.MustIcon(resources.TrayRunningIcon),
			Idle:    resources.MustIcon(resources.TrayIdleIcon),
		}, tray.Callbacks{
			OnToggle:     controller.Toggle,
			OnNewSession: controller.Reset,
			OnBreak:      controller.OnBreakClicked,
			OnShow:       view.Show,
			OnQuit:       quit,
		}, logger)
		trayManager.Update(snapshotEvent(controller.Snapshot()))

		events := controller.Subscribe(5)
		go func() {
			for event := range events {
				fyne.Do(func() {
					trayManager.Update(event)
				})
			}
		}()

		view.Window().SetCloseIntercept(func() {
			view.Window().Hide()
		})
	} else {
		logger.Debug().Msg("system tray unsupported on this platform")
		view.Window().SetCloseIntercept(quit)
	}

	view.Show()
	fyneApp.Run()
}

func translatedMessages() session.Messages {
	defaults := session.DefaultMessages()
	return session.Messages{
		StudyLabel: i18n.T(defaults.StudyLabel),
		BreakLabel: i18n.T(defaults.BreakLabel),
		BreakStart: i18n.T(defaults.BreakStart),
		StudyOver:  i18n.T(defaults.StudyOver),
		BreakOver:  i18n.T(defaults.BreakOver),
	}
}

func snapshotEvent(snapshot session.Snapshot) session.Event {
	return session.Event{
		Type:      session.EventStateChange,
		State:     snapshot.State,
		Mode:      snapshot.Mode,
		Remaining: snapshot.RemainingDuration(),
		Progress:  snapshot.Progress,
		Message:   snapshot.Message,
	}
}
