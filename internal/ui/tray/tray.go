// Package tray mirrors the timer state in the system tray menu.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"studytimer/internal/core/model"
	"studytimer/internal/core/session"
	"studytimer/internal/i18n"
)

// MenuApp is the part of desktop.App the tray needs.
type MenuApp interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle     func()
	OnNewSession func()
	OnBreak      func()
	OnShow       func()
	OnQuit       func()
}

// Icons are the tray icons for a running and a stopped countdown.
type Icons struct {
	Running fyne.Resource
	Idle    fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app       MenuApp
	title     string
	features  model.Features
	icons     Icons
	callbacks Callbacks
	logger    zerolog.Logger

	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	running    bool
	iconSet    bool
}

// New creates a tray manager and installs its menu.
func New(app MenuApp, title string, features model.Features, icons Icons, callbacks Callbacks, logger zerolog.Logger) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		features:  features,
		icons:     icons,
		callbacks: callbacks,
		logger:    logger.With().Str("component", "tray").Logger(),
	}

	manager.statusItem = fyne.NewMenuItem(i18n.T("Study"), nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem(i18n.T("Start"), invoke(manager.callbacks.OnToggle))

	manager.setIcon(false)
	manager.refreshMenu()
	return manager
}

// Update applies a controller event to the status line, toggle label and icon.
func (manager *Manager) Update(event session.Event) {
	manager.statusItem.Label = StatusLine(event)

	running := event.State == session.StateRunning
	if running {
		manager.toggleItem.Label = i18n.T("Pause")
	} else {
		manager.toggleItem.Label = i18n.T("Start")
	}
	if running != manager.running || !manager.iconSet {
		manager.setIcon(running)
	}

	if event.Type == session.EventStateChange {
		manager.logger.Debug().Str("state", string(event.State)).Str("mode", string(event.Mode)).Msg("tray updated")
	}
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// StatusLine formats an event as "Study · 12:34 (paused)".
func StatusLine(event session.Event) string {
	mode := i18n.T("Study")
	if event.Mode == session.ModeBreak {
		mode = i18n.T("Break")
	}
	status := fmt.Sprintf("%s · %s", mode, session.FormatTime(int(event.Remaining.Seconds())))
	switch event.State {
	case session.StateIdle:
		status = fmt.Sprintf("%s (%s)", status, i18n.T("paused"))
	case session.StateFinished:
		status = fmt.Sprintf("%s (%s)", status, i18n.T("finished"))
	}
	return status
}

func (manager *Manager) setIcon(running bool) {
	manager.running = running
	icon := manager.icons.Idle
	if running {
		icon = manager.icons.Running
	}
	if icon == nil || manager.app == nil {
		return
	}
	manager.app.SetSystemTrayIcon(icon)
	manager.iconSet = true
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	items := []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem(i18n.T("New study session"), invoke(manager.callbacks.OnNewSession)),
	}
	if manager.features.BreakButton {
		items = append(items, fyne.NewMenuItem(i18n.T("Break timer"), invoke(manager.callbacks.OnBreak)))
	}
	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(i18n.T("Show timer"), invoke(manager.callbacks.OnShow)),
		fyne.NewMenuItem(i18n.T("Quit"), invoke(manager.callbacks.OnQuit)),
	)
	manager.app.SetSystemTrayMenu(fyne.NewMenu(manager.title, items...))
}

func invoke(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}
