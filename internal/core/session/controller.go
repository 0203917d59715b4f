// Package session contains the study timer state machine. A Controller owns a
// single countdown, advances it with a self-rescheduling tick and drives a
// Renderer.
//
// The controller is not safe for concurrent use: every method and every tick
// must run on the same goroutine. schedule.System takes care of that for ticks
// when it is built with the UI dispatcher.
package session

import (
	"time"

	"studytimer/internal/core/model"
	"studytimer/internal/core/schedule"

	"github.com/rs/zerolog"
)

// Options contains the collaborators of a Controller.
type Options struct {
	Scheduler schedule.Scheduler
	Renderer  Renderer
	Messages  Messages
	Logger    zerolog.Logger
}

// Snapshot is a consistent view of the controller state.
type Snapshot struct {
	Mode              Mode
	State             State
	Remaining         int
	Total             int
	Progress          float64
	TimeText          string
	Message           string
	NewSessionVisible bool
}

// RemainingDuration returns Remaining as a duration.
func (snapshot Snapshot) RemainingDuration() time.Duration {
	return time.Duration(snapshot.Remaining) * time.Second
}

// Controller is the timer state machine.
type Controller struct {
	config    model.SessionConfig
	scheduler schedule.Scheduler
	renderer  Renderer
	messages  Messages
	logger    zerolog.Logger

	mode      Mode
	state     State
	total     int
	remaining int
	message   string
	pending   schedule.Handle
	// generation invalidates ticks that were scheduled before a cancel.
	generation uint64

	newSessionVisible bool
	events            []chan Event
	closed            bool
}

// New creates a Controller in study mode at full duration and renders it.
func New(config model.SessionConfig, options Options) *Controller {
	config = config.Normalized()
	if options.Scheduler == nil {
		options.Scheduler = schedule.NewSystem(nil)
	}
	if options.Renderer == nil {
		options.Renderer = nopRenderer{}
	}
	if options.Messages == (Messages{}) {
		options.Messages = DefaultMessages()
	}

	controller := &Controller{
		config:            config,
		scheduler:         options.Scheduler,
		renderer:          options.Renderer,
		messages:          options.Messages,
		logger:            options.Logger.With().Str("component", "session").Logger(),
		state:             StateIdle,
		newSessionVisible: !config.Features.NewSessionReveal,
	}
	controller.enterMode(ModeStudy, "")
	controller.renderer.SetControlVisible(ControlBreak, config.Features.BreakButton)
	controller.renderer.SetControlVisible(ControlNewSession, controller.newSessionVisible)
	return controller
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	if controller.closed {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// Toggle starts an idle countdown or pauses a running one. It is ignored once
// the countdown has finished.
func (controller *Controller) Toggle() {
	if controller.closed {
		return
	}
	switch controller.state {
	case StateIdle:
		controller.state = StateRunning
		controller.scheduleTick()
		controller.renderer.SetIconState(IconPause)
		controller.logger.Debug().Str("mode", string(controller.mode)).Int("remaining", controller.remaining).Msg("countdown started")
		controller.emitStateChange()
	case StateRunning:
		controller.cancelTick()
		controller.state = StateIdle
		controller.renderer.SetIconState(IconPlay)
		controller.logger.Debug().Str("mode", string(controller.mode)).Int("remaining", controller.remaining).Msg("countdown paused")
		controller.emitStateChange()
	}
}

// Reset returns to an idle study session at full duration.
func (controller *Controller) Reset() {
	if controller.closed {
		return
	}
	controller.cancelTick()
	controller.state = StateIdle
	controller.enterMode(ModeStudy, "")
	if controller.config.Features.NewSessionReveal {
		controller.setNewSessionVisible(false)
	}
	controller.logger.Debug().Msg("study session reset")
	controller.emitStateChange()
}

// StartBreak switches to an idle break at full duration.
func (controller *Controller) StartBreak() {
	if controller.closed {
		return
	}
	controller.cancelTick()
	controller.state = StateIdle
	controller.enterMode(ModeBreak, controller.messages.BreakStart)
	controller.logger.Debug().Msg("break selected")
	controller.emitStateChange()
}

// OnPlayPauseClicked handles a click on the play/pause control.
func (controller *Controller) OnPlayPauseClicked() {
	controller.Toggle()
}

// OnNewSessionClicked handles a click on the new study session control.
func (controller *Controller) OnNewSessionClicked() {
	controller.Reset()
}

// OnBreakClicked handles a click on the break timer control. Layouts without
// a break button ignore it.
func (controller *Controller) OnBreakClicked() {
	if !controller.config.Features.BreakButton {
		return
	}
	controller.StartBreak()
}

// Snapshot returns the current state.
func (controller *Controller) Snapshot() Snapshot {
	return Snapshot{
		Mode:              controller.mode,
		State:             controller.state,
		Remaining:         controller.remaining,
		Total:             controller.total,
		Progress:          controller.progress(),
		TimeText:          FormatTime(controller.remaining),
		Message:           controller.message,
		NewSessionVisible: controller.newSessionVisible,
	}
}

// Features returns the enabled session controls.
func (controller *Controller) Features() model.Features {
	return controller.config.Features
}

// Close cancels the pending tick and closes observer channels.
func (controller *Controller) Close() {
	if controller.closed {
		return
	}
	controller.cancelTick()
	if controller.state == StateRunning {
		controller.state = StateIdle
	}
	controller.closed = true
	events := controller.events
	controller.events = nil
	for _, ch := range events {
		close(ch)
	}
}

func (controller *Controller) tick(generation uint64) {
	if generation != controller.generation || controller.state != StateRunning {
		controller.logger.Debug().Msg("stale tick ignored")
		return
	}
	controller.pending = nil

	if controller.remaining > 0 {
		controller.remaining--
	}
	controller.renderProgress()

	if controller.remaining == 0 {
		controller.finish()
		return
	}
	controller.scheduleTick()
	controller.emit(Event{
		Type:      EventProgress,
		State:     controller.state,
		Mode:      controller.mode,
		Remaining: controller.remainingDuration(),
		Progress:  controller.progress(),
		Message:   controller.message,
		At:        controller.scheduler.Now(),
	})
}

func (controller *Controller) finish() {
	controller.state = StateFinished
	controller.message = controller.messages.finished(controller.mode)
	controller.renderer.SetIconState(IconPlay)
	controller.renderer.SetMessageText(controller.message)
	if controller.config.Features.NewSessionReveal {
		controller.setNewSessionVisible(true)
	}
	controller.logger.Info().Str("mode", string(controller.mode)).Msg("countdown finished")
	controller.emitStateChange()
}

func (controller *Controller) enterMode(mode Mode, message string) {
	controller.mode = mode
	controller.total = controller.totalFor(mode)
	controller.remaining = controller.total
	controller.message = message

	controller.renderer.SetIconState(IconPlay)
	controller.renderer.SetModeText(controller.messages.label(mode))
	controller.renderer.SetMessageText(message)
	controller.renderProgress()
}

func (controller *Controller) renderProgress() {
	controller.renderer.SetTimeText(FormatTime(controller.remaining))
	controller.renderer.SetKnobPosition(controller.progress())
}

func (controller *Controller) setNewSessionVisible(visible bool) {
	if controller.newSessionVisible == visible {
		return
	}
	controller.newSessionVisible = visible
	controller.renderer.SetControlVisible(ControlNewSession, visible)
}

func (controller *Controller) scheduleTick() {
	controller.generation++
	generation := controller.generation
	controller.pending = controller.scheduler.After(controller.config.TickInterval, func() {
		controller.tick(generation)
	})
}

func (controller *Controller) cancelTick() {
	controller.generation++
	if controller.pending == nil {
		return
	}
	controller.pending.Stop()
	controller.pending = nil
}

func (controller *Controller) totalFor(mode Mode) int {
	duration := controller.config.Study
	if mode == ModeBreak {
		duration = controller.config.Break
	}
	return int(duration / time.Second)
}

func (controller *Controller) progress() float64 {
	if controller.total <= 0 {
		return 1
	}
	progress := 1 - float64(controller.remaining)/float64(controller.total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (controller *Controller) remainingDuration() time.Duration {
	return time.Duration(controller.remaining) * time.Second
}

func (controller *Controller) emitStateChange() {
	controller.emit(Event{
		Type:      EventStateChange,
		State:     controller.state,
		Mode:      controller.mode,
		Remaining: controller.remainingDuration(),
		Progress:  controller.progress(),
		Message:   controller.message,
		At:        controller.scheduler.Now(),
	})
}

func (controller *Controller) emit(event Event) {
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}

type nopRenderer struct{}

func (nopRenderer) SetTimeText(string)                {}
func (nopRenderer) SetKnobPosition(float64)           {}
func (nopRenderer) SetIconState(Icon)                 {}
func (nopRenderer) SetMessageText(string)             {}
func (nopRenderer) SetModeText(string)                {}
func (nopRenderer) SetControlVisible(ControlID, bool) {}
