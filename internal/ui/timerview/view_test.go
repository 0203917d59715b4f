package timerview

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"studytimer/internal/core/model"
	"studytimer/internal/core/session"
)

func newTestView(t *testing.T, variant model.Variant, features model.Features, callbacks Callbacks) *View {
	t.Helper()
	app := test.NewTempApp(t)
	return New(app, Config{
		Title:    "Study Timer",
		Geometry: GeometryFor(variant, features),
		Labels:   Labels{NewSession: "New study session", Break: "Break timer"},
	}, callbacks)
}

func TestRendererPrimitivesUpdateWidgets(t *testing.T) {
	view := newTestView(t, model.VariantClassic, model.VariantClassic.Features(), Callbacks{})

	view.SetTimeText("12:34")
	if view.timeText.Text != "12:34" {
		t.Fatalf("unexpected time text %q", view.timeText.Text)
	}

	view.SetIconState(session.IconPause)
	if view.icon.Resource.Name() != theme.MediaPauseIcon().Name() {
		t.Fatal("expected pause icon")
	}
	view.SetIconState(session.IconPlay)
	if view.icon.Resource.Name() != theme.MediaPlayIcon().Name() {
		t.Fatal("expected play icon")
	}
}

func TestKnobFollowsTrack(t *testing.T) {
	view := newTestView(t, model.VariantClassic, model.VariantClassic.Features(), Callbacks{})
	geometry := view.geometry
	half := geometry.KnobSize / 2

	view.SetKnobPosition(0)
	if got := view.knob.Position().X + half; got != geometry.TrackStart.X {
		t.Fatalf("knob should start at track start, got %v", got)
	}
	view.SetKnobPosition(1)
	if got := view.knob.Position().X + half; got != geometry.TrackEnd.X {
		t.Fatalf("knob should end at track end, got %v", got)
	}
	view.SetKnobPosition(0.5)
	mid := geometry.TrackStart.X + (geometry.TrackEnd.X-geometry.TrackStart.X)/2
	if got := view.knob.Position().X + half; got != mid {
		t.Fatalf("knob should be centered, got %v want %v", got, mid)
	}
	view.SetKnobPosition(3)
	if view.knobRatio != 1 {
		t.Fatalf("ratio should clamp to 1, got %v", view.knobRatio)
	}
}

func TestMessageReplacesModeLabel(t *testing.T) {
	view := newTestView(t, model.VariantClassic, model.VariantClassic.Features(), Callbacks{})

	view.SetModeText("Now playing:\nStudy mode")
	if view.LabelText() != "Now playing:\nStudy mode" {
		t.Fatalf("unexpected label %q", view.LabelText())
	}
	view.SetMessageText("Time's up!")
	if view.LabelText() != "Time's up!" {
		t.Fatalf("unexpected label %q", view.LabelText())
	}
	view.SetMessageText("")
	if view.LabelText() != "Now playing:\nStudy mode" {
		t.Fatalf("mode label should return, got %q", view.LabelText())
	}
}

func TestControlVisibilityIsIdempotent(t *testing.T) {
	view := newTestView(t, model.VariantCompact, model.VariantCompact.Features(), Callbacks{})

	view.SetControlVisible(session.ControlNewSession, false)
	view.SetControlVisible(session.ControlNewSession, false)
	if view.newSession.Visible() {
		t.Fatal("new session should be hidden")
	}
	view.SetControlVisible(session.ControlNewSession, true)
	if !view.newSession.Visible() {
		t.Fatal("new session should be visible")
	}
	view.SetControlVisible(session.ControlBreak, true)
	if view.breakTimer.Visible() {
		t.Fatal("compact layout without a break slot must keep the break button hidden")
	}
}

func TestTapsReachCallbacks(t *testing.T) {
	var played, renewed, breaks int
	view := newTestView(t, model.VariantClassic, model.VariantClassic.Features(), Callbacks{
		OnPlayPause:  func() { played++ },
		OnNewSession: func() { renewed++ },
		OnBreak:      func() { breaks++ },
	})

	test.Tap(view.control)
	test.Tap(view.newSession)
	test.Tap(view.breakTimer)
	if played != 1 || renewed != 1 || breaks != 1 {
		t.Fatalf("unexpected taps %d/%d/%d", played, renewed, breaks)
	}

	view.handleRune(' ')
	view.handleRune('b')
	if played != 2 || breaks != 2 {
		t.Fatalf("keyboard shortcuts not dispatched: %d/%d", played, breaks)
	}
}

func TestControllerDrivesView(t *testing.T) {
	features := model.VariantCompact.Features()
	view := newTestView(t, model.VariantCompact, features, Callbacks{})
	controller := session.New(model.SessionConfig{Features: features}, session.Options{Renderer: view})
	defer controller.Close()

	if view.timeText.Text != "25:00" {
		t.Fatalf("unexpected initial time %q", view.timeText.Text)
	}
	if view.newSession.Visible() {
		t.Fatal("compact layout hides the new session control initially")
	}
	controller.StartBreak()
	if view.timeText.Text != "05:00" || view.LabelText() != "Break time!" {
		t.Fatalf("unexpected break render %q %q", view.timeText.Text, view.LabelText())
	}
}

func TestGeometryButtonRow(t *testing.T) {
	classic := GeometryFor(model.VariantClassic, model.VariantClassic.Features())
	if classic.Break.Empty() || classic.NewSession.Empty() {
		t.Fatal("classic layout has two buttons")
	}
	compact := GeometryFor(model.VariantCompact, model.VariantCompact.Features())
	if !compact.Break.Empty() {
		t.Fatal("compact layout has no break slot")
	}
	if compact.Window == classic.Window {
		t.Fatal("variants should differ in window size")
	}
	overridden := GeometryFor(model.VariantCompact, model.Features{BreakButton: true})
	if overridden.Break.Empty() {
		t.Fatal("enabling the break button must give it a slot")
	}
	if compact.Window != (fyne.Size{Width: 420, Height: 230}) {
		t.Fatalf("unexpected compact window %v", compact.Window)
	}
}
