// Package timerview draws the study timer window with fyne canvas primitives
// and implements session.Renderer.
package timerview

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"studytimer/internal/core/session"
)

var (
	panelFill    = color.NRGBA{R: 0xd9, G: 0xe6, B: 0xf2, A: 0xff}
	outlineColor = color.NRGBA{R: 0x7d, G: 0x8f, B: 0xa0, A: 0xff}
	inkColor     = color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
)

const (
	labelTextSize  float32 = 22
	timeTextSize   float32 = 14
	buttonTextSize float32 = 13
)

// Callbacks defines the inbound actions of the window.
type Callbacks struct {
	OnPlayPause  func()
	OnNewSession func()
	OnBreak      func()
}

// Labels are the static button captions.
type Labels struct {
	NewSession string
	Break      string
}

// Config describes a timer window.
type Config struct {
	Title    string
	Geometry Geometry
	Labels   Labels
}

// View is the timer window.
type View struct {
	window    fyne.Window
	geometry  Geometry
	callbacks Callbacks

	control    *tappable
	icon       *widget.Icon
	labelLines [2]*canvas.Text
	timeText   *canvas.Text
	track      *canvas.Line
	knob       *canvas.Circle
	newSession *tappable
	breakTimer *tappable

	modeText    string
	messageText string
	iconState   session.Icon
	knobRatio   float64
}

// New builds the timer window. It is not shown until Show is called.
func New(app fyne.App, config Config, callbacks Callbacks) *View {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	geometry := config.Geometry
	view := &View{window: window, geometry: geometry, callbacks: callbacks}

	background := canvas.NewRectangle(color.White)
	background.Resize(geometry.Window)

	panel := canvas.NewRectangle(panelFill)
	panel.StrokeColor = outlineColor
	panel.StrokeWidth = 4
	panel.CornerRadius = geometry.PanelRadius
	place(panel, geometry.Panel)

	circle := canvas.NewCircle(color.White)
	circle.StrokeColor = outlineColor
	circle.StrokeWidth = 3
	view.icon = widget.NewIcon(theme.MediaPlayIcon())
	iconBox := container.NewCenter(sized(view.icon, geometry.IconSize))
	view.control = newTappable(container.NewStack(circle, iconBox), view.playPause)
	place(view.control, geometry.Control)

	for i := range view.labelLines {
		line := canvas.NewText("", inkColor)
		line.TextSize = labelTextSize
		line.TextStyle = fyne.TextStyle{Bold: true}
		line.Move(fyne.NewPos(geometry.Label.X, geometry.Label.Y+float32(i)*(labelTextSize+6)))
		view.labelLines[i] = line
	}

	view.timeText = canvas.NewText("", inkColor)
	view.timeText.TextSize = timeTextSize
	view.timeText.TextStyle = fyne.TextStyle{Bold: true}
	view.timeText.Move(geometry.TimeText)

	view.track = canvas.NewLine(outlineColor)
	view.track.StrokeWidth = 4
	view.track.Position1 = geometry.TrackStart
	view.track.Position2 = geometry.TrackEnd

	view.knob = canvas.NewCircle(color.White)
	view.knob.StrokeColor = outlineColor
	view.knob.StrokeWidth = 2
	view.knob.Resize(fyne.NewSize(geometry.KnobSize, geometry.KnobSize))

	view.newSession = newButton(config.Labels.NewSession, geometry.ButtonRadius, view.newSessionTapped)
	place(view.newSession, geometry.NewSession)

	view.breakTimer = newButton(config.Labels.Break, geometry.ButtonRadius, view.breakTapped)
	place(view.breakTimer, geometry.Break)
	if geometry.Break.Empty() {
		view.breakTimer.Hide()
	}

	content := container.NewWithoutLayout(
		background,
		panel,
		view.control,
		view.labelLines[0],
		view.labelLines[1],
		view.timeText,
		view.track,
		view.knob,
		view.newSession,
		view.breakTimer,
	)
	window.SetContent(content)
	window.Resize(geometry.Window)
	window.SetFixedSize(true)
	window.Canvas().SetOnTypedRune(view.handleRune)

	view.SetKnobPosition(0)
	return view
}

// Window returns the underlying fyne window.
func (view *View) Window() fyne.Window {
	return view.window
}

// Show displays the window and brings it to the front.
func (view *View) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// SetTimeText implements session.Renderer.
func (view *View) SetTimeText(text string) {
	if view.timeText.Text == text {
		return
	}
	view.timeText.Text = text
	view.timeText.Refresh()
}

// SetKnobPosition implements session.Renderer.
func (view *View) SetKnobPosition(ratio float64) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	view.knobRatio = ratio
	start, end := view.geometry.TrackStart, view.geometry.TrackEnd
	half := view.geometry.KnobSize / 2
	x := start.X + float32(ratio)*(end.X-start.X)
	y := start.Y + float32(ratio)*(end.Y-start.Y)
	view.knob.Move(fyne.NewPos(x-half, y-half))
	canvas.Refresh(view.knob)
}

// SetIconState implements session.Renderer.
func (view *View) SetIconState(icon session.Icon) {
	view.iconState = icon
	if icon == session.IconPause {
		view.icon.SetResource(theme.MediaPauseIcon())
		return
	}
	view.icon.SetResource(theme.MediaPlayIcon())
}

// SetMessageText implements session.Renderer. A message takes the place of
// the mode label until it is cleared.
func (view *View) SetMessageText(text string) {
	view.messageText = text
	view.refreshLabel()
}

// SetModeText implements session.Renderer.
func (view *View) SetModeText(text string) {
	view.modeText = text
	view.refreshLabel()
}

// SetControlVisible implements session.Renderer.
func (view *View) SetControlVisible(id session.ControlID, visible bool) {
	var target *tappable
	switch id {
	case session.ControlNewSession:
		target = view.newSession
	case session.ControlBreak:
		target = view.breakTimer
		if view.geometry.Break.Empty() {
			visible = false
		}
	default:
		return
	}
	if visible == target.Visible() {
		return
	}
	if visible {
		target.Show()
	} else {
		target.Hide()
	}
}

// LabelText returns the text currently shown in the label area.
func (view *View) LabelText() string {
	lines := make([]string, 0, len(view.labelLines))
	for _, line := range view.labelLines {
		if line.Text != "" {
			lines = append(lines, line.Text)
		}
	}
	return strings.Join(lines, "\n")
}

func (view *View) refreshLabel() {
	text := view.modeText
	if view.messageText != "" {
		text = view.messageText
	}
	parts := strings.SplitN(text, "\n", len(view.labelLines))
	for i, line := range view.labelLines {
		value := ""
		if i < len(parts) {
			value = strings.TrimSpace(parts[i])
		}
		if line.Text != value {
			line.Text = value
			line.Refresh()
		}
	}
}

func (view *View) handleRune(r rune) {
	switch r {
	case ' ':
		view.playPause()
	case 'n', 'N', 'r', 'R':
		if view.newSession.Visible() {
			view.newSessionTapped()
		}
	case 'b', 'B':
		if view.breakTimer.Visible() {
			view.breakTapped()
		}
	}
}

func (view *View) playPause() {
	if view.callbacks.OnPlayPause != nil {
		view.callbacks.OnPlayPause()
	}
}

func (view *View) newSessionTapped() {
	if view.callbacks.OnNewSession != nil {
		view.callbacks.OnNewSession()
	}
}

func (view *View) breakTapped() {
	if view.callbacks.OnBreak != nil {
		view.callbacks.OnBreak()
	}
}

func place(object fyne.CanvasObject, rect Rect) {
	object.Move(rect.Pos)
	object.Resize(rect.Size)
}

func sized(object fyne.CanvasObject, side float32) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(side, side))
	return container.NewStack(spacer, object)
}

func newButton(label string, radius float32, onTapped func()) *tappable {
	background := canvas.NewRectangle(outlineColor)
	background.CornerRadius = radius

	text := canvas.NewText(label, color.White)
	text.TextSize = buttonTextSize
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.Alignment = fyne.TextAlignCenter

	return newTappable(container.NewStack(background, container.NewCenter(text)), onTapped)
}
