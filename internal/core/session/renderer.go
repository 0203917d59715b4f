package session

import "fmt"

// Icon is the glyph shown inside the play/pause control.
type Icon int

const (
	// IconPlay is shown while the countdown is stopped.
	IconPlay Icon = iota
	// IconPause is shown while the countdown is running.
	IconPause
)

func (icon Icon) String() string {
	if icon == IconPause {
		return "pause"
	}
	return "play"
}

// ControlID names a session control whose visibility the controller manages.
type ControlID string

const (
	ControlNewSession ControlID = "new_session"
	ControlBreak      ControlID = "break_timer"
)

// Renderer draws the timer. Implementations must tolerate repeated calls
// with unchanged values.
type Renderer interface {
	SetTimeText(text string)
	SetKnobPosition(ratio float64)
	SetIconState(icon Icon)
	SetMessageText(text string)
	SetModeText(text string)
	SetControlVisible(id ControlID, visible bool)
}

// FormatTime renders seconds as zero-padded MM:SS.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Messages holds the user-facing strings the controller displays.
type Messages struct {
	StudyLabel string
	BreakLabel string
	BreakStart string
	StudyOver  string
	BreakOver  string
}

// DefaultMessages returns the English strings.
func DefaultMessages() Messages {
	return Messages{
		StudyLabel: "Now playing:\nStudy mode",
		BreakLabel: "Now playing:\nBreak mode",
		BreakStart: "Break time!",
		StudyOver:  "Time's up!",
		BreakOver:  "Break is over!\nReady to study?",
	}
}

func (messages Messages) label(mode Mode) string {
	if mode == ModeBreak {
		return messages.BreakLabel
	}
	return messages.StudyLabel
}

func (messages Messages) finished(mode Mode) string {
	if mode == ModeBreak {
		return messages.BreakOver
	}
	return messages.StudyOver
}
