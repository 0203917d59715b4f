package timerview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// tappable turns arbitrary canvas content into a clickable widget.
type tappable struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	onTapped func()
}

func newTappable(content fyne.CanvasObject, onTapped func()) *tappable {
	t := &tappable{content: content, onTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tappable) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

func (t *tappable) Tapped(_ *fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

// Cursor shows a pointer over clickable areas.
func (t *tappable) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}
