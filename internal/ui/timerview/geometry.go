package timerview

import (
	"fyne.io/fyne/v2"

	"studytimer/internal/core/model"
)

// Rect is an absolutely positioned box.
type Rect struct {
	Pos  fyne.Position
	Size fyne.Size
}

// Empty reports whether the rect has no area.
func (rect Rect) Empty() bool {
	return rect.Size.Width <= 0 || rect.Size.Height <= 0
}

func rectFromCorners(x1, y1, x2, y2 float32) Rect {
	return Rect{Pos: fyne.NewPos(x1, y1), Size: fyne.NewSize(x2-x1, y2-y1)}
}

// Geometry places every element of the timer window.
type Geometry struct {
	Window      fyne.Size
	Panel       Rect
	PanelRadius float32

	Control  Rect
	IconSize float32

	Label    fyne.Position
	TimeText fyne.Position

	TrackStart fyne.Position
	TrackEnd   fyne.Position
	KnobSize   float32

	NewSession   Rect
	Break        Rect
	ButtonRadius float32
}

// GeometryFor returns the layout of a variant. The button row depends on
// whether the break button is enabled, so feature overrides never leave a
// control without a place.
func GeometryFor(variant model.Variant, features model.Features) Geometry {
	geometry := Geometry{
		Window:       fyne.NewSize(420, 250),
		Panel:        rectFromCorners(20, 20, 400, 150),
		PanelRadius:  40,
		Control:      rectFromCorners(50, 40, 120, 110),
		IconSize:     36,
		Label:        fyne.NewPos(150, 44),
		TimeText:     fyne.NewPos(340, 92),
		TrackStart:   fyne.NewPos(50, 130),
		TrackEnd:     fyne.NewPos(370, 130),
		KnobSize:     10,
		ButtonRadius: 20,
	}
	if variant == model.VariantCompact {
		geometry.Window = fyne.NewSize(420, 230)
		geometry.PanelRadius = 30
		geometry.Label = fyne.NewPos(145, 44)
	}

	if features.BreakButton {
		geometry.NewSession = rectFromCorners(20, 170, 205, 215)
		geometry.Break = rectFromCorners(215, 170, 400, 215)
		return geometry
	}
	geometry.NewSession = rectFromCorners(117, 170, 303, 215)
	return geometry
}
