package component

import "image"

// SheetLayout describes a grid sprite sheet. Frames are read left-to-right,
// top-to-bottom, Columns per row.
type SheetLayout struct {
	FrameW     int
	FrameH     int
	FrameCount int
	Columns    int
	FrameDelay int
}

// Cell returns the source rectangle of frame index.
func (l SheetLayout) Cell(index int) image.Rectangle {
	cols := l.Columns
	if cols <= 0 {
		cols = 1
	}
	sx := (index % cols) * l.FrameW
	sy := (index / cols) * l.FrameH
	return image.Rect(sx, sy, sx+l.FrameW, sy+l.FrameH)
}

// Bounds is the smallest sheet size that holds every frame.
func (l SheetLayout) Bounds() image.Rectangle {
	cols := l.Columns
	if cols <= 0 {
		cols = 1
	}
	rows := (l.FrameCount + cols - 1) / cols
	if l.FrameCount < cols {
		cols = l.FrameCount
	}
	return image.Rect(0, 0, cols*l.FrameW, rows*l.FrameH)
}

// Animation tracks which cell to draw. Hold counts steps spent on Frame.
type Animation struct {
	Layout SheetLayout
	Frame  int
	Hold   int
}

var AnimationComponent = NewComponent[Animation]()
