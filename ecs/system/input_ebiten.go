package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hop/controls"
)

// EbitenKeys reads key transitions from inpututil.
type EbitenKeys struct{}

// EbitenPointers samples touches and the left mouse button. Ebiten reports
// positions in surface pixels; DPR converts them back to logical pixels.
type EbitenPointers struct {
	DPR      func() float64
	OnTouch  func()
	OnCursor func(x, y int)

	touchIDs []ebiten.TouchID
	justIDs  []ebiten.TouchID
}

const mousePointerID = -1

func (EbitenKeys) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (EbitenKeys) JustReleased(k ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(k)
}

func (p *EbitenPointers) Pointers() []controls.Pointer {
	scale := 1.0
	if p.DPR != nil {
		if d := p.DPR(); d > 0 {
			scale = d
		}
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	p.justIDs = inpututil.AppendJustPressedTouchIDs(p.justIDs[:0])

	out := make([]controls.Pointer, 0, len(p.touchIDs)+1)
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		out = append(out, controls.Pointer{
			ID:          int(id),
			X:           float64(x) / scale,
			Y:           float64(y) / scale,
			JustPressed: containsTouch(p.justIDs, id),
		})
	}
	if len(p.touchIDs) > 0 && p.OnTouch != nil {
		p.OnTouch()
	}

	cx, cy := ebiten.CursorPosition()
	if p.OnCursor != nil {
		p.OnCursor(cx, cy)
	}
	if len(p.touchIDs) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		out = append(out, controls.Pointer{
			ID:          mousePointerID,
			X:           float64(cx) / scale,
			Y:           float64(cy) / scale,
			JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		})
	}
	return out
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
