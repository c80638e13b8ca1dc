package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite references the loaded sprite sheet.
type Sprite struct {
	Sheet *ebiten.Image
}

var SpriteComponent = NewComponent[Sprite]()
