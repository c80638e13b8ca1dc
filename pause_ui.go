package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	panelMinWidth  = 240
	panelMinHeight = 140
)

var (
	panelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func basicFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func centeredPanel() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelMinWidth, panelMinHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
}

func centeredText(label string, face *ebtext.Face) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func menuButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	img := imageui.NewNineSliceColor(buttonColor)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Pressed: img}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func wrapUI(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// NewPauseUI builds a centered pause menu with Resume and Quit buttons.
func NewPauseUI(onResume, onQuit func()) *ebitenui.UI {
	face := basicFace()
	panel := centeredPanel()
	panel.AddChild(centeredText("Paused", face))
	panel.AddChild(menuButton("Resume", face, onResume))
	panel.AddChild(menuButton("Quit", face, onQuit))
	return wrapUI(panel)
}

// NewRotateUI builds the notice shown while a touch device is held upright.
func NewRotateUI() *ebitenui.UI {
	face := basicFace()
	panel := centeredPanel()
	panel.AddChild(centeredText("Rotate your device", face))
	panel.AddChild(centeredText("to landscape to play", face))
	return wrapUI(panel)
}
