package main

import (
	"math"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIFactory centralizes widget construction and styling.
type UIFactory struct {
	Config *Config
	Fonts  *Fonts
}

func NewUIFactory(config *Config, fonts *Fonts) *UIFactory {
	return &UIFactory{
		Config: config,
		Fonts:  fonts,
	}
}

// NewRoleButton creates one of the role buttons. All role buttons share
// minWidth so they look uniform even if label lengths differ.
func (f *UIFactory) NewRoleButton(label string, minWidth int, clickedHandler func(args *widget.ButtonClickedEventArgs)) *widget.Button {
	colors := f.Config.UI.Colors
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(colors.ButtonIdle),
		Hover:   image.NewNineSliceColor(colors.ButtonHover),
		Pressed: image.NewNineSliceColor(colors.ButtonPressed),
	}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 0)),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(label, f.Fonts.Button, &widget.ButtonTextColor{Idle: colors.ButtonText}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(f.Config.UI.Buttons.TextPadding)),
		widget.ButtonOpts.ClickedHandler(clickedHandler),
	)
}

// UniformButtonWidth computes the shared button width: the widest natural
// label width among the given labels, plus text padding and the configured
// extra horizontal padding.
func (f *UIFactory) UniformButtonWidth(labels []string) int {
	var maxTextWidth float64
	for _, label := range labels {
		w, _ := text.Measure(label, f.Fonts.Button, 0)
		maxTextWidth = math.Max(maxTextWidth, w)
	}
	return int(math.Ceil(maxTextWidth)) + 2*f.Config.UI.Buttons.TextPadding + f.Config.UI.Buttons.Padding
}

// NewImagePanelBackground generates the NineSlice for the image display
// area: a neutral fill with a subtle border.
func (f *UIFactory) NewImagePanelBackground() *image.NineSlice {
	colors := f.Config.UI.Colors
	border := float32(f.Config.UI.ImageArea.BorderWidth)
	tileSize := 16
	borderInset := f.Config.UI.ImageArea.BorderWidth + 1

	img := ebiten.NewImage(tileSize, tileSize)
	img.Fill(colors.PanelFill)
	vector.StrokeRect(img, border/2, border/2, float32(tileSize)-border, float32(tileSize)-border, border, colors.PanelBorder, false)

	return image.NewNineSlice(img,
		[3]int{borderInset, tileSize - 2*borderInset, borderInset},
		[3]int{borderInset, tileSize - 2*borderInset, borderInset})
}
