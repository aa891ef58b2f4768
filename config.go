package main

import "image/color"

type Config struct {
	UI UIConfig
}

type UIConfig struct {
	Screen struct {
		Width  int
		Height int
	}
	Title struct {
		Text string
	}
	ImageArea struct {
		Width       int
		Height      int
		BorderWidth int
	}
	Labels struct {
		Prompt             string
		EmptyPool          string
		MissingImagePrefix string
	}
	Buttons struct {
		Padding      int
		Spacing      int
		TextPadding  int
		BottomMargin int
	}
	Colors struct {
		Background    color.Color
		Text          color.Color
		PanelFill     color.Color
		PanelBorder   color.Color
		ButtonIdle    color.Color
		ButtonHover   color.Color
		ButtonPressed color.Color
		ButtonText    color.Color
	}
}

func LoadConfig() Config {
	screenWidth := 500
	screenHeight := 500

	return Config{
		UI: UIConfig{
			Screen: struct {
				Width  int
				Height int
			}{
				Width:  screenWidth,
				Height: screenHeight,
			},
			Title: struct {
				Text string
			}{
				Text: "Overwatch Hero Generator",
			},
			ImageArea: struct {
				Width       int
				Height      int
				BorderWidth int
			}{
				Width:       screenWidth - 100,
				Height:      280,
				BorderWidth: 1,
			},
			Labels: struct {
				Prompt             string
				EmptyPool          string
				MissingImagePrefix string
			}{
				Prompt:             "Pick a role to generate a hero!",
				EmptyPool:          "(no heroes configured)",
				MissingImagePrefix: "No image found for ",
			},
			Buttons: struct {
				Padding      int
				Spacing      int
				TextPadding  int
				BottomMargin int
			}{
				Padding:      16,
				Spacing:      20,
				TextPadding:  6,
				BottomMargin: 40,
			},
			Colors: struct {
				Background    color.Color
				Text          color.Color
				PanelFill     color.Color
				PanelBorder   color.Color
				ButtonIdle    color.Color
				ButtonHover   color.Color
				ButtonPressed color.Color
				ButtonText    color.Color
			}{
				Background:    color.RGBA{R: 238, G: 238, B: 238, A: 255},
				Text:          color.RGBA{R: 20, G: 20, B: 20, A: 255},
				PanelFill:     color.RGBA{R: 245, G: 245, B: 245, A: 255},
				PanelBorder:   color.RGBA{R: 220, G: 220, B: 220, A: 255},
				ButtonIdle:    color.RGBA{R: 210, G: 210, B: 210, A: 255},
				ButtonHover:   color.RGBA{R: 190, G: 190, B: 190, A: 255},
				ButtonPressed: color.RGBA{R: 160, G: 160, B: 160, A: 255},
				ButtonText:    color.RGBA{R: 20, G: 20, B: 20, A: 255},
			},
		},
	}
}
