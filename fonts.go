package main

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the three faces the window uses: a bold title face, a body
// face for the result label, and a smaller face for the role buttons.
type Fonts struct {
	Title  text.Face
	Body   text.Face
	Button text.Face
}

func loadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &Fonts{
		Title:  &text.GoTextFace{Source: bold, Size: 20},
		Body:   &text.GoTextFace{Source: regular, Size: 18},
		Button: &text.GoTextFace{Source: regular, Size: 14},
	}, nil
}
