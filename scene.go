package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// SharedResources holds state shared between scenes.
type SharedResources struct {
	Config Config
	Fonts  *Fonts
	Rand   *rand.Rand
}

// Scene is the interface every scene managed by bamenn must satisfy.
// Embedding ebiten.Game guarantees the Update/Draw/Layout methods.
type Scene interface {
	ebiten.Game
}
