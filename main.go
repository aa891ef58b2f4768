package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/noppikinatta/bamenn"
)

func main() {
	fonts, err := loadFonts()
	if err != nil {
		log.Fatalf("failed to load fonts: %v", err)
	}

	config := LoadConfig()
	res := &SharedResources{
		Config: config,
		Fonts:  fonts,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	manager := NewSceneManager(res)

	ebiten.SetWindowSize(config.UI.Screen.Width, config.UI.Screen.Height)
	ebiten.SetWindowTitle(config.UI.Title.Text)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(manager.sequence); err != nil {
		log.Fatal(err)
	}
}

// SceneManager owns the bamenn sequence and the shared resources.
type SceneManager struct {
	sequence  *bamenn.Sequence
	resources *SharedResources
}

func NewSceneManager(res *SharedResources) *SceneManager {
	m := &SceneManager{
		resources: res,
	}
	m.sequence = bamenn.NewSequence(m.newGeneratorScene())
	return m
}

func (m *SceneManager) newGeneratorScene() Scene {
	return NewGeneratorScene(m.resources)
}
