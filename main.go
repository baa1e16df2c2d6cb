package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/solview/lumenring/config"
	"github.com/solview/lumenring/fonts"
	"github.com/solview/lumenring/scenes"
	"github.com/solview/lumenring/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	if err := fonts.LoadFontWithSize(fonts.Display, goregular.TTF, 110); err != nil {
		log.Fatalf("Failed to load display font: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.Label, goregular.TTF, 16); err != nil {
		log.Fatalf("Failed to load label font: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 14); err != nil {
		log.Fatalf("Failed to load small font: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewDemoScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Load saved tuning before the first frame so the panel opens on
	// the persisted values.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
