package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	cfg "github.com/solview/lumenring/config"
	"github.com/solview/lumenring/fonts"
)

// DrawTitle renders the headline the ring refracts over.
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	titleFont := fonts.Display.Get()
	subFont := fonts.Small.Get()

	title := cfg.Title.Text
	x := (cfg.C.Width - textWidth(titleFont, title)) / 2
	text.Draw(screen, title, titleFont, x, int(cfg.Title.TitleY), cfg.Title.Color)

	sub := cfg.Title.SubText
	x = (cfg.C.Width - textWidth(subFont, sub)) / 2
	text.Draw(screen, sub, subFont, x, int(cfg.Title.SubTextY), cfg.Title.SubColor)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}
