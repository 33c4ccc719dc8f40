package systems

import (
	"fmt"

	"github.com/automoto/acorn-run/components"
	cfg "github.com/automoto/acorn-run/config"
	"github.com/automoto/acorn-run/fonts"
	"github.com/automoto/acorn-run/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// UpdateHUD tracks the score and pulses the text when it rises.
func UpdateHUD(e *ecs.ECS) {
	entry, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	score := components.Session.Get(entry).Session.Score()

	if score != hud.ShownScore {
		hud.ShownScore = score
		hud.Pulse = gween.New(cfg.HUD.PulseScale, 0, cfg.HUD.PulseSeconds, ease.OutQuad)
	}
	if hud.Pulse == nil {
		return
	}
	scale, done := hud.Pulse.Update(float32(1 / float64(ebiten.TPS())))
	hud.Scale = scale
	if done {
		hud.Pulse = nil
		hud.Scale = 0
	}
}

// DrawHUD renders "Score: N" at the configured GUI position.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)

	scale := 1 + float64(hud.Scale)
	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Scale(scale, scale)
	// GUI y grows up from the bottom edge.
	hudDrawOp.GeoM.Translate(cfg.HUD.ScoreX, float64(screen.Bounds().Dy())-cfg.HUD.ScoreY)
	hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.TextColor)

	text.DrawWithOptions(screen, fmt.Sprintf("Score: %d", hud.ShownScore), fonts.Regular.Get(), hudDrawOp) //nolint:staticcheck
}
