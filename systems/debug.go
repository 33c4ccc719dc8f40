package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/acorn-run/config"
	"github.com/automoto/acorn-run/fonts"
	"github.com/automoto/acorn-run/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	solidColor  = color.RGBA{100, 100, 100, 255}
	enemyColor  = color.RGBA{255, 0, 0, 255}
	pickupColor = color.RGBA{255, 215, 0, 255}
	goalColor   = color.RGBA{0, 255, 0, 255}
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}
	s, _, v, ok := sessionView(e, screen)
	if !ok {
		return
	}

	for i := range s.Level.Tiles {
		outline(screen, s.Level.Tiles[i].Rect(), v, solidColor)
	}
	outline(screen, s.Level.Goal.Rect(), v, goalColor)
	for _, c := range s.Collectibles.Items() {
		outline(screen, c.Rect(), v, pickupColor)
	}
	for _, p := range s.Patrols {
		outline(screen, p.Rect(), v, enemyColor)
	}
	outline(screen, s.Player.Rect(), v, cfg.Debug.HitboxColor)

	p := s.Player
	msg := fmt.Sprintf("%s jumps:%d grounded:%t pos:(%.0f,%.0f) vel:(%.1f,%.1f) tick:%d",
		p.State, p.JumpsLeft, p.Grounded, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, s.Ticks())
	text.Draw(screen, msg, fonts.Small.Get(), 8, 16, cfg.White) //nolint:staticcheck
}

func outline(screen *ebiten.Image, r gamemath.Rect, v view, c color.Color) {
	if !v.visible(r) {
		return
	}
	x, y := v.topLeft(r)
	w, h := r.Width(), r.Height()
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
