package systems

import (
	"github.com/automoto/acorn-run/components"
	cfg "github.com/automoto/acorn-run/config"
	"github.com/automoto/acorn-run/shared/gamemath"
	"github.com/automoto/acorn-run/shared/sim"
	"github.com/automoto/acorn-run/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// sessionView returns the running session, its sprites and the frame's view.
func sessionView(e *ecs.ECS, screen *ebiten.Image) (*sim.Session, *components.SpritesData, view, bool) {
	entry, ok := tags.Session.First(e.World)
	if !ok {
		return nil, nil, view{}, false
	}
	s := components.Session.Get(entry).Session
	sprites := components.Sprites.Get(entry)
	v := newView(s.Camera, screen.Bounds().Dx(), screen.Bounds().Dy())
	return s, sprites, v, true
}

// drawBox stretches img over the world rectangle r.
func drawBox(screen, img *ebiten.Image, r gamemath.Rect, v view) {
	if img == nil || !v.visible(r) {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(r.Width()/float64(w), r.Height()/float64(h))
	x, y := v.topLeft(r)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.C.Background)
}

// DrawLevel draws tiles, the goal and the remaining collectibles.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	s, sprites, v, ok := sessionView(e, screen)
	if !ok {
		return
	}
	for i := range s.Level.Tiles {
		t := &s.Level.Tiles[i]
		drawBox(screen, sprites.Objects[t.Sprite], t.Rect(), v)
	}
	drawBox(screen, sprites.Objects[s.Level.Goal.Sprite], s.Level.Goal.Rect(), v)
	for _, c := range s.Collectibles.Items() {
		drawBox(screen, sprites.Objects[c.Sprite], c.Rect(), v)
	}
}

func DrawPatrols(e *ecs.ECS, screen *ebiten.Image) {
	s, sprites, v, ok := sessionView(e, screen)
	if !ok {
		return
	}
	for _, p := range s.Patrols {
		drawBox(screen, sprites.Objects[p.Sprite], p.Rect(), v)
	}
}

// DrawPlayer draws the frame chosen by the last animation advance.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	s, sprites, v, ok := sessionView(e, screen)
	if !ok {
		return
	}
	drawBox(screen, sprites.Frame(s.Player.Pose), s.Player.Rect(), v)
}
