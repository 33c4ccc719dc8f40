package components

import (
	"github.com/automoto/acorn-run/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpritesData holds every image the scene draws. Run frames are stored in
// both orientations so drawing never transforms an image.
type SpritesData struct {
	Idle    []*ebiten.Image
	Run     []*ebiten.Image
	RunLeft []*ebiten.Image
	Jump    []*ebiten.Image
	Objects map[string]*ebiten.Image
}

// Frame returns the image for a pose, or nil if the pose is out of range.
func (s *SpritesData) Frame(p sim.Pose) *ebiten.Image {
	var frames []*ebiten.Image
	switch p.State {
	case sim.Run:
		frames = s.Run
		if p.Mirrored {
			frames = s.RunLeft
		}
	case sim.Jump:
		frames = s.Jump
	default:
		frames = s.Idle
	}
	if p.Frame < 0 || p.Frame >= len(frames) {
		return nil
	}
	return frames[p.Frame]
}

var Sprites = donburi.NewComponentType[SpritesData]()
