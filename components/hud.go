package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData animates the score text.
type HUDData struct {
	ShownScore int
	Pulse      *gween.Tween // nil when idle
	Scale      float32      // extra text scale from the pulse
}

var HUD = donburi.NewComponentType[HUDData]()
