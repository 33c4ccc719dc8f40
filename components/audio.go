package components

import (
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []string // sound file names under the audio asset directory
}

var Audio = donburi.NewComponentType[AudioData]()
