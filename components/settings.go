package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug bool // hitbox overlay
}

var Settings = donburi.NewComponentType[SettingsData]()
