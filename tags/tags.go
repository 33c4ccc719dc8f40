package tags

import "github.com/yohamta/donburi"

var (
	Session  = donburi.NewTag().SetName("Session")
	Settings = donburi.NewTag().SetName("Settings")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
