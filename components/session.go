package components

import (
	"github.com/automoto/acorn-run/shared/sim"
	"github.com/yohamta/donburi"
)

// SessionData wraps the running simulation.
type SessionData struct {
	Session *sim.Session
	// Outcome is copied from the last tick so renderers and the scene can
	// read it without ticking.
	Outcome sim.Outcome
}

var Session = donburi.NewComponentType[SessionData]()
