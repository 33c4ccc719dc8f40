package systems

import (
	"github.com/automoto/acorn-run/components"
	cfg "github.com/automoto/acorn-run/config"
	"github.com/automoto/acorn-run/shared/sim"
	"github.com/automoto/acorn-run/tags"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var actionIntents = []struct {
	action cfg.ActionID
	intent sim.Intent
}{
	{cfg.ActionJump, sim.IntentJump},
	{cfg.ActionDescend, sim.IntentDescend},
	{cfg.ActionMoveLeft, sim.IntentLeft},
	{cfg.ActionMoveRight, sim.IntentRight},
}

// UpdateSession feeds this frame's key edges to the session and runs one
// tick. Releases are applied before presses so switching direction within a
// frame keeps the new direction.
func UpdateSession(e *ecs.ECS) {
	entry, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	data := components.Session.Get(entry)
	if data.Outcome.Ended() {
		return
	}
	s := data.Session
	input := getOrCreateInput(e)

	for _, m := range actionIntents {
		if GetAction(input, m.action).JustReleased {
			s.Release(m.intent)
		}
	}
	for _, m := range actionIntents {
		if GetAction(input, m.action).JustPressed {
			s.Press(m.intent)
		}
	}

	before := s.Score()
	data.Outcome = s.Tick(1 / float64(ebiten.TPS()))

	if s.Score() > before {
		log.Debug("collectible picked up", "score", s.Score(), "left", s.Collectibles.Len(), "tick", s.Ticks())
	}
	if data.Outcome.Ended() {
		log.Debug("terminal tick", "outcome", data.Outcome, "x", s.Player.Pos.X, "y", s.Player.Pos.Y)
	}
}

// SessionOutcome reports the current outcome and score.
func SessionOutcome(e *ecs.ECS) (sim.Outcome, int) {
	entry, ok := tags.Session.First(e.World)
	if !ok {
		return sim.Running, 0
	}
	data := components.Session.Get(entry)
	return data.Outcome, data.Session.Score()
}
