package factory

import (
	"github.com/automoto/acorn-run/archetypes"
	"github.com/automoto/acorn-run/components"
	cfg "github.com/automoto/acorn-run/config"
	"github.com/automoto/acorn-run/shared/collision"
	"github.com/automoto/acorn-run/shared/leveldata"
	"github.com/automoto/acorn-run/shared/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildSession assembles a session over the layout. Enemies without a speed
// get the configured default.
func BuildSession(layout *leveldata.Layout, counts sim.FrameCounts) *sim.Session {
	for i := range layout.Enemies {
		if layout.Enemies[i].Speed == 0 {
			layout.Enemies[i].Speed = cfg.Enemy.DefaultSpeed
		}
	}

	params := cfg.SimParams(counts)
	world := sim.WorldFromLayout(layout, params)
	resolver := collision.NewResolver(world.Level.Solids(), cfg.ResolverConfig())
	return sim.NewSession(params, world, resolver)
}

func CreateSession(ecs *ecs.ECS, s *sim.Session, sprites components.SpritesData) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{Session: s, Outcome: s.Outcome()})
	components.Sprites.SetValue(entry, sprites)
	components.HUD.SetValue(entry, components.HUDData{ShownScore: s.Score()})
	return entry
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

func CreateAudio(ecs *ecs.ECS, muted bool) *donburi.Entry {
	entry := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(entry, components.AudioData{
		SFXVolume: cfg.Audio.SFXVolume,
		Muted:     muted,
	})
	return entry
}

func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Hitboxes})
	return entry
}
