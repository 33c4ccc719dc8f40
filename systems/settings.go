package systems

import (
	"github.com/automoto/acorn-run/components"
	cfg "github.com/automoto/acorn-run/config"
	"github.com/automoto/acorn-run/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton settings, seeded from config.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := tags.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(tags.Settings, components.Settings))
		components.Settings.Set(entry, &components.SettingsData{Debug: cfg.Debug.Hitboxes})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the hitbox overlay.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionToggleDebug).JustPressed {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.Debug = !settings.Debug
	log.Debug("hitbox overlay toggled", "on", settings.Debug)
}
