package systems

import (
	"github.com/automoto/acorn-run/components"
	cfg "github.com/automoto/acorn-run/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings maps each action to the keys that trigger it. Remapping is not
// supported.
var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionJump:        {ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace},
	cfg.ActionDescend:     {ebiten.KeyDown, ebiten.KeyS},
	cfg.ActionMoveLeft:    {ebiten.KeyLeft, ebiten.KeyA},
	cfg.ActionMoveRight:   {ebiten.KeyRight, ebiten.KeyD},
	cfg.ActionToggleDebug: {ebiten.KeyF1},
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
