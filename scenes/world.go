package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/acorn-run/assets"
	cfg "github.com/automoto/acorn-run/config"
	"github.com/automoto/acorn-run/shared/leveldata"
	"github.com/automoto/acorn-run/shared/sim"
	"github.com/automoto/acorn-run/systems"
	"github.com/automoto/acorn-run/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs     *ecs.ECS
	session *sim.Session
}

// NewPlatformerScene loads the configured level and its assets and starts a
// session. Nothing is loaded lazily, so every asset error surfaces here.
func NewPlatformerScene() (*PlatformerScene, error) {
	fsys := assets.FS()
	catalog := assets.NewCatalog(fsys)

	layout, err := leveldata.Load(fsys, cfg.Level.Path)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	log.Info("level loaded",
		"name", layout.Name,
		"ground", layout.CountKind(leveldata.KindGround),
		"underground", layout.CountKind(leveldata.KindUnderground),
		"obstacles", layout.CountKind(leveldata.KindObstacle),
		"collectibles", len(layout.Collectibles),
		"enemies", len(layout.Enemies),
	)

	sprites, counts, err := factory.LoadSprites(catalog, layout)
	if err != nil {
		return nil, fmt.Errorf("load sprites: %w", err)
	}
	log.Info("asset catalog loaded",
		"idle", counts.Idle, "run", counts.Run, "jump", counts.Jump,
		"objects", len(sprites.Objects),
	)

	if err := systems.PreloadSFX(catalog, cfg.Sound.Start); err != nil {
		return nil, fmt.Errorf("load sounds: %w", err)
	}

	session := factory.BuildSession(layout, counts)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input must be read before the session ticks.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPatrols)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateSession(ecs, session, sprites)
	factory.CreateInput(ecs)
	factory.CreateAudio(ecs, cfg.Debug.Mute)
	factory.CreateSettings(ecs)
	systems.QueueSound(ecs, cfg.Sound.Start)

	log.Info("session started",
		"level", layout.Name,
		"x", session.Player.Pos.X, "y", session.Player.Pos.Y,
		"collectibles", session.Collectibles.Len(),
	)

	return &PlatformerScene{ecs: ecs, session: session}, nil
}

// Update runs one frame. It returns ebiten.Termination on the frame the
// session ends.
func (ps *PlatformerScene) Update() error {
	ps.ecs.Update()
	if outcome, _ := ps.Result(); outcome.Ended() {
		return ebiten.Termination
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ps.ecs.Draw(screen)
}

// Result returns the current outcome and score.
func (ps *PlatformerScene) Result() (sim.Outcome, int) {
	return systems.SessionOutcome(ps.ecs)
}
