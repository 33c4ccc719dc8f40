package sim

import (
	"github.com/automoto/acorn-run/shared/leveldata"
)

var tileKinds = map[string]TileKind{
	leveldata.KindGround:      TileGround,
	leveldata.KindUnderground: TileUnderground,
	leveldata.KindObstacle:    TileObstacle,
}

// WorldFromLayout builds the starting entities described by a parsed level.
func WorldFromLayout(layout *leveldata.Layout, params Params) World {
	level := &Level{
		Name:  layout.Name,
		Width: layout.Width,
		Tiles: make([]Tile, 0, len(layout.Tiles)),
		Goal: Goal{
			Body:   bodyOf(layout.Goal),
			Sprite: layout.Goal.Sprite,
		},
	}
	for _, t := range layout.Tiles {
		level.Tiles = append(level.Tiles, Tile{
			Body:   bodyOf(t.Box),
			Kind:   tileKinds[t.Kind],
			Sprite: t.Sprite,
		})
	}

	patrols := make([]*PatrolAgent, 0, len(layout.Enemies))
	for _, e := range layout.Enemies {
		a := NewPatrolAgent(bodyOf(e.Box), e.Left, e.Right, e.Speed)
		a.Sprite = e.Sprite
		patrols = append(patrols, a)
	}

	collectibles := make([]Collectible, 0, len(layout.Collectibles))
	for _, c := range layout.Collectibles {
		collectibles = append(collectibles, Collectible{Body: bodyOf(c), Sprite: c.Sprite})
	}

	return World{
		Level:        level,
		Player:       NewPlayer(bodyOf(layout.PlayerSpawn), params.MaxJumps, params.FrameInterval),
		Patrols:      patrols,
		Collectibles: collectibles,
	}
}

func bodyOf(b leveldata.Box) Body {
	return NewBody(b.X, b.Y, b.W, b.H)
}
