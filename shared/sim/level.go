package sim

import "github.com/automoto/acorn-run/shared/gamemath"

// TileKind distinguishes level blocks for drawing. All kinds are solid.
type TileKind int

const (
	TileGround TileKind = iota
	TileUnderground
	TileObstacle
)

// Tile is one static solid block.
type Tile struct {
	Body
	Kind   TileKind
	Sprite string
}

// Goal is the structure that ends the level when touched.
type Goal struct {
	Body
	Sprite string
}

// Level is the static geometry of a session. It is not modified after setup.
type Level struct {
	Name  string
	Width float64
	Tiles []Tile
	Goal  Goal
}

// Solids returns the bounds of every tile.
func (l *Level) Solids() []gamemath.Rect {
	rects := make([]gamemath.Rect, len(l.Tiles))
	for i := range l.Tiles {
		rects[i] = l.Tiles[i].Rect()
	}
	return rects
}
