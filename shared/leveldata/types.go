// Package leveldata provides TMX level parsing for the platformer.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
//
// Levels are authored as object layers only. Objects are positioned by their
// center in world units, with y measured upward from the world floor, which
// is the coordinate system the simulation runs in.
package leveldata

// Object group names read from a TMX level.
const (
	GroupGround       = "Ground"
	GroupObstacles    = "Obstacles"
	GroupCollectibles = "Collectibles"
	GroupEnemies      = "Enemies"
	GroupPlayerSpawn  = "PlayerSpawn"
	GroupGoal         = "Goal"
)

// Tile kinds accepted in the "kind" property of ground and obstacle rows.
const (
	KindGround      = "ground"
	KindUnderground = "underground"
	KindObstacle    = "obstacle"
)

// Box is a centered, axis-aligned placement with the sprite drawn over it.
type Box struct {
	X, Y   float64 // center
	W, H   float64
	Sprite string
}

// Tile is one solid block of level geometry.
type Tile struct {
	Box
	Kind string
}

// EnemySpawn places a patrolling enemy and its fixed patrol interval.
type EnemySpawn struct {
	Box
	Left  float64
	Right float64
	Speed float64
}

// Layout holds everything parsed from a TMX level, with tile rows already
// expanded into individual tiles.
type Layout struct {
	Name         string
	Width        float64 // world width: map width × tile width
	Height       float64
	TileSize     float64
	Tiles        []Tile
	Collectibles []Box
	Enemies      []EnemySpawn
	PlayerSpawn  Box
	Goal         Box
}

// CountKind returns how many tiles have the given kind.
func (l *Layout) CountKind(kind string) int {
	n := 0
	for _, t := range l.Tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}
