package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrMissingGroup is returned when a level lacks a required object group.
var ErrMissingGroup = errors.New("missing object group")

// maxRowLength caps row expansion so a bad step cannot run away.
const maxRowLength = 10000

// Load parses a TMX file and returns its layout. It takes an fs.FS so callers
// can pass the embedded assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    float64(levelMap.Width * levelMap.TileWidth),
		Height:   float64(levelMap.Height * levelMap.TileHeight),
		TileSize: float64(levelMap.TileWidth),
	}

	groups := make(map[string]*tiled.ObjectGroup, len(levelMap.ObjectGroups))
	for _, og := range levelMap.ObjectGroups {
		groups[og.Name] = og
	}
	for _, name := range []string{GroupGround, GroupCollectibles, GroupPlayerSpawn, GroupGoal} {
		if _, ok := groups[name]; !ok {
			return nil, fmt.Errorf("%s: %w %q", tmxPath, ErrMissingGroup, name)
		}
	}

	for _, name := range []string{GroupGround, GroupObstacles} {
		og, ok := groups[name]
		if !ok {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Properties.GetString("kind")
			if kind == "" {
				kind = defaultKind(name)
			}
			boxes, err := expandRow(o)
			if err != nil {
				return nil, fmt.Errorf("%s: %s row %d: %w", tmxPath, name, o.ID, err)
			}
			for _, b := range boxes {
				layout.Tiles = append(layout.Tiles, Tile{Box: b, Kind: kind})
			}
		}
	}

	for _, o := range groups[GroupCollectibles].Objects {
		boxes, err := expandRow(o)
		if err != nil {
			return nil, fmt.Errorf("%s: collectible row %d: %w", tmxPath, o.ID, err)
		}
		layout.Collectibles = append(layout.Collectibles, boxes...)
	}

	if og, ok := groups[GroupEnemies]; ok {
		for _, o := range og.Objects {
			left := o.Properties.GetFloat("left")
			right := o.Properties.GetFloat("right")
			if left > right {
				return nil, fmt.Errorf("%s: enemy %d: left bound %v is right of %v", tmxPath, o.ID, left, right)
			}
			layout.Enemies = append(layout.Enemies, EnemySpawn{
				Box:   boxOf(o),
				Left:  left,
				Right: right,
				Speed: o.Properties.GetFloat("speed"),
			})
		}
	}

	spawn := groups[GroupPlayerSpawn].Objects
	if len(spawn) == 0 {
		return nil, fmt.Errorf("%s: no player spawn defined", tmxPath)
	}
	layout.PlayerSpawn = boxOf(spawn[0])

	goal := groups[GroupGoal].Objects
	if len(goal) == 0 {
		return nil, fmt.Errorf("%s: no goal defined", tmxPath)
	}
	layout.Goal = boxOf(goal[0])

	return layout, nil
}

func defaultKind(group string) string {
	if group == GroupObstacles {
		return KindObstacle
	}
	return KindGround
}

func boxOf(o *tiled.Object) Box {
	return Box{
		X:      o.X,
		Y:      o.Y,
		W:      o.Width,
		H:      o.Height,
		Sprite: o.Properties.GetString("sprite"),
	}
}

// expandRow turns a row object into boxes placed at x, x+step, ... while
// x < end. Objects without an "end" property describe a single box.
func expandRow(o *tiled.Object) ([]Box, error) {
	base := boxOf(o)
	rawEnd := o.Properties.GetString("end")
	if rawEnd == "" {
		return []Box{base}, nil
	}

	end, err := strconv.ParseFloat(rawEnd, 64)
	if err != nil {
		return nil, fmt.Errorf("parse end %q: %w", rawEnd, err)
	}
	step := o.Properties.GetFloat("step")
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %v", step)
	}
	if (end-base.X)/step > maxRowLength {
		return nil, fmt.Errorf("row from %v to %v by %v is longer than %d", base.X, end, step, maxRowLength)
	}

	var boxes []Box
	for x := base.X; x < end; x += step {
		b := base
		b.X = x
		boxes = append(boxes, b)
	}
	return boxes, nil
}
