package factory

import (
	"image"

	"github.com/automoto/acorn-run/assets"
	"github.com/automoto/acorn-run/components"
	"github.com/automoto/acorn-run/shared/leveldata"
	"github.com/automoto/acorn-run/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// LoadSprites decodes the player frames and every object sprite the layout
// references. Any missing image fails the whole load.
func LoadSprites(catalog *assets.Catalog, layout *leveldata.Layout) (components.SpritesData, sim.FrameCounts, error) {
	frames, err := catalog.LoadPlayerFrames()
	if err != nil {
		return components.SpritesData{}, sim.FrameCounts{}, err
	}

	sprites := components.SpritesData{
		Idle:    toEbiten(frames.Idle),
		Run:     toEbiten(frames.Run),
		RunLeft: toEbiten(frames.RunLeft),
		Jump:    toEbiten(frames.Jump),
		Objects: make(map[string]*ebiten.Image),
	}

	for _, name := range spriteNames(layout) {
		img, err := catalog.LoadSprite(name)
		if err != nil {
			return components.SpritesData{}, sim.FrameCounts{}, err
		}
		sprites.Objects[name] = ebiten.NewImageFromImage(img)
	}

	counts := sim.FrameCounts{
		Idle: len(frames.Idle),
		Run:  len(frames.Run),
		Jump: len(frames.Jump),
	}
	return sprites, counts, nil
}

// spriteNames lists each distinct sprite in the layout in first-seen order.
func spriteNames(layout *leveldata.Layout) []string {
	seen := map[string]bool{}
	var names []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, t := range layout.Tiles {
		add(t.Sprite)
	}
	for _, c := range layout.Collectibles {
		add(c.Sprite)
	}
	for _, e := range layout.Enemies {
		add(e.Sprite)
	}
	add(layout.Goal.Sprite)
	return names
}

func toEbiten(frames []image.Image) []*ebiten.Image {
	out := make([]*ebiten.Image, len(frames))
	for i, f := range frames {
		out[i] = ebiten.NewImageFromImage(f)
	}
	return out
}
