// Package assets embeds the game's images, sounds and levels and decodes
// them into plain image.Image values. It does not depend on ebitengine, so
// hosts convert what they need.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

//go:embed images levels audio
var embedded embed.FS

// ErrMissingFrames is returned when an animation has no frame files.
var ErrMissingFrames = errors.New("no animation frames")

// Player animation directories under images/player.
const (
	IdleFrames = "idle"
	RunFrames  = "run"
	JumpFrames = "jump"
)

// FS returns the embedded asset tree.
func FS() fs.FS { return embedded }

// PlayerFrames holds the decoded player sequences. RunLeft is Run mirrored
// horizontally.
type PlayerFrames struct {
	Idle    []image.Image
	Run     []image.Image
	RunLeft []image.Image
	Jump    []image.Image
}

// Catalog loads and caches decoded images from an asset tree.
type Catalog struct {
	fsys  fs.FS
	cache map[string]image.Image
}

// NewCatalog returns a catalog over fsys. Pass FS() for the embedded assets.
func NewCatalog(fsys fs.FS) *Catalog {
	return &Catalog{
		fsys:  fsys,
		cache: make(map[string]image.Image),
	}
}

// LoadFrames decodes every PNG in images/player/<name>, ordered by file name.
func (c *Catalog) LoadFrames(name string) ([]image.Image, error) {
	dir := path.Join("images/player", name)
	entries, err := fs.ReadDir(c.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read frames %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(path.Ext(e.Name()), ".png") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrMissingFrames)
	}
	sort.Strings(files)

	frames := make([]image.Image, 0, len(files))
	for _, f := range files {
		img, err := c.loadImage(path.Join(dir, f))
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// LoadPlayerFrames loads the idle, run and jump sequences and precomputes the
// mirrored run sequence.
func (c *Catalog) LoadPlayerFrames() (*PlayerFrames, error) {
	var pf PlayerFrames
	var err error
	if pf.Idle, err = c.LoadFrames(IdleFrames); err != nil {
		return nil, err
	}
	if pf.Run, err = c.LoadFrames(RunFrames); err != nil {
		return nil, err
	}
	if pf.Jump, err = c.LoadFrames(JumpFrames); err != nil {
		return nil, err
	}
	pf.RunLeft = Mirror(pf.Run)
	return &pf, nil
}

// LoadSprite decodes images/objects/<name>.
func (c *Catalog) LoadSprite(name string) (image.Image, error) {
	if name == "" {
		return nil, errors.New("load sprite: empty name")
	}
	return c.loadImage(path.Join("images/objects", name))
}

// ReadSound returns the raw bytes of audio/<name>.
func (c *Catalog) ReadSound(name string) ([]byte, error) {
	p := path.Join("audio", name)
	data, err := fs.ReadFile(c.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}
	return data, nil
}

func (c *Catalog) loadImage(p string) (image.Image, error) {
	if img, ok := c.cache[p]; ok {
		return img, nil
	}

	f, err := c.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", p, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	c.cache[p] = img
	return img, nil
}

// Mirror returns horizontally flipped copies of frames.
func Mirror(frames []image.Image) []image.Image {
	out := make([]image.Image, len(frames))
	for i, f := range frames {
		out[i] = imaging.FlipH(f)
	}
	return out
}
