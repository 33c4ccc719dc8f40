package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlayerFrames(t *testing.T) {
	c := NewCatalog(FS())

	pf, err := c.LoadPlayerFrames()
	require.NoError(t, err)

	assert.Len(t, pf.Idle, 4)
	assert.Len(t, pf.Run, 6)
	assert.Len(t, pf.RunLeft, 6)
	assert.Len(t, pf.Jump, 2)
	assert.Equal(t, image.Rect(0, 0, 32, 48), pf.Idle[0].Bounds())
}

func TestMirroredRunFrames(t *testing.T) {
	pf, err := NewCatalog(FS()).LoadPlayerFrames()
	require.NoError(t, err)

	for i := range pf.Run {
		src, dst := pf.Run[i], pf.RunLeft[i]
		b := src.Bounds()
		require.Equal(t, b.Size(), dst.Bounds().Size())
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				want := color.NRGBAModel.Convert(src.At(x, y))
				got := color.NRGBAModel.Convert(dst.At(b.Dx()-1-(x-b.Min.X), y-b.Min.Y))
				if !assert.Equal(t, want, got, "frame %d pixel (%d,%d)", i, x, y) {
					return
				}
			}
		}
	}
}

func TestLoadSprites(t *testing.T) {
	c := NewCatalog(FS())

	for _, name := range []string{"grass.png", "dirt.png", "crate.png", "acorn.png", "slime.png", "house.png"} {
		img, err := c.LoadSprite(name)
		require.NoError(t, err, name)
		assert.False(t, img.Bounds().Empty(), name)
	}

	again, err := c.LoadSprite("house.png")
	require.NoError(t, err)
	first, _ := c.LoadSprite("house.png")
	assert.Same(t, first.(*image.NRGBA), again.(*image.NRGBA))
}

func TestReadSound(t *testing.T) {
	c := NewCatalog(FS())

	data, err := c.ReadSound("fantasy_dragon.wav")
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[:4]))

	_, err = c.ReadSound("missing.wav")
	assert.ErrorContains(t, err, "audio/missing.wav")
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestLoadFramesErrors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		frames  string
		wantErr error
		wantMsg string
	}{
		{
			name: "no png files",
			fsys: fstest.MapFS{
				"images/player/idle/readme.txt": &fstest.MapFile{Data: []byte("x")},
			},
			frames:  IdleFrames,
			wantErr: ErrMissingFrames,
		},
		{
			name:    "missing directory",
			fsys:    fstest.MapFS{},
			frames:  RunFrames,
			wantMsg: "images/player/run",
		},
		{
			name: "corrupt png",
			fsys: fstest.MapFS{
				"images/player/jump/jump_0.png": &fstest.MapFile{Data: []byte("not a png")},
			},
			frames:  JumpFrames,
			wantMsg: "images/player/jump/jump_0.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.fsys).LoadFrames(tt.frames)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestLoadFramesOrdersByName(t *testing.T) {
	small := encodePNG(t)
	var wide bytes.Buffer
	require.NoError(t, png.Encode(&wide, image.NewNRGBA(image.Rect(0, 0, 5, 2))))

	fsys := fstest.MapFS{
		"images/player/run/b.png": &fstest.MapFile{Data: small},
		"images/player/run/a.png": &fstest.MapFile{Data: wide.Bytes()},
	}

	frames, err := NewCatalog(fsys).LoadFrames(RunFrames)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, 5, frames[0].Bounds().Dx())
	assert.Equal(t, 2, frames[1].Bounds().Dx())
}

func TestLoadPlayerFramesFailsFast(t *testing.T) {
	fsys := fstest.MapFS{
		"images/player/idle/idle_0.png": &fstest.MapFile{Data: encodePNG(t)},
	}

	_, err := NewCatalog(fsys).LoadPlayerFrames()
	assert.ErrorContains(t, err, "images/player/run")
}
