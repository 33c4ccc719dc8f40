package systems

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/automoto/acorn-run/assets"
	"github.com/automoto/acorn-run/components"
	cfg "github.com/automoto/acorn-run/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *audioLoader
	audioInitOnce      sync.Once
)

// audioLoader decodes sounds from the asset catalog and caches the PCM bytes.
type audioLoader struct {
	catalog  *assets.Catalog
	context  *audio.Context
	sfxCache map[string][]byte
}

func initGlobalAudio(catalog *assets.Catalog) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = &audioLoader{
			catalog:  catalog,
			context:  globalAudioContext,
			sfxCache: make(map[string][]byte),
		}
	})
}

// PreloadSFX decodes the named sounds so the first play has no decode lag.
// A missing or undecodable sound is an error.
func PreloadSFX(catalog *assets.Catalog, names ...string) error {
	initGlobalAudio(catalog)
	for _, name := range names {
		if err := globalAudioLoader.preload(name); err != nil {
			return err
		}
	}
	return nil
}

func (l *audioLoader) preload(name string) error {
	if _, ok := l.sfxCache[name]; ok {
		return nil
	}

	data, err := l.catalog.ReadSound(name)
	if err != nil {
		return err
	}

	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	l.sfxCache[name] = decoded
	return nil
}

// player returns a fresh player for a preloaded sound.
func (l *audioLoader) player(name string) (*audio.Player, error) {
	if err := l.preload(name); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[name]), nil
}

// QueueSound schedules a sound for the next UpdateAudio.
func QueueSound(e *ecs.ECS, name string) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)
	data.PendingSFX = append(data.PendingSFX, name)
}

// UpdateAudio plays pending sounds. Muted sessions drop them.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)
	if len(data.PendingSFX) == 0 {
		return
	}
	if !data.Muted && data.SFXVolume > 0 && globalAudioLoader != nil {
		for _, name := range data.PendingSFX {
			playSFX(name, data.SFXVolume)
		}
	}
	data.PendingSFX = data.PendingSFX[:0]
}

func playSFX(name string, volume float64) {
	player, err := globalAudioLoader.player(name)
	if err != nil {
		log.Warn("sound unavailable", "name", name, "error", err)
		return
	}
	player.SetVolume(volume)
	player.Play()
}
