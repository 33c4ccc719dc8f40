package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
}

// SoundConfig names the sound files under the audio asset directory
type SoundConfig struct {
	Start string // played once when the session starts
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  1.0,
	}

	Sound = SoundConfig{
		Start: "fantasy_dragon.wav",
	}
}
