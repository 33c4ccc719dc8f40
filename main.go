// acorn-run is a side-scrolling platformer: collect acorns, avoid the slime
// and reach the house.
//
// Usage:
//
//	acorn-run [--config path] [--debug] [--mute]
//
// Controls: arrows or WASD to move, Up/W/Space to jump (twice in the air),
// Down/S to drop, F1 to toggle hitboxes.
package main

import (
	"fmt"
	"os"

	"github.com/automoto/acorn-run/config"
	"github.com/automoto/acorn-run/fonts"
	"github.com/automoto/acorn-run/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const debugFontSize = 11

var (
	flagConfig string
	flagDebug  bool
	flagMute   bool
)

type Game struct {
	scene *scenes.PlatformerScene
}

func NewGame() (*Game, error) {
	scene, err := scenes.NewPlatformerScene()
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:           "acorn-run",
	Short:         "Side-scrolling platformer",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show hitboxes and log at debug level")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("acorn-run failed", "error", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "acorn-run",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	source, err := config.LoadOverrides(flagConfig)
	if err != nil {
		return err
	}
	if flagDebug {
		config.Debug.Hitboxes = true
	}
	if flagMute {
		config.Debug.Mute = true
	}
	logger.Info("config loaded", "source", source)

	if err := fonts.LoadDefaults(config.HUD.FontSize, debugFontSize); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	game, err := NewGame()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	outcome, score := game.scene.Result()
	logger.Info("session over", "outcome", outcome, "score", score)
	return nil
}
