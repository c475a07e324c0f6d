// rollball is a small physics sandbox: steer a ball across spinning platforms.
//
// Usage:
//
//	rollball [--config path] [--debug] [--tps 60] [--width 960] [--height 540]
//
// Controls: arrow keys roll the ball, Space jumps (2s cooldown), a left click
// captures the cursor and Escape releases it, F3 toggles the debug overlay.
package main

import (
	"fmt"
	"image"
	"os"

	cfg "github.com/automoto/rollball/config"
	"github.com/automoto/rollball/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDebug  bool
	flagTPS    int
	flagWidth  int
	flagHeight int
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSandboxScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

var rootCmd = &cobra.Command{
	Use:          "rollball",
	Short:        "Roll a ball across rotating platforms",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning file (default: "+cfg.DefaultPath+" if present)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Verbose logging and debug overlay")
	rootCmd.Flags().IntVar(&flagTPS, "tps", 0, "Simulation steps per second (overrides config)")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width (overrides config)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height (overrides config)")
}

func run(cmd *cobra.Command, args []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}

	used, err := cfg.Load(flagConfig)
	if err != nil {
		return err
	}
	if used != "" {
		log.Info("loaded config", "path", used)
	}
	applyFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "flags")
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetTPS(cfg.C.TPS)

	log.Info("starting", "tps", cfg.C.TPS, "platforms", len(cfg.Platform.Platforms))
	return errors.Wrap(ebiten.RunGame(NewGame()), "run game")
}

func applyFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("tps") {
		cfg.C.TPS = flagTPS
	}
	if cmd.Flags().Changed("width") {
		cfg.C.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.C.Height = flagHeight
	}
	if flagDebug {
		cfg.Debug.Enabled = true
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
