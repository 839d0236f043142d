package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bug-crossing/internal/audio"
	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
	"github.com/vovakirdan/bug-crossing/internal/crossing"
	"github.com/vovakirdan/bug-crossing/internal/platform/tui"
	"github.com/vovakirdan/bug-crossing/internal/registry"
	"github.com/vovakirdan/bug-crossing/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Move one tile
  P/Esc        - Pause
  ?/H          - How to play
  R            - Restart (after game over)
  Tab          - High scores (after game over)
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Five lives
  normal - The config as written
  hard   - Two lives and a fourth bug from the start
  fixed  - No new bugs or levels as the score grows

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --mute
  crossing play --config ./my-crossing.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Volume in halvings (-1 is half as loud)")
}

func runPlay(cmd *cobra.Command, args []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	// Report a broken config before the alternate screen hides it
	if flagConfig != "" {
		if _, err := config.LoadCrossing(flagConfig); err != nil {
			fail("%v", err)
		}
	}
	crossing.SetConfigPath(flagConfig)
	crossing.SetDifficultyPreset(preset)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(crossing.GameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var opts []tui.Option
	if !flagMute {
		player := audio.New(newLogger())
		if err := player.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			player.SetVolume(flagVolume)
			defer player.Close()
			opts = append(opts, tui.WithSound(player))
		}
	}

	runErr := tui.Run(game, store, cfg, opts...)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
