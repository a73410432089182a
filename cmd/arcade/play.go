package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetress/internal/games/tetress"
	engine "github.com/vovakirdan/tetress/internal/games/tetress/core"
	"github.com/vovakirdan/tetress/internal/platform/tui"
	"github.com/vovakirdan/tetress/internal/registry"
	"github.com/vovakirdan/tetress/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (Tetress when omitted).

Controls:
  Left/Right, A/D  - Move
  Up/W, Z, X       - Rotate clockwise, counter-clockwise, 180
  Down/S           - Soft drop
  Space            - Hard drop
  C                - Hold
  P/Esc            - Pause
  R                - Restart (paused or after game over)
  B/Esc            - Back (paused or after game over)
  Q/Ctrl+C         - Quit

Modes:
  marathon - Endless play, the level rises every 10 lines
  sprint   - Clear the line goal as fast as possible
  ultra    - Score as much as possible before time runs out
  zen      - No timer, no goal, no level progression
  survival - Gravity speeds up on a timer

Difficulty options:
  easy   - Slow start, long lock delay, more previews
  normal - The configured values
  hard   - Fast start, short lock delay, one preview
  fixed  - No speed progression

Without --mode a mode selector is shown.

Examples:
  arcade play
  arcade play tetress --mode sprint
  arcade play --mode ultra --difficulty hard
  arcade play --config ./my-tetress.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Tetress mode: marathon, sprint, ultra, zen, survival")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tetress.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	cfg := runtimeConfig()
	player := localPlayer()

	// Scores are optional: the game still works without them.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if gameID == tetress.ID {
		tetress.SetConfigPath(flagConfig)
		tetress.SetDifficultyPreset(flagDifficulty)

		mode, err := chooseMode(store, player)
		if err != nil {
			return err
		}
		if mode == nil {
			// User backed out of the selector.
			return nil
		}
		tetress.SetMode(*mode)
		logger.Debug("starting game", "mode", *mode, "difficulty", flagDifficulty, "seed", cfg.Seed)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if p, ok := game.(interface{ ConfigProblems() []error }); ok {
		warnProblems(p.ConfigProblems())
	}

	if err := tui.Run(game, store, cfg, player); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// chooseMode returns the --mode flag, or asks with the mode selector.
func chooseMode(store *storage.Store, player string) (*engine.Mode, error) {
	if flagMode != "" {
		mode, err := engine.ParseMode(flagMode)
		if err != nil {
			return nil, err
		}
		return &mode, nil
	}
	return tui.RunTetressModeSelector(store, player, runtimeConfig())
}
