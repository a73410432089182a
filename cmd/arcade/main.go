// arcade runs Tetress, a modern falling-block puzzle game, in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (Tetress by default)
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores for a game
//	arcade stats             - Show play statistics
//	arcade config            - Print or save the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"os"
	"sync"

	"github.com/athoscouto/codename"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetress/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tetress/internal/games/tetress"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

// logger reports warnings and errors on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "arcade",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Tetress - falling blocks in your terminal",
	Long: `Tetress is a modern falling-block puzzle game for the terminal with
SRS rotation, T-spins, hold, a 7-bag randomizer and five modes:
Marathon, Sprint, Ultra, Zen and Survival.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View play statistics
  config   - Print or save the effective configuration

Examples:
  arcade play
  arcade play tetress --mode sprint
  arcade menu
  arcade serve --ssh :2222
  arcade scores --mode ultra`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// localPlayer names the local user on the scoreboard: $USER, or a
// generated name that stays the same for the whole process.
var localPlayer = sync.OnceValue(func() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "player"
	}
	return codename.Generate(rng, 0)
})

// warnProblems logs configuration issues. They never stop the game.
func warnProblems(problems []error) {
	for _, p := range problems {
		logger.Warn("config", "problem", p)
	}
}
