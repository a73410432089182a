package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetress/internal/games/tetress"
	engine "github.com/vovakirdan/tetress/internal/games/tetress/core"
	"github.com/vovakirdan/tetress/internal/platform/tui"
	"github.com/vovakirdan/tetress/internal/registry"
	"github.com/vovakirdan/tetress/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the leaderboard of a game (Tetress when omitted).

With --mode the leaderboard of one Tetress mode is shown. Sprint ranks
completed runs by time; the other modes rank by score.

Examples:
  arcade scores
  arcade scores --mode sprint
  arcade scores --mode ultra --limit 20
  arcade scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "Only show one Tetress mode")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := tetress.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	var mode engine.Mode
	if flagScoresMode != "" {
		m, err := engine.ParseMode(flagScoresMode)
		if err != nil {
			return err
		}
		mode = m
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		if mode == "" {
			mode = engine.ModeMarathon
		}
		_, err := tui.RunScoreboard(store, mode, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	var scores []storage.ScoreEntry
	if mode != "" {
		scores, err = store.TopScoresByMode(gameID, string(mode), flagScoresLimit)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := info.Title
	if mode != "" {
		title += " " + mode.Title()
	}
	fmt.Printf("High Scores - %s\n", emph(title))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	tbl := newTable("Rank", "Player", "Mode", "Score", "Lines", "Time", "When")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		tbl.AddRow(fmt.Sprintf("#%d", i+1), player, e.Mode, humanize.Comma(int64(e.Score)),
			e.Lines, formatRunTime(e), humanize.Time(e.CreatedAt))
	}
	tbl.Print()

	fmt.Println()
	if mode != "" {
		best, err := store.PersonalBest(gameID, string(mode), localPlayer())
		switch {
		case errors.Is(err, storage.ErrNoScores):
			fmt.Printf("No %s runs by %s yet.\n", mode.Title(), localPlayer())
		case err != nil:
			return fmt.Errorf("retrieving personal best: %w", err)
		case mode == engine.ModeSprint:
			fmt.Printf("Your best: %s\n", emph(formatRunTime(best)))
		default:
			fmt.Printf("Your best: %s\n", emph(humanize.Comma(int64(best.Score))))
		}
		return nil
	}

	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %s\n", emph(humanize.Comma(int64(highScore))))
	}
	return nil
}

// formatRunTime renders a run duration as m:ss.cc, or "-" when unknown.
func formatRunTime(e storage.ScoreEntry) string {
	if e.Duration <= 0 {
		return "-"
	}
	cs := e.Duration.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}
