package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetress/internal/registry"
	"github.com/vovakirdan/tetress/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics",
	Long: `Display aggregated statistics for every game that has been played:
games count, best and average score, lines cleared and time played,
broken down by mode.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	for _, info := range registry.List() {
		gs, ok := all[info.ID]
		if !ok {
			continue
		}

		fmt.Printf("%s\n\n", emph(info.Title))

		summary := newTable("Stat", "Value")
		summary.AddRow("Games played", humanize.Comma(int64(gs.GamesCount)))
		summary.AddRow("High score", humanize.Comma(int64(gs.HighScore)))
		summary.AddRow("Average score", humanize.CommafWithDigits(gs.AvgScore, 0))
		summary.AddRow("Lines cleared", humanize.Comma(gs.TotalLines))
		summary.AddRow("Time played", gs.TotalTime.Round(time.Second))
		if !gs.LastPlayed.IsZero() {
			summary.AddRow("Last played", humanize.Time(gs.LastPlayed))
		}
		summary.Print()

		if len(gs.Modes) > 0 {
			fmt.Println()
			modes := newTable("Mode", "Games", "Best", "Best time", "Lines")
			for _, m := range gs.Modes {
				best := "-"
				if m.BestTime > 0 {
					best = formatRunTime(storage.ScoreEntry{Duration: m.BestTime})
				}
				modes.AddRow(m.Mode, m.GamesCount, humanize.Comma(int64(m.BestScore)), best, humanize.Comma(m.Lines))
			}
			modes.Print()
		}
		fmt.Println()
	}
	return nil
}
