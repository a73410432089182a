package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetress/internal/games/tetress"
	"github.com/vovakirdan/tetress/internal/platform/tui"
	"github.com/vovakirdan/tetress/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive game menu",
	Long: `Open the arcade menu: pick a game and a mode, play, and come back to
the menu when done. Tab opens the scoreboard.

Examples:
  arcade menu
  arcade menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	tetressCfg, problems := tetress.ResolveConfig(flagConfig, flagDifficulty)
	warnProblems(problems)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, runtimeConfig(), localPlayer(), tetressCfg); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
