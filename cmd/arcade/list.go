package main

import (
	"fmt"

	"github.com/spf13/cobra"

	engine "github.com/vovakirdan/tetress/internal/games/tetress/core"
	"github.com/vovakirdan/tetress/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade, and the Tetress modes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	tbl := newTable("ID", "Title", "Description")
	for _, g := range games {
		tbl.AddRow(g.ID, g.Title, g.Description)
	}
	tbl.Print()

	fmt.Println()
	fmt.Println("Tetress modes:")
	fmt.Println()

	tbl = newTable("Mode", "Rules")
	for _, m := range engine.Modes {
		tbl.AddRow(string(m), m.Description())
	}
	tbl.Print()

	fmt.Println()
	fmt.Printf("Run %s to play a game.\n", emph("arcade play <id> --mode <mode>"))
}
