package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lawkern/sokoban/asset"
	"github.com/lawkern/sokoban/game"
	"github.com/lawkern/sokoban/noise"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels the game will run",
	Long: `Shows the bundled levels plus any .sok files from the configured
level directory, in play order.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var (
	levelsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	levelsIndexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	levelsNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	levelsStatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
)

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	entropy := noise.NewSource(cfg.Assets.Seed)
	levels, err := asset.LoadLevels(cfg.Assets.LevelDir, &entropy, log.New(os.Stderr))
	if err != nil {
		return err
	}

	maxName := 0
	for _, level := range levels {
		if len(level.Name) > maxName {
			maxName = len(level.Name)
		}
	}

	fmt.Println(levelsHeaderStyle.Render(fmt.Sprintf("    %-*s  %5s  %5s", maxName, "LEVEL", "BOXES", "GOALS")))
	for i, level := range levels {
		boxes, goals := countTiles(level)
		fmt.Printf("%s %s  %s\n",
			levelsIndexStyle.Render(fmt.Sprintf("%2d.", i+1)),
			levelsNameStyle.Render(fmt.Sprintf("%-*s", maxName, level.Name)),
			levelsStatStyle.Render(fmt.Sprintf("%5d  %5d", boxes, goals)))
	}
	return nil
}

// countTiles tallies the boxes and goals on a freshly loaded board. Boxes
// already parked on goals count on both sides.
func countTiles(level *game.Level) (boxes, goals int) {
	for y := 0; y < game.MapHeight; y++ {
		for x := 0; x < game.MapWidth; x++ {
			switch level.Map.Tiles[y][x] {
			case game.TileBox:
				boxes++
			case game.TileBoxOnGoal:
				boxes++
				goals++
			case game.TileGoal, game.TilePlayerOnGoal:
				goals++
			}
		}
	}
	return boxes, goals
}
