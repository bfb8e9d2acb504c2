package cmd

import (
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/buscaminas/director/constraint"
	"github.com/they4kman/buscaminas/director/random"
	"github.com/they4kman/buscaminas/game"
	"github.com/they4kman/buscaminas/ui"
)

var (
	gameConfig = game.NewGameConfig()

	difficultyName string
	width, height  int
	numMines       int
	directorName   string
	snapshotPath   string
	resumeSnapshot bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "buscaminas",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `buscaminas is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play a 9x9 board with 10 mines
	buscaminas

Pick a difficulty preset (easy, intermediate, hard)
	buscaminas --difficulty hard

Use the director flag to make the computer play for you
	buscaminas --director constraint
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		if difficultyName != "" {
			difficulty, known := game.DifficultyByName(difficultyName)
			if !known {
				return fmt.Errorf("unknown difficulty %q", difficultyName)
			}
			gameConfig.ApplyDifficulty(difficulty)
		}
		if cmd.Flags().Changed("width") {
			gameConfig.Width = width
		}
		if cmd.Flags().Changed("height") {
			gameConfig.Height = height
		}
		if cmd.Flags().Changed("mines") {
			gameConfig.NumMines = numMines
		}

		if snapshotPath != "" {
			in, err := os.ReadFile(snapshotPath)
			if err != nil {
				return err
			}
			snapshot, err := game.LoadSnapshot(string(in))
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
			gameConfig.LoadSnapshotFresh = !resumeSnapshot
		}

		switch directorName {
		case "":
		case "random":
			gameConfig.Director = &random.Director{}
		case "constraint":
			gameConfig.Director = &constraint.Director{}
		default:
			return fmt.Errorf("unknown director %q", directorName)
		}

		// Reject bad configurations before a window ever opens
		if err := gameConfig.Validate(); err != nil {
			return err
		}

		pixelgl.Run(func() {
			ui.Run(gameConfig)
		})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().StringVar(&difficultyName, "difficulty", "", "Difficulty preset: easy (9x9, 10 mines), intermediate (16x16, 40), hard (22x22, 99)")
	rootCmd.Flags().IntVarP(&width, "width", "w", game.Easy.Size, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&height, "height", "h", game.Easy.Size, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&numMines, "mines", "m", game.Easy.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Mine placement seed (0 picks one from the clock)")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "", "Make the computer play: random or constraint")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Load board layout from a snapshot file")
	rootCmd.Flags().BoolVar(&resumeSnapshot, "resume", false, "Resume the loaded snapshot's cell states instead of starting fresh")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory to save final board snapshots to")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
