// roadhop is a terminal road-crossing game: hop across traffic, grab
// diamonds and reach the water without getting run over.
//
// Usage:
//
//	roadhop play             - Play in the current terminal
//	roadhop serve            - Start SSH server for remote play
//	roadhop scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.roadhop/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/roadhop/roadhop/internal/game/crossing"
)

const gameID = "crossing"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadhop",
	Short: "Road Crossing - hop across traffic in your terminal",
	Long: `Road Crossing is a terminal arcade game. Guide the player from the
bottom of the board to the water at the top, dodging traffic and
collecting diamonds along the way. The run is endless: reaching the
water scores and starts the crossing over.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  roadhop play
  roadhop play --difficulty hard
  roadhop serve --ssh :2222
  roadhop scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadhop/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
