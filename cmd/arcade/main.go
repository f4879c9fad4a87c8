// arcade is a terminal Tetris client: local play, SSH play, headless
// agent benchmarking, and a scoreboard, all sharing one deterministic
// engine.
//
// Usage:
//
//	arcade play                - Play locally in this terminal
//	arcade serve                - Start an SSH server for remote play
//	arcade protocol-serve        - Start the line-delimited JSON protocol server
//	arcade agents                - List registered agent policies
//	arcade bench <a1> <a2>       - Run a headless two-agent comparison
//	arcade scores                - Show recorded episodes and comparison runs
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--config <path> - Path to a tetris.yaml overriding engine tunables
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import agent policies to register them.
	_ "github.com/vovakirdan/tetris-arcade/internal/agents"
)

var (
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Terminal Tetris arcade",
	Long: `arcade is a terminal-based Tetris client built on a deterministic,
headless engine. The same engine drives local play, SSH play, scripted
agent policies, and a line-delimited JSON protocol server.

Available commands:
  play             - Play locally in this terminal
  serve            - Start an SSH server for remote play
  protocol-serve   - Start the JSON protocol server
  agents           - List registered agent policies
  bench            - Run a headless two-agent comparison
  scores           - Show recorded episodes and comparison runs

Examples:
  arcade play
  arcade play --seed 42
  arcade serve --ssh :2222
  arcade bench dellacherie random
  arcade scores`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tetris.yaml overriding engine tunables")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(protocolServeCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(scoresCmd)
}
