package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-arcade/internal/agents"
	"github.com/vovakirdan/tetris-arcade/internal/config"
	"github.com/vovakirdan/tetris-arcade/internal/session"
	"github.com/vovakirdan/tetris-arcade/internal/storage"
)

var flagBenchMaxPieces int

var benchCmd = &cobra.Command{
	Use:   "bench <agent1> <agent2>",
	Short: "Run a headless two-agent comparison",
	Long: `Run agent1 against agent2 on the same piece stream, headless, and
report the winner by final score.

Examples:
  arcade bench dellacherie random
  arcade bench dellacherie random --seed 7 --max-pieces 500`,
	Args: cobra.ExactArgs(2),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchMaxPieces, "max-pieces", 1000, "Stop a side after this many placements (0 = unbounded, until top out)")
}

func runBench(_ *cobra.Command, args []string) {
	name1, name2 := args[0], args[1]

	if !agents.Exists(name1) {
		fmt.Fprintf(os.Stderr, "Error: unknown agent %q\n", name1)
		fmt.Fprintln(os.Stderr, "Run 'arcade agents' to see registered policies.")
		os.Exit(1)
	}
	if !agents.Exists(name2) {
		fmt.Fprintf(os.Stderr, "Error: unknown agent %q\n", name2)
		fmt.Fprintln(os.Stderr, "Run 'arcade agents' to see registered policies.")
		os.Exit(1)
	}

	tetrisCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	agent1, err := agents.Create(name1, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating agent: %v\n", err)
		os.Exit(1)
	}
	agent2, err := agents.Create(name2, seed+1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating agent: %v\n", err)
		os.Exit(1)
	}

	match := session.NewCompareMatch(tetrisCfg.ToEngineConfig(), name1, agent1, name2, agent2, seed, flagBenchMaxPieces)
	match.Reset()

	started := time.Now()
	for {
		_, _, _, _, _, done := match.StepBoth()
		if done {
			break
		}
	}
	winner, obs1, obs2 := match.Finish()
	score1, score2 := match.Scores()
	duration := int(time.Since(started).Seconds())

	fmt.Printf("%s: score=%d lines=%d\n", name1, score1, obs1.Episode.LinesTotal)
	fmt.Printf("%s: score=%d lines=%d\n", name2, score2, obs2.Episode.LinesTotal)
	fmt.Printf("winner: %s\n", winner)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return
	}
	defer store.Close()

	reason := "max_pieces"
	if obs1.Episode.TopOut || obs2.Episode.TopOut {
		reason = "top_out"
	}
	if _, saveErr := store.SaveCompareRun(storage.CompareRun{
		Agent1:   name1,
		Agent2:   name2,
		Seed:     seed,
		Score1:   score1,
		Score2:   score2,
		Winner:   winner,
		Reason:   reason,
		Duration: duration,
	}); saveErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save comparison run: %v\n", saveErr)
	}
}
