package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-arcade/internal/storage"
)

var flagScoresAgent string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded episodes and comparison runs",
	Long: `Display the top recorded episodes by score and the most recent
two-agent comparison runs.

Examples:
  arcade scores
  arcade scores --agent dellacherie`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresAgent, "agent", "", "Filter episodes to a single agent (empty = all, human included)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	episodes, err := store.TopEpisodes(flagScoresAgent, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving episodes: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Episodes")
	fmt.Println()
	if len(episodes) == 0 {
		fmt.Println("No episodes recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-12s  %-10s  %-8s  %s\n", "Rank", "Agent", "Score", "Lines", "Date")
		fmt.Printf("  %-4s  %-12s  %-10s  %-8s  %s\n", "----", "-----", "-----", "-----", "----")
		for i, e := range episodes {
			agent := e.Agent
			if agent == "" {
				agent = "human"
			}
			fmt.Printf("  %-4d  %-12s  %-10d  %-8d  %s\n", i+1, agent, e.Score, e.Lines, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	fmt.Println("Recent Comparison Runs")
	fmt.Println()

	runs, err := store.RecentCompareRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving comparison runs: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No comparison runs recorded yet.")
		return
	}
	fmt.Printf("  %-12s  %-12s  %-8s  %-8s  %s\n", "Agent1", "Agent2", "Score1", "Score2", "Winner")
	fmt.Printf("  %-12s  %-12s  %-8s  %-8s  %s\n", "------", "------", "------", "------", "------")
	for _, r := range runs {
		fmt.Printf("  %-12s  %-12s  %-8d  %-8d  %s\n", r.Agent1, r.Agent2, r.Score1, r.Score2, r.Winner)
	}
}
