package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-arcade/internal/agents"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List registered agent policies",
	Long:  `Shows every agent policy registered in the arcade, usable with 'arcade bench' or AI play over the protocol server.`,
	Run:   runAgents,
}

func runAgents(_ *cobra.Command, _ []string) {
	list := agents.List()

	if len(list) == 0 {
		fmt.Println("No agent policies registered.")
		return
	}

	fmt.Println("Available agent policies:")
	fmt.Println()

	maxIDLen := 2
	for _, a := range list {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, a := range list {
		fmt.Printf("  %-*s  %s\n", maxIDLen, a.ID, a.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arcade bench <agent1> <agent2>' to compare two policies.")
}
