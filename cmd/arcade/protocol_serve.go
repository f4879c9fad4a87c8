package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-arcade/internal/config"
	"github.com/vovakirdan/tetris-arcade/internal/session"
	"github.com/vovakirdan/tetris-arcade/internal/storage"
)

var flagProtocolAddr string

var protocolServeCmd = &cobra.Command{
	Use:   "protocol-serve",
	Short: "Start the line-delimited JSON protocol server",
	Long: `Start a TCP server speaking the arcade's line-delimited JSON
protocol: one JSON object per line in, one per line out. Supports single
play, AI play, and two-agent comparison sessions.

Examples:
  arcade protocol-serve
  arcade protocol-serve --addr :9000`,
	Run: runProtocolServe,
}

func init() {
	protocolServeCmd.Flags().StringVar(&flagProtocolAddr, "addr", ":9010", "TCP address to listen on")
}

func runProtocolServe(_ *cobra.Command, _ []string) {
	tetrisCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	var saver session.RunResultSaver
	if store != nil {
		saver = session.NewStoreSaver(store)
		defer store.Close()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-protocol",
	})

	srv := session.NewServer(tetrisCfg.ToEngineConfig(), saver, logger)

	fmt.Printf("Starting protocol server on %s\n", flagProtocolAddr)
	if err := srv.Serve(flagProtocolAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
