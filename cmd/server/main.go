// Package main is the entry point for the encounter API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "encounter-api",
	Short: "D&D 5e encounter tracker API",
	Long:  `encounter-api serves an initiative tracker: participants, turn order, difficulty scoring, saves, and a read-only player-view mirror over websocket.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
