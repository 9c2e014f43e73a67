// Package main is the entry point for the adventure gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-adventure/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-adventure",
	Short: "RPG adventure gRPC server",
	Long:  `RPG adventure runs a shared survival world where players explore, fight, quest, craft and trade over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
