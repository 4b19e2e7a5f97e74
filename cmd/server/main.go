// Package main is the entry point for the arena gRPC server and its test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arena-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "arena-api",
	Short: "Arena API gRPC Server",
	Long:  `Arena API provides a gRPC interface for gladiators, arena combat and random battles.`,
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
