// Package main provides the entry point for the Zeppy career assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zeppy",
	Short: "Zeppy career assistant",
	Long:  "Zeppy is a rule-based career assistant that answers questions about job listings, the application process and the company from a local corpus.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
