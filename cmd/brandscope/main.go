// Package main provides the brandscope CLI: one-off extractions and the
// HTTP API server used by the marketing dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brandscope",
	Short: "Brand website extraction pipeline",
	Long:  "Brandscope turns brand and influencer website URLs into structured business data: identity, industry, contacts, social presence, products and recent news.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
