package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mathieu/brandscope/internal/config"
	"github.com/mathieu/brandscope/internal/types"
)

// maxConcurrentExtractions bounds batch mode. Each extraction is an
// independent sequential pipeline; only distinct URLs run in parallel.
const maxConcurrentExtractions = 4

var extractKind string

var extractCmd = &cobra.Command{
	Use:   "extract <url> [url...]",
	Short: "Extract structured data from one or more brand website URLs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractKind, "kind", "profile", "extraction kind: profile, contact or news")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	kind, err := types.ParseKind(extractKind)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	application, err := buildApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer application.close()

	results := make([]types.Result, len(args))
	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(maxConcurrentExtractions)
	for i, rawURL := range args {
		group.Go(func() error {
			result, _ := application.orchestrator.Run(ctx, rawURL, kind)
			results[i] = result
			return nil
		})
	}
	// Extractions never fail; the group only propagates ctx cancellation.
	if err := group.Wait(); err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	for i, result := range results {
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result for %s: %w", args[i], err)
		}
	}
	return nil
}
