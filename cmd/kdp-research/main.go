package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, finishing current keyword...")
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := researchOptions{}

	cmd := &cobra.Command{
		Use:   "kdp-research",
		Short: "Research Amazon KDP niches and score book ideas",
		Long: "Collects competitor listings for each keyword, asks a language model to assess the niche " +
			"and writes scored book ideas as a JSON array.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.maxResultsSet = cmd.Flags().Changed("max-results")
			return runResearch(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.keywords, "keywords", "", "Comma-separated seed keywords")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY and the config file)")
	cmd.Flags().StringVar(&opts.output, "output", "output.json", "Path of the JSON file with scored ideas")
	cmd.Flags().IntVar(&opts.maxResults, "max-results", 20, "Maximum search results inspected per keyword")
	_ = cmd.MarkFlagRequired("keywords")

	cmd.AddCommand(newMetadataCmd())

	return cmd
}
