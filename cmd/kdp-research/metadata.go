package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/internal/research"
	"github.com/selivandex/kdp-autostudio/internal/validation"
	"github.com/selivandex/kdp-autostudio/pkg/logger"
	"github.com/selivandex/kdp-autostudio/pkg/models"
)

type metadataOptions struct {
	keyword string
	from    string
	apiKey  string
	output  string
}

func newMetadataCmd() *cobra.Command {
	opts := metadataOptions{}

	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Generate and validate KDP publishing metadata",
		Long: "Generates metadata for one --keyword, or with --from for every idea marked \"approved\" " +
			"in a research output file. Processed ideas are marked \"in_production\" in that file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetadata(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.keyword, "keyword", "", "Book keyword")
	cmd.Flags().StringVar(&opts.from, "from", "", "Research output file with reviewed ideas")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY and the config file)")
	cmd.Flags().StringVar(&opts.output, "output", "metadata.json", "Path of the metadata JSON file")
	cmd.MarkFlagsOneRequired("keyword", "from")
	cmd.MarkFlagsMutuallyExclusive("keyword", "from")

	return cmd
}

func runMetadata(ctx context.Context, opts metadataOptions) error {
	if opts.from != "" {
		return runMetadataBatch(ctx, opts)
	}

	keyword := strings.TrimSpace(opts.keyword)
	if keyword == "" {
		return fmt.Errorf("no keyword given")
	}

	a, err := initApp(opts.apiKey)
	if err != nil {
		return err
	}
	defer logger.Sync()

	idea := models.ScoredIdea{Keyword: keyword, Title: keyword, Status: models.IdeaPending}
	metadata := a.analyzer.GenerateMetadata(ctx, idea)

	result := validation.ValidateMetadata(metadata)
	printValidation(result)

	if err := research.WriteMetadata(opts.output, metadata); err != nil {
		return err
	}
	logger.Info("metadata written",
		zap.String("output", opts.output),
		zap.Bool("passed", result.Passed),
	)

	return nil
}

// runMetadataBatch generates metadata for approved ideas and marks them in production
func runMetadataBatch(ctx context.Context, opts metadataOptions) error {
	ideas, err := research.ReadIdeas(opts.from)
	if err != nil {
		return err
	}
	approved, err := research.ApprovedIdeas(ideas)
	if err != nil {
		return err
	}
	if len(approved) == 0 {
		fmt.Printf("No approved ideas in %s\n", opts.from)
		return nil
	}

	a, err := initApp(opts.apiKey)
	if err != nil {
		return err
	}
	defer logger.Sync()

	entries := make([]research.MetadataEntry, 0, len(approved))
	for _, i := range approved {
		if ctx.Err() != nil {
			logger.Warn("metadata generation interrupted", zap.Int("done", len(entries)))
			break
		}

		idea := ideas[i]
		metadata := a.analyzer.GenerateMetadata(ctx, idea)

		fmt.Printf("%s\n", idea.Title)
		printValidation(validation.ValidateMetadata(metadata))

		entries = append(entries, research.MetadataEntry{Keyword: idea.Keyword, Title: idea.Title, Metadata: metadata})
		ideas[i].Status = models.IdeaInProduction
	}

	if err := research.WriteMetadataBatch(opts.output, entries); err != nil {
		return err
	}
	if err := research.WriteIdeas(opts.from, ideas); err != nil {
		return err
	}
	logger.Info("metadata written",
		zap.String("output", opts.output),
		zap.Int("ideas", len(entries)),
	)

	return nil
}

func printValidation(result validation.Result) {
	status := "PASSED"
	if !result.Passed {
		status = "FAILED"
	}
	fmt.Printf("Metadata validation: %s\n", status)
	for _, e := range result.Errors {
		fmt.Printf("  error:   %s\n", e)
	}
	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
