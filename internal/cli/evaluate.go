package cli

import (
	"fmt"

	"skillrank/internal/common"
	"skillrank/internal/evaluation"
	"skillrank/internal/metrics"
	"skillrank/internal/selector"
	"skillrank/internal/utils"

	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [fixture-file]",
	Short: "Evaluate scoring quality against a fixture of expected selections",
	Long: `Evaluate the skill selection quality against a JSON fixture file.
Each fixture case contains a selection request plus the expected top skills
per category. The report includes per-case Jaccard accuracy, keyword hits,
missing and unexpected skills, and aggregate latency.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if evaluateConfig.OutputFormat == "" {
			evaluateConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(evaluateConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runEvaluate,
}

var evaluateConfig common.CommandConfig

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	evaluateCmd.Flags().StringVar(&evaluateConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	evaluateCmd.Flags().IntVar(&evaluateTopN, "top-n", 0, "Number of skills to keep per category (default from config)")

	// Add completion for format flag
	_ = evaluateCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

var evaluateTopN int

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	if ext := utils.GetFileExtension(args[0]); ext != ".json" {
		logger.Warn("Fixture file does not have a .json extension", "file", args[0], "extension", ext)
	}

	svc := selector.New(cfg, logger, metrics.NewRecorder())

	topN := evaluateTopN
	if topN <= 0 {
		topN = cfg.Scoring.TopN
	}

	createInput := func(contents []string) ([]evaluation.Case, error) {
		if len(contents) != 1 {
			return nil, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return evaluation.ParseCases([]byte(contents[0]))
	}

	logDetails := func(cases []evaluation.Case, cmdCfg common.CommandConfig) {
		logger.Info("Starting evaluation run",
			"cases", len(cases),
			"top_n", topN,
			"output_format", cmdCfg.OutputFormat)
	}

	runCases := func(cases []evaluation.Case) (*evaluation.Report, error) {
		return evaluation.Run(svc, cases, topN)
	}

	err := common.RunFileCommand(
		logger,
		evaluateConfig,
		args,
		createInput,
		runCases,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to evaluate fixture: %w", err)
	}
	logger.Info("Evaluation completed successfully")
	return nil
}
