package cli

import (
	"encoding/json"
	"fmt"

	"skillrank/internal/common"
	"skillrank/internal/metrics"
	"skillrank/internal/selector"
	"skillrank/internal/types"

	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select [request-file]",
	Short: "Rank candidate skills for a job role",
	Long: `Rank candidate skills against a job role using the rule-based
keyword profiles. The command takes one argument: the path to a JSON file
containing the selection request (job_role plus candidate skill lists).`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if selectConfig.OutputFormat == "" {
			selectConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(selectConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSelect,
}

var selectConfig common.CommandConfig

func init() {
	selectCmd.Flags().StringVarP(&selectConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	selectCmd.Flags().StringVar(&selectConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = selectCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runSelect(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	svc := selector.New(cfg, logger, metrics.NewRecorder())

	createInput := func(contents []string) (types.SelectSkillsRequest, error) {
		if len(contents) != 1 {
			return types.SelectSkillsRequest{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		var req types.SelectSkillsRequest
		if err := json.Unmarshal([]byte(contents[0]), &req); err != nil {
			return types.SelectSkillsRequest{}, fmt.Errorf("failed to parse request file: %w", err)
		}
		return req, nil
	}

	logDetails := func(input types.SelectSkillsRequest, cmdCfg common.CommandConfig) {
		logger.Info("Starting skill selection",
			"job_role", input.JobRole,
			"skills_in", len(input.Technology)+len(input.Programming)+len(input.Concepts),
			"output_format", cmdCfg.OutputFormat)
	}

	err := common.RunFileCommand(
		logger,
		selectConfig,
		args,
		createInput,
		svc.SelectSkills,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to select skills: %w", err)
	}
	logger.Info("Skill selection completed successfully")
	return nil
}
