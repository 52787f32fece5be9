package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/whenami/whenami/internal/config"
	"github.com/whenami/whenami/internal/nlquery"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <question>...",
		Short: "Ask for slots in natural language",
		Long: `Translate a natural-language question like "when am I free next week"
into slots flags using the configured Gemini model, then run the slots
command with them.

Requires the llm section of the config file to be enabled and an API key
in llm.api_key or $GEMINI_API_KEY.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runQuery(ctx context.Context, cmd *cobra.Command, question string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := nlquery.NewClient(ctx, cfg.LLM)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.Translate(ctx, question)
	if err != nil {
		return fmt.Errorf("failed to translate query: %w", err)
	}

	slotsArgs := result.Args(time.Now().In(cfg.Location()))
	fmt.Fprintf(cmd.OutOrStdout(), "Running: whenami slots %s\n", strings.Join(slotsArgs, " "))

	slotsCmd := newSlotsCmd()
	slotsCmd.SetArgs(slotsArgs)
	return slotsCmd.ExecuteContext(ctx)
}
