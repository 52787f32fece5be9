package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/whenami/whenami/internal/calendar"
	"github.com/whenami/whenami/internal/config"
)

func newCalendarsCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "calendars",
		Short: "List configured calendars with their Google metadata",
		Long: `Look up every calendar from the config file and print its Google
display name and timezone. Useful to verify the configured ids before
computing slots.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if len(cfg.Calendars) == 0 {
				return fmt.Errorf("no calendars configured; add a calendars section to the config file")
			}

			client, err := calendar.NewClientForAccount(cmd.Context(), account)
			if err != nil {
				return fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTIMEZONE")
			for _, ref := range cfg.Calendars {
				info, err := client.Calendar(cmd.Context(), ref.ID)
				if err != nil {
					fmt.Fprintf(w, "%s\t%s\t(%v)\n", ref.ID, ref.Name, err)
					continue
				}
				name := info.Summary
				if info.Primary {
					name += " (primary)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", info.ID, name, info.TimeZone)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	return cmd
}
