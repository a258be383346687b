package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Inspect stored evaluation reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored report IDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openReportStore(cmd)
		if err != nil {
			return err
		}
		ids, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var reportsShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a stored report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		store, err := openReportStore(cmd)
		if err != nil {
			return err
		}
		report, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("report %s: %w", args[0], err)
		}
		return cli.WriteReport(cmd.OutOrStdout(), report, cli.ReportOptions{
			Format: output,
			Color:  cli.IsTerminal(os.Stdout),
			Trace:  true,
		})
	},
}

func openReportStore(cmd *cobra.Command) (ports.ReportStore, error) {
	opts := engineOptions(cmd)
	if opts.Store == "" {
		return nil, fmt.Errorf("no report store selected")
	}
	return cli.OpenStore(opts)
}

func init() {
	rootCmd.AddCommand(reportsCmd)
	reportsCmd.AddCommand(reportsListCmd, reportsShowCmd)

	addStoreFlags(reportsListCmd, cli.StoreFile, 0)
	addStoreFlags(reportsShowCmd, cli.StoreFile, 0)
	reportsShowCmd.Flags().StringP("output", "o", cli.FormatText, "Output format: text, json or markdown")
}
