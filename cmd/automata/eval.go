package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval FILE [WORDS...]",
	Short: "Evaluate words against an automaton",
	Long: `Classifies each word as ACCEPTED, REJECTED or INVALID.
Words are taken from the arguments, or read from stdin one per line.
"&" (or an empty line) is the empty word.
With a terminal on stdin, or --interactive, words are prompted one at a time
until :exit or :quit, and the session is stored as a single report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dfa, _ := cmd.Flags().GetBool("dfa")
		interactive, _ := cmd.Flags().GetBool("interactive")
		trace, _ := cmd.Flags().GetBool("trace")
		output, _ := cmd.Flags().GetString("output")

		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}

		opts := engineOptions(cmd)
		opts.Trace = trace
		engine, name, err := cli.CreateFileEngine(args[0], opts, logger)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		words := args[1:]
		color := cli.IsTerminal(os.Stdout)

		if len(words) == 0 && (interactive || cli.IsTerminal(os.Stdin)) {
			runner := automata.NewRunner(cmd.InOrStdin(), cmd.OutOrStdout())
			if color {
				runner.Renderer = tui.Verdict
				tui.PrintBanner(cmd.OutOrStdout())
			}
			report, err := runner.Run(ctx, engine, name, dfa)
			if err != nil && ctx.Signal() != nil {
				return nil
			}
			if err != nil {
				return err
			}
			if report != nil && opts.Store != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "report %s saved\n", report.ID)
			}
			return nil
		}

		if len(words) == 0 {
			if words, err = cli.ReadWords(cmd.InOrStdin()); err != nil {
				return err
			}
		}

		report, err := engine.Run(ctx, name, words, dfa)
		if err != nil {
			return err
		}
		if err := cli.WriteReport(cmd.OutOrStdout(), report, cli.ReportOptions{Format: output, Color: color, Trace: trace}); err != nil {
			return err
		}
		if opts.Store != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "report %s saved\n", report.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().Bool("dfa", false, "Evaluate against the determinized automaton")
	evalCmd.Flags().BoolP("interactive", "i", false, "Prompt for words one at a time")
	evalCmd.Flags().Bool("trace", false, "Show the active states after each symbol")
	evalCmd.Flags().StringP("output", "o", cli.FormatText, "Output format: text, json or markdown")
	addStoreFlags(evalCmd, "", 0)
}
