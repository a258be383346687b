package main

import (
	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var determinizeCmd = &cobra.Command{
	Use:   "determinize FILE",
	Short: "Convert an automaton into an equivalent deterministic automaton",
	Long: `Runs subset construction and prints the resulting automaton.
Composite states are labelled by their member set, e.g. {q0,q1}.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		maxStates, _ := cmd.Flags().GetInt("max-states")

		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}

		opts := engineOptions(cmd)
		opts.StateLimit = maxStates
		engine, name, err := cli.CreateFileEngine(args[0], opts, logger)
		if err != nil {
			return err
		}

		dfa, err := engine.Compile(cmd.Context(), name, true)
		if err != nil {
			return err
		}
		return cli.WriteModel(cmd.OutOrStdout(), dfa, output)
	},
}

func init() {
	rootCmd.AddCommand(determinizeCmd)

	determinizeCmd.Flags().StringP("output", "o", cli.FormatText, "Output format: text, yaml, json or mermaid")
	determinizeCmd.Flags().Int("max-states", 0, "Abort beyond this many composite states (0 means unlimited)")
}
