package main

import (
	"fmt"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate an automaton definition",
	Long:  `Loads the definition, checks every state and symbol reference and prints a summary.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := cli.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cli.Summary(args[0], m))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
