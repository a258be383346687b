package main

import (
	"fmt"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph FILE",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph LR) of the automaton. Final states are drawn as double circles.
With --word, the states the word passes through are highlighted and the verdict is printed to stderr.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dfa, _ := cmd.Flags().GetBool("dfa")

		m, err := cli.LoadFile(args[0])
		if err != nil {
			return err
		}
		if dfa {
			if m, err = automaton.Determinize(m); err != nil {
				return err
			}
		}

		var overlay *graph.Overlay
		if cmd.Flags().Changed("word") {
			word, _ := cmd.Flags().GetString("word")
			var res domain.Result
			overlay, res = graph.Highlight(cmd.Context(), m, word)
			if res.Reason != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s (%s)\n", res.Verdict, res.Reason)
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), res.Verdict)
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(m, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("dfa", false, "Draw the determinized automaton")
	graphCmd.Flags().String("word", "", "Highlight the run of this word (\"&\" is the empty word)")
}
