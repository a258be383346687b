package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Evaluate words against finite automata and determinize them",
	Long: `automata loads finite automata with epsilon transitions from text, YAML or JSON
definitions, classifies words as ACCEPTED, REJECTED or INVALID and converts
automata into equivalent deterministic ones.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing automaton definitions")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); logs are off by default")
}

func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	return cli.CreateLogger(level)
}

func addStoreFlags(cmd *cobra.Command, defaultStore string, defaultRetain int) {
	cmd.Flags().String("store", defaultStore, "Report store: memory, file or redis (empty disables storage)")
	cmd.Flags().String("store-dir", "", "Directory for the file store (default .automata/reports)")
	cmd.Flags().String("redis-addr", "", "Redis address for the redis store")
	cmd.Flags().String("redis-prefix", "", "Key prefix for the redis store (default automata:report:)")
	cmd.Flags().Duration("redis-ttl", 0, "Expire reports in the redis store after this long (0 never expires)")
	cmd.Flags().Int("store-retain", defaultRetain, "Keep at most this many reports (0 keeps all)")
	cmd.Flags().Bool("store-compact", false, "Drop step traces from stored reports")
}

func engineOptions(cmd *cobra.Command) cli.EngineOptions {
	dir, _ := cmd.Flags().GetString("dir")
	opts := cli.EngineOptions{Dir: dir}
	if f := cmd.Flags().Lookup("store"); f != nil {
		opts.Store = f.Value.String()
		opts.StoreDir, _ = cmd.Flags().GetString("store-dir")
		opts.RedisAddr, _ = cmd.Flags().GetString("redis-addr")
		opts.RedisPrefix, _ = cmd.Flags().GetString("redis-prefix")
		opts.RedisTTL, _ = cmd.Flags().GetDuration("redis-ttl")
		opts.Retain, _ = cmd.Flags().GetInt("store-retain")
		opts.Compact, _ = cmd.Flags().GetBool("store-compact")
	}
	return opts
}
