package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcvoid/regen"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "regen",
		Short:         "Enumerate the language matched by a bounded regular expression",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(countCmd(), atCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "regen:", err)
		os.Exit(1)
	}
}

func countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <pattern>",
		Short: "Print the number of strings the pattern matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := regen.CompilePattern(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.Len())
			return nil
		},
	}
}

func atCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "at <pattern> <i>",
		Short: "Print the i-th string the pattern matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := regen.CompilePattern(args[0])
			if err != nil {
				return err
			}
			i, ok := new(big.Int).SetString(args[1], 10)
			if !ok {
				return fmt.Errorf("invalid index %q", args[1])
			}
			s, err := g.At(i)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
