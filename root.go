package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cottand/seqalg/cmd"
)

var rootCmd = &cobra.Command{
	Use:          "seqalg [subcommand]",
	Short:        "seqalg\n immutable sequence algebra from the command line",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.PipeCmd)
	rootCmd.AddCommand(cmd.RangeCmd)
}

// execute runs rootCmd once more with args, starting from default flag values
func execute(out, errOut io.Writer, args ...string) error {
	resetFlags(rootCmd)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// resetFlags undoes the flags set by a previous execution, as cobra keeps them on the
// package level commands
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
