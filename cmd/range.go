package cmd

import (
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cottand/seqalg/internal/log"
	"github.com/cottand/seqalg/seq"
)

var RangeCmd = &cobra.Command{
	Use:          "range LEFT RIGHT [STEP]",
	Short:        "Print the values of LEFT, LEFT+STEP, ... up to RIGHT inclusive",
	RunE:         runRange,
	Args:         cobra.RangeArgs(2, 3),
	SilenceUsage: true,
}

var (
	rangeFloat    *bool
	rangeJSON     *bool
	rangeLogLevel *int
)

func init() {
	rangeFloat = RangeCmd.Flags().BoolP("float", "f", false, "use floating point bounds and step")
	rangeJSON = RangeCmd.Flags().Bool("json", false, "print the result as JSON")
	rangeLogLevel = RangeCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runRange(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*rangeLogLevel))
	if len(args) == 2 {
		args = append(args, "1")
	}

	var result any
	if *rangeFloat {
		bounds, err := parseAll(args, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
		if err != nil {
			return err
		}
		result, err = seq.Range(bounds[0], bounds[1], bounds[2])
		if err != nil {
			return withCode(err)
		}
	} else {
		bounds, err := parseAll(args, strconv.Atoi)
		if err != nil {
			return err
		}
		result, err = seq.Range(bounds[0], bounds[1], bounds[2])
		if err != nil {
			return withCode(err)
		}
	}
	return printResult(cmd.OutOrStdout(), result, false, *rangeJSON)
}

func parseAll[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(args))
	for _, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid bound %q", arg)
		}
		out = append(out, v)
	}
	return out, nil
}
