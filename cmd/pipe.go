package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cottand/seqalg/internal/log"
	"github.com/cottand/seqalg/memo"
	"github.com/cottand/seqalg/seq"
	"github.com/cottand/seqalg/seqerr"
)

var logger = log.DefaultLogger.With("section", "cmd")

var PipeCmd = &cobra.Command{
	Use:   "pipe STAGES [VALUES...]",
	Short: "Run a pipeline of sequence operations over a list of values",
	Long: `Run a pipeline of sequence operations over a list of integers, or over the
characters of a string with --chars.

STAGES is a '|'-separated list of:
  sort, unique, first, last, len, diff, sum,
  take:N, drop:N, get:N, erase:N, extract:I,J,...,
  set:N:V, insert:N:V, find:X, count:X, member:X, replace:X:Y, replaceall:X:Y`,
	Example:      `  seqalg pipe 'sort|unique|take:3' 5 3 3 1 4 1
  seqalg pipe --chars 'unique|sort' banana`,
	RunE:         runPipe,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var (
	pipeChars *bool
	pipeJSON  *bool
	memoSize  *int
	logLevel  *int
)

func init() {
	pipeChars = PipeCmd.Flags().BoolP("chars", "c", false, "operate on the characters of VALUES joined by spaces")
	pipeJSON = PipeCmd.Flags().Bool("json", false, "print the result as JSON")
	memoSize = PipeCmd.Flags().Int("memo", 128, "number of stage results to cache, 0 disables caching")
	logLevel = PipeCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runPipe(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	stages, err := parseStages(args[0])
	if err != nil {
		return errors.Wrap(err, "could not parse stages")
	}

	var cache *memo.Cache
	if *memoSize > 0 {
		cache, err = memo.New(*memoSize)
		if err != nil {
			return err
		}
		defer func() {
			hits, misses := cache.Stats()
			logger.Debug("memo stats", "hits", hits, "misses", misses)
		}()
	}

	var result any
	if *pipeChars {
		p := pipeline[rune]{cache: cache, parse: parseChar, chars: true}
		result, err = p.run(stages, seq.Chars(strings.Join(args[1:], " ")))
	} else {
		var values []int
		for _, arg := range args[1:] {
			n, err := parseInt(arg)
			if err != nil {
				return err
			}
			values = append(values, n)
		}
		p := pipeline[int]{cache: cache, parse: parseInt}
		result, err = p.run(stages, seq.Values(values...))
	}
	if err != nil {
		return withCode(err)
	}
	return printResult(cmd.OutOrStdout(), result, *pipeChars, *pipeJSON)
}

// withCode renders faults as (Ennn) message, keeping the context they were wrapped in
func withCode(err error) error {
	var fault seqerr.Fault
	if !errors.As(err, &fault) {
		return err
	}
	msg := strings.TrimSuffix(err.Error(), fault.Error())
	return errors.New(msg + seqerr.FormatWithCode(fault))
}

func printResult(w io.Writer, result any, chars, asJSON bool) error {
	if chars {
		switch v := result.(type) {
		case seq.ValueList[rune]:
			result = seq.Text(v)
		case rune:
			result = string(v)
		}
	}
	if asJSON {
		bs, err := json.Marshal(result)
		if err != nil {
			return errors.Wrap(err, "could not encode result")
		}
		_, err = fmt.Fprintln(w, string(bs))
		return err
	}
	_, err := fmt.Fprintln(w, result)
	return err
}
