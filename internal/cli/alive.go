package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/dinofacts/internal/dino"
)

// AliveOptions holds flags for the alive command.
type AliveOptions struct {
	Key string
}

// NewAliveCommand creates the alive command.
func NewAliveCommand(rootOpts *RootOptions) *cobra.Command {
	src := &SourceOptions{}
	opts := &AliveOptions{}

	cmd := &cobra.Command{
		Use:   "alive <mya>",
		Short: "List dinosaurs alive at a number of millions of years ago",
		Long: `List the dinosaurs alive <mya> million years ago, one per line.

A dinosaur with a single mya value m matches m and m-1. A dinosaur with two
mya values matches only those two values exactly.

By default ids are printed. --key prints another field instead; an unknown
field name falls back to the id.`,
		Example: `  dinofacts alive 150 --data dinosaurs.cue
  dinofacts alive 65 --key name --db catalog.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlive(rootOpts, src, opts, args[0], cmd)
		},
	}

	addSourceFlags(cmd, src)
	cmd.Flags().StringVar(&opts.Key, "key", "", fmt.Sprintf("field to print instead of the id (one of %v)", dino.Fields()))
	return cmd
}

func runAlive(opts *RootOptions, src *SourceOptions, aliveOpts *AliveOptions, myaArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := opts.Logger()

	mya, err := strconv.ParseInt(myaArg, 10, 64)
	if err != nil {
		return failCommand(formatter, ErrCodeInvalidArgument, fmt.Sprintf("mya must be an integer, got %q", myaArg))
	}

	records, srcErr := loadRecords(cmd.Context(), src, logger)
	if srcErr != nil {
		return failCommand(formatter, srcErr.code, srcErr.message)
	}

	if aliveOpts.Key != "" {
		if _, known := (dino.Record{Mya: []int64{}}).Field(aliveOpts.Key); !known {
			logger.Warn("unknown field, printing ids", zap.String("key", aliveOpts.Key))
		}
	}

	values := dino.AliveAt(records, mya, aliveOpts.Key)
	logger.Debug("alive query", zap.Int64("mya", mya), zap.Int("matches", len(values)))

	if formatter.Format == "json" {
		return formatter.Success(values)
	}
	for _, v := range values {
		fmt.Fprintln(formatter.Writer, v)
	}
	return nil
}
