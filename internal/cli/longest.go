package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/dinofacts/internal/dino"
)

// NewLongestCommand creates the longest command.
func NewLongestCommand(rootOpts *RootOptions) *cobra.Command {
	src := &SourceOptions{}

	cmd := &cobra.Command{
		Use:   "longest",
		Short: "Show the longest dinosaur and its length in feet",
		Long: `Show the longest dinosaur in the dataset with its length converted to feet
(meters * 3.281). Ties go to the dinosaur listed first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLongest(rootOpts, src, cmd)
		},
	}

	addSourceFlags(cmd, src)
	return cmd
}

func runLongest(opts *RootOptions, src *SourceOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	records, srcErr := loadRecords(cmd.Context(), src, opts.Logger())
	if srcErr != nil {
		return failCommand(formatter, srcErr.code, srcErr.message)
	}

	longest := dino.Longest(records)
	if formatter.Format == "json" {
		return formatter.Success(longest)
	}

	if len(longest) == 0 {
		fmt.Fprintln(formatter.Writer, "No dinosaurs in dataset")
		return nil
	}
	for name, feet := range longest {
		fmt.Fprintf(formatter.Writer, "%s: %s\n", name, strconv.FormatFloat(feet, 'f', -1, 64))
	}
	return nil
}
