package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/dinofacts/internal/dino"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	src := &SourceOptions{}

	cmd := &cobra.Command{
		Use:   "describe <dinosaur-id>",
		Short: "Describe a dinosaur by id",
		Long: `Print the name, pronunciation, description, period and age of a dinosaur.

An unknown id is not an error: the "cannot be found" message is printed and
the command exits 0.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, src, args[0], cmd)
		},
	}

	addSourceFlags(cmd, src)
	return cmd
}

func runDescribe(opts *RootOptions, src *SourceOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := opts.Logger()

	records, srcErr := loadRecords(cmd.Context(), src, logger)
	if srcErr != nil {
		return failCommand(formatter, srcErr.code, srcErr.message)
	}

	description := dino.Describe(records, id)
	if description == dino.NotFound(id) {
		logger.Debug("dinosaur not found", zap.String("id", id))
	}
	return formatter.Success(description)
}
