package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/dinofacts/internal/dataset"
	"github.com/roach88/dinofacts/internal/store"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	src := &SourceOptions{}

	cmd := &cobra.Command{
		Use:   "import <dataset>",
		Short: "Load a dataset file into a SQLite catalog",
		Long: `Validate a dataset file and replace the contents of a SQLite catalog with it.

The catalog is created if it does not exist. Record order is preserved.
Each import is recorded with a time-sortable id.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, src, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&src.DBPath, "db", os.Getenv(EnvDB), "catalog database path [$"+EnvDB+"]")
	return cmd
}

func runImport(opts *RootOptions, src *SourceOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := opts.Logger()

	dbPath := src.DBPath
	if dbPath == "" {
		return failCommand(formatter, ErrCodeNoSource, fmt.Sprintf("no catalog given: use --db (or set %s)", EnvDB))
	}

	result, errs := dataset.Load(path, dataset.LoadModeFailFast)
	if len(errs) > 0 {
		code, message := describeError(errs[0])
		var ve dataset.ValidationError
		if errors.As(errs[0], &ve) {
			_ = formatter.Error(code, message, nil)
			return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", code, message))
		}
		return failCommand(formatter, code, message)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return failCommand(formatter, ErrCodeStoreFailed, err.Error())
	}
	defer s.Close()

	imp, err := s.ReplaceRecords(cmd.Context(), path, string(result.Format), result.Records)
	if err != nil {
		return failCommand(formatter, ErrCodeStoreFailed, err.Error())
	}

	logger.Info("imported dataset",
		zap.String("import_id", imp.ID),
		zap.String("source", path),
		zap.String("db", dbPath),
		zap.Int("records", imp.RecordCount))

	if formatter.Format == "json" {
		return formatter.Success(imp)
	}
	fmt.Fprintf(formatter.Writer, "✓ Imported %d dinosaur(s) from %s (import %s)\n", imp.RecordCount, path, imp.ID)
	return nil
}

// NewImportsCommand creates the imports command.
func NewImportsCommand(rootOpts *RootOptions) *cobra.Command {
	src := &SourceOptions{}

	cmd := &cobra.Command{
		Use:           "imports",
		Short:         "List the imports recorded in a catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImports(rootOpts, src, cmd)
		},
	}

	cmd.Flags().StringVar(&src.DBPath, "db", os.Getenv(EnvDB), "catalog database path [$"+EnvDB+"]")
	return cmd
}

func runImports(opts *RootOptions, src *SourceOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	dbPath := src.DBPath
	if dbPath == "" {
		return failCommand(formatter, ErrCodeNoSource, fmt.Sprintf("no catalog given: use --db (or set %s)", EnvDB))
	}
	if !fileExists(dbPath) {
		return failCommand(formatter, ErrCodeNotFound, fmt.Sprintf("catalog database not found: %s", dbPath))
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return failCommand(formatter, ErrCodeStoreFailed, err.Error())
	}
	defer s.Close()

	imports, err := s.ListImports(cmd.Context())
	if err != nil {
		return failCommand(formatter, ErrCodeStoreFailed, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(imports)
	}
	if len(imports) == 0 {
		fmt.Fprintln(formatter.Writer, "No imports recorded")
		return nil
	}
	for _, imp := range imports {
		fmt.Fprintf(formatter.Writer, "%d\t%s\t%s\t%s\t%d\n", imp.Seq, imp.ID, imp.Format, imp.Source, imp.RecordCount)
	}
	return nil
}
