package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/dinofacts/internal/dataset"
)

// ValidationResult holds validation results for every file checked.
type ValidationResult struct {
	Valid bool         `json:"valid"`
	Files []FileReport `json:"files"`
}

// FileReport is the validation outcome of one dataset file.
type FileReport struct {
	Path    string     `json:"path"`
	Records int        `json:"records"`
	Errors  []CLIError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <dataset>...",
		Short: "Validate dataset files",
		Long: `Validate one or more CUE, YAML or JSON dataset files.

Checks syntax, the record schema, unique ids, mya arity and non-negative
lengths. Every error in every file is reported. Files are checked in parallel.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := opts.Logger()

	results, err := dataset.LoadAll(cmd.Context(), paths, dataset.LoadModeCollectAll)
	if err != nil {
		return failCommand(formatter, ErrCodeGeneric, err.Error())
	}

	report := ValidationResult{Valid: true}
	loadFailed := false
	for _, res := range results {
		file := FileReport{Path: res.Path}
		if res.Result != nil {
			file.Records = len(res.Result.Records)
		}
		for _, err := range res.Errors {
			var loadErr *dataset.LoadError
			if errors.As(err, &loadErr) {
				loadFailed = true
			}
			code, message := describeError(err)
			file.Errors = append(file.Errors, CLIError{Code: code, Message: message})
		}
		if len(file.Errors) > 0 {
			report.Valid = false
		}
		logger.Debug("validated dataset",
			zap.String("path", file.Path),
			zap.Int("records", file.Records),
			zap.Int("errors", len(file.Errors)))
		report.Files = append(report.Files, file)
	}

	if report.Valid {
		return outputValidateSuccess(formatter, report)
	}
	return outputValidationErrors(formatter, report, loadFailed)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, report ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprintln(formatter.Writer, "✓ All datasets valid")
	return nil
}

// outputValidationErrors outputs every failing file and its errors.
// Exit code is 2 when a file could not be loaded, 1 when records broke invariants.
func outputValidationErrors(formatter *OutputFormatter, report ValidationResult, loadFailed bool) error {
	exitCode := ExitFailure
	if loadFailed {
		exitCode = ExitCommandError
	}

	count := 0
	var first *CLIError
	for i := range report.Files {
		for j := range report.Files[i].Errors {
			if first == nil {
				first = &report.Files[i].Errors[j]
			}
			count++
		}
	}
	exitErr := NewExitError(exitCode, fmt.Sprintf("validation failed with %d error(s)", count))

	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   report,
			Error:  &CLIError{Code: first.Code, Message: first.Message},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return exitErr
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, file := range report.Files {
		if len(file.Errors) == 0 {
			continue
		}
		fmt.Fprintln(formatter.Writer, file.Path)
		for _, e := range file.Errors {
			fmt.Fprintf(formatter.Writer, "  %s: %s\n", e.Code, e.Message)
		}
		fmt.Fprintln(formatter.Writer)
	}

	return exitErr
}
