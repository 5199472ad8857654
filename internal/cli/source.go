package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/dinofacts/internal/dataset"
	"github.com/roach88/dinofacts/internal/dino"
	"github.com/roach88/dinofacts/internal/store"
)

// Environment variables supplying defaults for the source flags.
const (
	EnvData = "DINOFACTS_DATA"
	EnvDB   = "DINOFACTS_DB"
)

// SourceOptions selects where query commands read records from.
// Exactly one of DataPath and DBPath must be set.
type SourceOptions struct {
	DataPath string
	DBPath   string
}

// addSourceFlags registers --data and --db on cmd.
func addSourceFlags(cmd *cobra.Command, src *SourceOptions) {
	cmd.Flags().StringVar(&src.DataPath, "data", os.Getenv(EnvData), "dataset file (.cue, .yaml, .yml, .json) [$"+EnvData+"]")
	cmd.Flags().StringVar(&src.DBPath, "db", os.Getenv(EnvDB), "catalog database created by import [$"+EnvDB+"]")
}

// sourceError carries an error code for the formatter.
type sourceError struct {
	code    string
	message string
}

func (e *sourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// loadRecords reads records from the configured source.
// Dataset files are validated fail-fast; a catalog was validated on import.
func loadRecords(ctx context.Context, src *SourceOptions, logger *zap.Logger) ([]dino.Record, *sourceError) {
	switch {
	case src.DataPath != "" && src.DBPath != "":
		return nil, &sourceError{code: ErrCodeConflictSource, message: "--data and --db are mutually exclusive"}
	case src.DataPath != "":
		return loadDataset(src.DataPath, logger)
	case src.DBPath != "":
		return loadCatalog(ctx, src.DBPath, logger)
	default:
		return nil, &sourceError{code: ErrCodeNoSource, message: fmt.Sprintf("no dataset given: use --data or --db (or set %s / %s)", EnvData, EnvDB)}
	}
}

func loadDataset(path string, logger *zap.Logger) ([]dino.Record, *sourceError) {
	result, errs := dataset.Load(path, dataset.LoadModeFailFast)
	if len(errs) > 0 {
		code, message := describeError(errs[0])
		logger.Debug("dataset rejected", zap.String("path", path), zap.String("code", code))
		return nil, &sourceError{code: code, message: message}
	}

	logger.Debug("dataset loaded",
		zap.String("path", path),
		zap.String("format", string(result.Format)),
		zap.Int("records", len(result.Records)))
	return result.Records, nil
}

func loadCatalog(ctx context.Context, path string, logger *zap.Logger) ([]dino.Record, *sourceError) {
	// Open would create a missing database; an absent catalog is an error here.
	if !fileExists(path) {
		return nil, &sourceError{code: ErrCodeNotFound, message: fmt.Sprintf("catalog database not found: %s", path)}
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, &sourceError{code: ErrCodeStoreFailed, message: err.Error()}
	}
	defer s.Close()

	records, err := s.ReadRecords(ctx)
	if err != nil {
		return nil, &sourceError{code: ErrCodeStoreFailed, message: err.Error()}
	}

	logger.Debug("catalog loaded", zap.String("db", path), zap.Int("records", len(records)))
	return records, nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
