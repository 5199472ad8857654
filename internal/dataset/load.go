package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/dinofacts/internal/dino"
)

// LoadMode controls how validation errors are reported.
type LoadMode int

const (
	// LoadModeFailFast stops at the first validation error.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll reports every validation error.
	LoadModeCollectAll
)

// Format names a supported dataset encoding.
type Format string

const (
	FormatCUE  Format = "cue"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// maxParallelLoads bounds the number of files LoadAll decodes at once.
const maxParallelLoads = 4

// LoadResult contains the records read from one dataset file.
type LoadResult struct {
	Path    string
	Format  Format
	Records []dino.Record
}

// FileResult pairs a path with the outcome of loading it.
type FileResult struct {
	Path   string
	Result *LoadResult
	Errors []error
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Load reads, normalizes and validates the dataset at path.
//
// A nil result means the file could not be read or decoded; the single error
// is a *LoadError. A non-nil result with errors means the records decoded but
// broke dataset invariants; the errors are ValidationError values. In
// LoadModeFailFast only the first validation error is returned.
func Load(path string, mode LoadMode) (*LoadResult, []error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("dataset not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("error accessing dataset: %v", err)}}
	}
	if info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a file: %s", path)}}
	}

	format, ok := DetectFormat(path)
	if !ok {
		return nil, []error{&LoadError{
			Code:    ErrCodeUnsupportedFormat,
			Message: fmt.Sprintf("unsupported dataset format %q: must be .cue, .yaml, .yml or .json", filepath.Ext(path)),
		}}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading dataset: %v", err)}}
	}

	records, err := Decode(format, path, data)
	if err != nil {
		return nil, []error{err}
	}

	result := &LoadResult{Path: path, Format: format, Records: records}

	validationErrs := Validate(records)
	if len(validationErrs) == 0 {
		return result, nil
	}
	if mode == LoadModeFailFast {
		return result, []error{validationErrs[0]}
	}
	errs := make([]error, len(validationErrs))
	for i, ve := range validationErrs {
		errs[i] = ve
	}
	return result, errs
}

// Decode parses data in the given format and NFC-normalizes the result.
// name is used for CUE positions only.
func Decode(format Format, name string, data []byte) ([]dino.Record, error) {
	var (
		records []dino.Record
		err     error
	)
	switch format {
	case FormatCUE:
		records, err = decodeCUE(name, data)
	case FormatYAML:
		records, err = decodeYAML(data)
	case FormatJSON:
		records, err = decodeJSON(data)
	default:
		return nil, &LoadError{Code: ErrCodeUnsupportedFormat, Message: fmt.Sprintf("unsupported dataset format %q", format)}
	}
	if err != nil {
		return nil, err
	}

	normalizeRecords(records)
	return records, nil
}

// LoadAll loads several datasets concurrently. Results are returned in the
// order of paths. The returned error is non-nil only when ctx is cancelled.
func LoadAll(ctx context.Context, paths []string, mode LoadMode) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, errs := Load(path, mode)
			results[i] = FileResult{Path: path, Result: res, Errors: errs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading datasets: %w", err)
	}
	return results, nil
}
