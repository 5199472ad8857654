package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dinofacts/internal/dino"
)

func testdataPath(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func requireLoadError(t *testing.T, errs []error, code string) *LoadError {
	t.Helper()
	require.Len(t, errs, 1)
	var loadErr *LoadError
	require.True(t, errors.As(errs[0], &loadErr), "want *LoadError, got %T: %v", errs[0], errs[0])
	assert.Equal(t, code, loadErr.Code, loadErr.Error())
	return loadErr
}

func TestLoadFormatsAgree(t *testing.T) {
	cueResult, errs := Load(testdataPath("dinosaurs.cue"), LoadModeCollectAll)
	require.Empty(t, errs)
	require.Len(t, cueResult.Records, 7)
	assert.Equal(t, FormatCUE, cueResult.Format)

	for _, name := range []string{"dinosaurs.yaml", "dinosaurs.json"} {
		t.Run(name, func(t *testing.T) {
			result, errs := Load(testdataPath(name), LoadModeCollectAll)
			require.Empty(t, errs)
			if diff := cmp.Diff(cueResult.Records, result.Records); diff != "" {
				t.Errorf("records mismatch (-cue +%s):\n%s", name, diff)
			}
		})
	}
}

func TestLoadCUEFields(t *testing.T) {
	result, errs := Load(testdataPath("dinosaurs.cue"), LoadModeFailFast)
	require.Empty(t, errs)

	want := dino.Record{
		DinosaurID:     "BFjjLjea-O",
		Name:           "Camptosaurus",
		Pronunciation:  "KAMP-toh-SORE-us",
		LengthInMeters: 7.9,
		Info:           "Camptosaurus was a bulky plant-eater.",
		Period:         "Late Jurassic",
		Mya:            []int64{151},
	}
	assert.Equal(t, want, result.Records[2])
}

func TestLoadSupportsQueries(t *testing.T) {
	result, errs := Load(testdataPath("dinosaurs.yaml"), LoadModeFailFast)
	require.Empty(t, errs)

	assert.Equal(t, []any{"YLtkN9R37", "GGvO1X9Zeh", "BFjjLjea-O", "V53DvdhV2A"}, dino.AliveAt(result.Records, 150, ""))
	assert.Equal(t, []any{"Dracorex"}, dino.AliveAt(result.Records, 65, "name"))
	assert.Contains(t, dino.Longest(result.Records), "Brachiosaurus")
}

func TestLoadNotFound(t *testing.T) {
	_, errs := Load("/nonexistent/dinosaurs.json", LoadModeFailFast)
	loadErr := requireLoadError(t, errs, ErrCodeNotFound)
	assert.Contains(t, loadErr.Message, "not found")
}

func TestLoadDirectory(t *testing.T) {
	_, errs := Load(t.TempDir(), LoadModeFailFast)
	requireLoadError(t, errs, ErrCodeNotFound)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "dinosaurs.csv", "dinosaurId,name\n")

	_, errs := Load(path, LoadModeFailFast)
	loadErr := requireLoadError(t, errs, ErrCodeUnsupportedFormat)
	assert.Contains(t, loadErr.Message, ".csv")
}

func TestLoadYAMLRejectsUnknownFields(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
dinosaurs:
  - dinosaurId: "a"
    name: "A"
    lenghtInMeters: 3
    mya: [10]
`)

	_, errs := Load(path, LoadModeFailFast)
	loadErr := requireLoadError(t, errs, ErrCodeParseFailed)
	assert.Contains(t, loadErr.Message, "lenghtInMeters")
}

func TestLoadYAMLEmpty(t *testing.T) {
	result, errs := Load(writeFile(t, "empty.yaml", ""), LoadModeFailFast)
	require.Empty(t, errs)
	require.NotNil(t, result.Records)
	assert.Empty(t, result.Records)
}

func TestLoadJSONObjectForm(t *testing.T) {
	path := writeFile(t, "wrapped.json", `{"dinosaurs": [
		{"dinosaurId": "a", "name": "A", "pronunciation": "ay", "lengthInMeters": 1.5, "info": "A.", "period": "Triassic", "mya": [220]}
	]}`)

	result, errs := Load(path, LoadModeFailFast)
	require.Empty(t, errs)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "A", result.Records[0].Name)
	assert.Equal(t, []int64{220}, result.Records[0].Mya)
}

func TestLoadJSONRejectsUnknownFields(t *testing.T) {
	path := writeFile(t, "bad.json", `[{"dinosaurId": "a", "weight": 10}]`)

	_, errs := Load(path, LoadModeFailFast)
	loadErr := requireLoadError(t, errs, ErrCodeParseFailed)
	assert.Contains(t, loadErr.Message, "weight")
}

func TestLoadJSONMalformed(t *testing.T) {
	for name, content := range map[string]string{
		"empty.json":  "  ",
		"scalar.json": "42",
		"broken.json": "[{",
	} {
		t.Run(name, func(t *testing.T) {
			_, errs := Load(writeFile(t, name, content), LoadModeFailFast)
			requireLoadError(t, errs, ErrCodeParseFailed)
		})
	}
}

func TestLoadCUESyntaxError(t *testing.T) {
	path := writeFile(t, "broken.cue", "dinosaurs: [\n")

	_, errs := Load(path, LoadModeFailFast)
	loadErr := requireLoadError(t, errs, ErrCodeParseFailed)
	assert.True(t, loadErr.Pos.IsValid())
}

func TestLoadCUESchemaViolation(t *testing.T) {
	tests := map[string]string{
		"negative length": `dinosaurs: [{
			dinosaurId: "a", name: "A", pronunciation: "a", info: "A.", period: "P"
			lengthInMeters: -1
			mya: [10]
		}]`,
		"three mya values": `dinosaurs: [{
			dinosaurId: "a", name: "A", pronunciation: "a", info: "A.", period: "P"
			lengthInMeters: 1
			mya: [10, 9, 8]
		}]`,
		"missing field": `dinosaurs: [{
			dinosaurId: "a", name: "A", pronunciation: "a", info: "A."
			lengthInMeters: 1
			mya: [10]
		}]`,
		"unknown field": `dinosaurs: [{
			dinosaurId: "a", name: "A", pronunciation: "a", info: "A.", period: "P"
			lengthInMeters: 1
			mya: [10]
			weight: 5
		}]`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, errs := Load(writeFile(t, "bad.cue", content), LoadModeFailFast)
			requireLoadError(t, errs, ErrCodeSchemaViolation)
		})
	}
}

func TestLoadCUEWithoutDinosaurs(t *testing.T) {
	result, errs := Load(writeFile(t, "other.cue", `version: 1`), LoadModeFailFast)
	require.Empty(t, errs)
	assert.Empty(t, result.Records)
}

func TestLoadValidationModes(t *testing.T) {
	path := writeFile(t, "invalid.json", `[
		{"dinosaurId": "a", "name": "A", "mya": [10]},
		{"dinosaurId": "a", "name": "", "mya": []},
		{"dinosaurId": "", "name": "C", "lengthInMeters": -2, "mya": [1, 2]}
	]`)

	result, errs := Load(path, LoadModeFailFast)
	require.NotNil(t, result)
	require.Len(t, errs, 1)
	var ve ValidationError
	require.True(t, errors.As(errs[0], &ve))
	assert.Equal(t, ErrDuplicateID, ve.Code)

	result, errs = Load(path, LoadModeCollectAll)
	require.NotNil(t, result)
	assert.Len(t, result.Records, 3)

	var codes []string
	for _, err := range errs {
		require.True(t, errors.As(err, &ve))
		codes = append(codes, ve.Code)
	}
	assert.Equal(t, []string{ErrDuplicateID, ErrMissingName, ErrInvalidMya, ErrMissingID, ErrNegativeLength}, codes)
}

func TestLoadNormalizesStrings(t *testing.T) {
	// "e" followed by U+0301 COMBINING ACUTE ACCENT
	path := writeFile(t, "nfd.json", `[{"dinosaurId": "x", "name": "Ame\u0301lie", "mya": [10]}]`)

	result, errs := Load(path, LoadModeFailFast)
	require.Empty(t, errs)
	assert.Equal(t, "Am\u00e9lie", result.Records[0].Name)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path   string
		format Format
		ok     bool
	}{
		{"a.cue", FormatCUE, true},
		{"a.yaml", FormatYAML, true},
		{"a.YML", FormatYAML, true},
		{"a.json", FormatJSON, true},
		{"a.js", "", false},
		{"a", "", false},
	}
	for _, tt := range tests {
		format, ok := DetectFormat(tt.path)
		assert.Equal(t, tt.format, format, tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
	}
}

func TestLoadAll(t *testing.T) {
	paths := []string{
		testdataPath("dinosaurs.cue"),
		"/nonexistent/dinosaurs.yaml",
		testdataPath("dinosaurs.json"),
	}

	results, err := LoadAll(context.Background(), paths, LoadModeCollectAll)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
	}
	assert.Empty(t, results[0].Errors)
	assert.Len(t, results[0].Result.Records, 7)
	assert.Nil(t, results[1].Result)
	requireLoadError(t, results[1].Errors, ErrCodeNotFound)
	assert.Empty(t, results[2].Errors)
}

func TestLoadAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadAll(ctx, []string{testdataPath("dinosaurs.cue")}, LoadModeFailFast)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
