package dataset

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/roach88/dinofacts/internal/dino"
)

//go:embed schema.cue
var schemaCUE string

// decodeCUE compiles a CUE dataset and unifies it with the #Dinosaur schema.
// A file without a dinosaurs field is an empty dataset.
func decodeCUE(path string, data []byte) ([]dino.Record, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling embedded schema: %v", err)}
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, cueLoadError(ErrCodeParseFailed, err)
	}

	if !value.LookupPath(cue.ParsePath("dinosaurs")).Exists() {
		return []dino.Record{}, nil
	}

	unified := schema.Unify(value)
	if err := unified.Err(); err != nil {
		return nil, cueLoadError(ErrCodeSchemaViolation, err)
	}

	listVal := unified.LookupPath(cue.ParsePath("dinosaurs"))
	if err := listVal.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(ErrCodeSchemaViolation, err)
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, cueLoadError(ErrCodeSchemaViolation, err)
	}

	records := []dino.Record{}
	for iter.Next() {
		rec, err := decodeCUERecord(iter.Value())
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeCUERecord extracts a single record from a concrete #Dinosaur value.
func decodeCUERecord(v cue.Value) (dino.Record, error) {
	var r dino.Record

	textFields := []struct {
		field string
		dst   *string
	}{
		{dino.FieldDinosaurID, &r.DinosaurID},
		{dino.FieldName, &r.Name},
		{dino.FieldPronunciation, &r.Pronunciation},
		{dino.FieldInfo, &r.Info},
		{dino.FieldPeriod, &r.Period},
	}
	for _, s := range textFields {
		str, err := v.LookupPath(cue.ParsePath(s.field)).String()
		if err != nil {
			return r, cueLoadError(ErrCodeSchemaViolation, err)
		}
		*s.dst = str
	}

	length, err := v.LookupPath(cue.ParsePath(dino.FieldLengthInMeters)).Float64()
	if err != nil {
		return r, cueLoadError(ErrCodeSchemaViolation, err)
	}
	r.LengthInMeters = length

	myaIter, err := v.LookupPath(cue.ParsePath(dino.FieldMya)).List()
	if err != nil {
		return r, cueLoadError(ErrCodeSchemaViolation, err)
	}
	r.Mya = []int64{}
	for myaIter.Next() {
		n, err := myaIter.Value().Int64()
		if err != nil {
			return r, cueLoadError(ErrCodeSchemaViolation, err)
		}
		r.Mya = append(r.Mya, n)
	}

	return r, nil
}

// cueLoadError converts a CUE error into a LoadError carrying the first position.
func cueLoadError(code string, err error) *LoadError {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error()}
	}

	first := errs[0]
	loadErr := &LoadError{Code: code, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		loadErr.Pos = positions[0]
	}
	return loadErr
}
