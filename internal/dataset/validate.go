package dataset

import (
	"fmt"
	"strings"

	"github.com/roach88/dinofacts/internal/dino"
)

// Validate checks records against the dataset invariants.
// Returns all errors found (does not fail-fast), ordered by record index.
func Validate(records []dino.Record) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]int, len(records))

	for i, r := range records {
		// E101: dinosaurId is required
		if strings.TrimSpace(r.DinosaurID) == "" {
			errs = append(errs, ValidationError{
				Index:   i,
				Field:   dino.FieldDinosaurID,
				Message: "dinosaurId is required and must be non-empty",
				Code:    ErrMissingID,
			})
		} else if first, dup := seen[r.DinosaurID]; dup {
			// E102: ids are unique across the dataset
			errs = append(errs, ValidationError{
				Index:   i,
				ID:      r.DinosaurID,
				Field:   dino.FieldDinosaurID,
				Message: fmt.Sprintf("duplicate dinosaurId, first defined at dinosaurs[%d]", first),
				Code:    ErrDuplicateID,
			})
		} else {
			seen[r.DinosaurID] = i
		}

		// E105: name is required
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, ValidationError{
				Index:   i,
				ID:      r.DinosaurID,
				Field:   dino.FieldName,
				Message: "name is required and must be non-empty",
				Code:    ErrMissingName,
			})
		}

		// E103: mya is a point estimate or a two-element range
		if n := len(r.Mya); n != 1 && n != 2 {
			errs = append(errs, ValidationError{
				Index:   i,
				ID:      r.DinosaurID,
				Field:   dino.FieldMya,
				Message: fmt.Sprintf("mya must have 1 or 2 elements, got %d", n),
				Code:    ErrInvalidMya,
			})
		}

		// E104: length is non-negative
		if r.LengthInMeters < 0 {
			errs = append(errs, ValidationError{
				Index:   i,
				ID:      r.DinosaurID,
				Field:   dino.FieldLengthInMeters,
				Message: fmt.Sprintf("lengthInMeters must be >= 0, got %g", r.LengthInMeters),
				Code:    ErrNegativeLength,
			})
		}
	}

	return errs
}
