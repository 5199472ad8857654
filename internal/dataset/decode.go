package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/roach88/dinofacts/internal/dino"
)

// document is the mapping layout shared by YAML and object-form JSON.
type document struct {
	Dinosaurs []dino.Record `json:"dinosaurs" yaml:"dinosaurs"`
}

// decodeYAML parses a YAML dataset with strict field validation
// (catches typos like "lenghtInMeters").
func decodeYAML(data []byte) ([]dino.Record, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		// An empty file decodes to io.EOF; treat it as an empty dataset.
		if len(bytes.TrimSpace(data)) == 0 {
			return []dino.Record{}, nil
		}
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing YAML: %v", err)}
	}
	if doc.Dinosaurs == nil {
		return []dino.Record{}, nil
	}
	return doc.Dinosaurs, nil
}

// decodeJSON parses a JSON dataset. The top-level value is either an array
// of records or an object with a "dinosaurs" array.
func decodeJSON(data []byte) ([]dino.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: "parsing JSON: empty document"}
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.DisallowUnknownFields()

	var records []dino.Record
	switch trimmed[0] {
	case '[':
		if err := decoder.Decode(&records); err != nil {
			return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing JSON: %v", err)}
		}
	case '{':
		var doc document
		if err := decoder.Decode(&doc); err != nil {
			return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing JSON: %v", err)}
		}
		records = doc.Dinosaurs
	default:
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: "parsing JSON: expected an array or an object"}
	}

	if records == nil {
		records = []dino.Record{}
	}
	return records, nil
}
