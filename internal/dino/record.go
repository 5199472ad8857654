package dino

// Record is a single dinosaur entry.
// JSON and YAML tags use the camelCase names of the source dataset.
type Record struct {
	DinosaurID     string  `json:"dinosaurId" yaml:"dinosaurId"`
	Name           string  `json:"name" yaml:"name"`
	Pronunciation  string  `json:"pronunciation" yaml:"pronunciation"`
	LengthInMeters float64 `json:"lengthInMeters" yaml:"lengthInMeters"`
	Info           string  `json:"info" yaml:"info"`
	Period         string  `json:"period" yaml:"period"`

	// Mya is either a point estimate [m] or a two-element range.
	Mya []int64 `json:"mya" yaml:"mya"`
}

// Field names accepted by AliveAt for projection.
const (
	FieldDinosaurID     = "dinosaurId"
	FieldName           = "name"
	FieldPronunciation  = "pronunciation"
	FieldLengthInMeters = "lengthInMeters"
	FieldInfo           = "info"
	FieldPeriod         = "period"
	FieldMya            = "mya"
)

// fieldAccessors maps a field name to its typed getter.
var fieldAccessors = map[string]func(Record) any{
	FieldDinosaurID:     func(r Record) any { return r.DinosaurID },
	FieldName:           func(r Record) any { return r.Name },
	FieldPronunciation:  func(r Record) any { return r.Pronunciation },
	FieldLengthInMeters: func(r Record) any { return r.LengthInMeters },
	FieldInfo:           func(r Record) any { return r.Info },
	FieldPeriod:         func(r Record) any { return r.Period },
	FieldMya:            func(r Record) any { return r.Mya },
}

// Field returns the value of the named field.
// The second result is false when name is not a known field or the record
// has no value for it (a nil Mya).
func (r Record) Field(name string) (any, bool) {
	get, ok := fieldAccessors[name]
	if !ok {
		return nil, false
	}
	if name == FieldMya && r.Mya == nil {
		return nil, false
	}
	return get(r), true
}

// Fields returns the known field names in declaration order.
func Fields() []string {
	return []string{
		FieldDinosaurID,
		FieldName,
		FieldPronunciation,
		FieldLengthInMeters,
		FieldInfo,
		FieldPeriod,
		FieldMya,
	}
}
