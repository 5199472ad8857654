package dataset

import (
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/dinofacts/internal/dino"
)

// normalizeRecords rewrites every string field in NFC form, in place.
func normalizeRecords(records []dino.Record) {
	for i := range records {
		r := &records[i]
		r.DinosaurID = norm.NFC.String(r.DinosaurID)
		r.Name = norm.NFC.String(r.Name)
		r.Pronunciation = norm.NFC.String(r.Pronunciation)
		r.Info = norm.NFC.String(r.Info)
		r.Period = norm.NFC.String(r.Period)
	}
}
