package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/roach88/dinofacts/internal/dino"
)

// Import describes one ReplaceRecords call.
type Import struct {
	ID          string `json:"id"`
	Seq         int64  `json:"seq"`
	Source      string `json:"source"`
	Format      string `json:"format"`
	RecordCount int    `json:"record_count"`
}

// ReplaceRecords replaces the catalog with records in a single transaction.
// Records keep their slice order (stored as seq 1..n). Duplicate dinosaur ids
// violate the UNIQUE constraint and roll the whole import back.
func (s *Store) ReplaceRecords(ctx context.Context, source, format string, records []dino.Record) (Import, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Import{}, fmt.Errorf("replace records: begin: %w", err)
	}
	defer tx.Rollback()

	var nextSeq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM imports`).Scan(&nextSeq); err != nil {
		return Import{}, fmt.Errorf("replace records: next seq: %w", err)
	}

	imp := Import{
		ID:          s.idGen.Generate(),
		Seq:         nextSeq,
		Source:      source,
		Format:      format,
		RecordCount: len(records),
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM dinosaurs`); err != nil {
		return Import{}, fmt.Errorf("replace records: clear: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO imports (id, seq, source, format, record_count)
		VALUES (?, ?, ?, ?, ?)
	`, imp.ID, imp.Seq, imp.Source, imp.Format, imp.RecordCount); err != nil {
		return Import{}, fmt.Errorf("replace records: insert import: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dinosaurs
		(seq, dinosaur_id, name, pronunciation, length_in_meters, info, period, mya, import_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return Import{}, fmt.Errorf("replace records: prepare: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		myaJSON, err := marshalMya(r.Mya)
		if err != nil {
			return Import{}, fmt.Errorf("replace records: dinosaurs[%d]: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx,
			i+1,
			r.DinosaurID,
			r.Name,
			r.Pronunciation,
			r.LengthInMeters,
			r.Info,
			r.Period,
			myaJSON,
			imp.ID,
		); err != nil {
			return Import{}, fmt.Errorf("replace records: dinosaurs[%d] (%s): %w", i, r.DinosaurID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Import{}, fmt.Errorf("replace records: commit: %w", err)
	}
	return imp, nil
}

// marshalMya encodes mya as a JSON array. A nil slice is stored as [].
func marshalMya(mya []int64) (string, error) {
	if mya == nil {
		mya = []int64{}
	}
	data, err := json.Marshal(mya)
	if err != nil {
		return "", fmt.Errorf("marshal mya: %w", err)
	}
	return string(data), nil
}
