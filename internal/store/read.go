package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/dinofacts/internal/dino"
)

// ReadRecords returns the catalog in input order (ORDER BY seq ASC).
//
// Returns an empty slice (not nil) if the catalog is empty.
func (s *Store) ReadRecords(ctx context.Context) ([]dino.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT dinosaur_id, name, pronunciation, length_in_meters, info, period, mya
		FROM dinosaurs
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query dinosaurs: %w", err)
	}
	defer rows.Close()

	records := []dino.Record{}
	for rows.Next() {
		var (
			r       dino.Record
			myaJSON string
		)
		if err := rows.Scan(&r.DinosaurID, &r.Name, &r.Pronunciation, &r.LengthInMeters, &r.Info, &r.Period, &myaJSON); err != nil {
			return nil, fmt.Errorf("scan dinosaur: %w", err)
		}
		if err := json.Unmarshal([]byte(myaJSON), &r.Mya); err != nil {
			return nil, fmt.Errorf("unmarshal mya for %s: %w", r.DinosaurID, err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dinosaurs: %w", err)
	}
	return records, nil
}

// LatestImport returns the most recent import.
// The boolean is false when nothing has been imported yet.
func (s *Store) LatestImport(ctx context.Context) (Import, bool, error) {
	var imp Import
	err := s.db.QueryRowContext(ctx, `
		SELECT id, seq, source, format, record_count
		FROM imports
		ORDER BY seq DESC
		LIMIT 1
	`).Scan(&imp.ID, &imp.Seq, &imp.Source, &imp.Format, &imp.RecordCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Import{}, false, nil
	}
	if err != nil {
		return Import{}, false, fmt.Errorf("query latest import: %w", err)
	}
	return imp, true, nil
}

// ListImports returns every import, oldest first.
//
// Returns an empty slice (not nil) if nothing has been imported.
func (s *Store) ListImports(ctx context.Context) ([]Import, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, source, format, record_count
		FROM imports
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query imports: %w", err)
	}
	defer rows.Close()

	imports := []Import{}
	for rows.Next() {
		var imp Import
		if err := rows.Scan(&imp.ID, &imp.Seq, &imp.Source, &imp.Format, &imp.RecordCount); err != nil {
			return nil, fmt.Errorf("scan import: %w", err)
		}
		imports = append(imports, imp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate imports: %w", err)
	}
	return imports, nil
}
