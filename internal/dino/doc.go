// Package dino provides the dinosaur record type and the read-only queries
// that run over a caller-supplied slice of records.
//
// This package imports nothing internal. Loading, storage and presentation
// live in dataset, store and cli; every query here is a pure function of its
// arguments.
//
// Key constraints:
//   - Queries never mutate the input slice or its records
//   - Queries never return errors; misses are sentinel values
//   - Output order always follows input order
package dino
