// Package store provides SQLite-backed storage for a dinosaur catalog.
//
// The catalog holds one dataset at a time:
//   - Dinosaurs: the current records, keyed by seq to keep input order
//   - Imports: one row per ReplaceRecords call, identified by a UUIDv7
//
// # Ordering
//
// Records are read back ORDER BY seq ASC, which is the order they were
// supplied in. Queries in package dino depend on this order for tie-breaking
// and for the order of AliveAt results.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
