// Package dataset loads dinosaur records from CUE, YAML and JSON files and
// checks the invariants the query package relies on.
//
// Supported layouts:
//   - .cue:  a `dinosaurs: [...]` field, unified with the embedded #Dinosaur schema
//   - .yaml: a `dinosaurs:` sequence, unknown fields rejected
//   - .json: a top-level array, or an object with a "dinosaurs" array
//
// Strings are NFC normalized on load so that ids and names compare
// byte-for-byte regardless of how the source file was encoded.
package dataset
