// Package history persists comparison run summaries.
//
// Every completed comparison is recorded as a Run row (input files, matched
// and missing counts, duration) in the MySQL database, keyed by the run id.
// The history powers the `history` command and the run listing of the report
// server. Persistence is optional; when no database is reachable the rest of
// the tool works normally.
package history
