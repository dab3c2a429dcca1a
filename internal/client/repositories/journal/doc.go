// Package journal stores the local history of write attempts (create, update,
// delete) made from the admin client.
//
// The SQLite implementation keeps at most a configured number of entries;
// older rows are trimmed in the same transaction that appends a new one.
// Nop discards everything and is used when the journal is disabled.
package journal
