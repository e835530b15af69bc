// Package storage is the client's durable key/value storage: a local SQLite
// database with a single metadata table, the terminal counterpart of browser
// local storage. It survives restarts and is shared by everything opened on
// the same file.
//
// Two well-known keys are used by the rest of the client: KeyToken for the
// bearer credential and KeyAssessmentResult for the last assessment.
package storage
