// Package postgres stores mystery cases as JSONB documents in PostgreSQL.
//
// Each case is one row in the cases table: the id, author, publication flag
// and creation time are columns so they can be filtered and ordered, and the
// rest of the case lives in the document column. The schema is managed with
// goose migrations embedded in the binary (see Migrate).
package postgres
