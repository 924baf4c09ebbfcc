// Package migrations contains the embedded goose migrations for the
// PostgreSQL case store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
