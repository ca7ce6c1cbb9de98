package migrations

import "embed"

// FS contains embedded SQLite migrations for purchase storage.
//
//go:embed *.sql
var FS embed.FS
