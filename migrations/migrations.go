package migrations

import "embed"

// FS holds the SQL migrations so the binary can migrate without the source tree.
//
//go:embed *.sql
var FS embed.FS
