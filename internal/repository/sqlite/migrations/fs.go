package migrations

import "embed"

// FS holds the embedded migration SQL files, applied in filename order.
//
//go:embed *.sql
var FS embed.FS
