// Package migrations embeds the goose schema migrations, one directory per dialect.
package migrations

import "embed"

//go:embed mysql/*.sql sqlite/*.sql postgres/*.sql
var FS embed.FS
