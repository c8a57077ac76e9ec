// Package migrations embeds the goose SQL migrations so the server binary,
// the migrate command and the integration tests apply the same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
