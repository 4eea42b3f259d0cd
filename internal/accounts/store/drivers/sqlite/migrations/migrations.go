package migrations

import "embed"

// Migrations holds the sqlite schema migration files, compiled into the
// binary so deployments never need a migrations directory on disk.
//
//go:embed *.sql
var Migrations embed.FS
