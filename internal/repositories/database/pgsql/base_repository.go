package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all repositories.
// Every operation in this unit is a single statement, so no transaction
// helpers are exposed.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
