// Package db wires the persistence layer: it opens the connection pool,
// applies migrations, and hands out the repositories.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studytrack/internal/server/topics"
	"github.com/dmitrijs2005/studytrack/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Topics() topics.Repository
}
