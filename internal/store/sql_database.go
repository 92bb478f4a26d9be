package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/utils"
	"github.com/MKhiriev/fin360/migrations"
)

// ids issues row identifiers (UUIDv7, roughly ordered by insertion time).
var ids = utils.NewUUIDGenerator()

// DB is an open SQL connection together with what the repositories need to
// talk to its dialect.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies pending migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the placeholder
// format of the dialect: $1 for Postgres, ? for SQLite.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
