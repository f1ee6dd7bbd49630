package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/stack-underflow/internal/config"
	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/migrations"
)

// DB wraps the shared connection pool together with the dialect-specific
// pieces repositories need: the placeholder style for generated SQL and the
// driver error classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.DSN:
//   - postgres:// and postgresql:// use pgx;
//   - sqlite:// and file: use go-sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Msg("unsupported database DSN")
		return nil, ErrUnsupportedDSN
	}
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect reports which database the pool is connected to.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// classify returns the classification of err, treating a missing
// classifier as [Unclassified].
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

// now returns the timestamp written into created_at/updated_at columns.
// Both dialects store it in UTC.
func now() time.Time {
	return time.Now().UTC()
}

func pingDB(ctx context.Context, conn *sql.DB, funcName string, log *logger.Logger) error {
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", funcName).Msg("error connecting database (ping)")
		return fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", funcName).Msg("connected to database successfully")
	return nil
}
