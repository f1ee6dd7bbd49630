package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stack-underflow/internal/config"
	"github.com/MKhiriev/stack-underflow/internal/logger"
)

// Storages bundles the repositories sharing one connection pool.
type Storages struct {
	UserRepository     UserRepository
	QuestionRepository QuestionRepository
	CommentRepository  CommentRepository

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations, and builds every repository on top of the pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		logger.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}
	logger.Info().Str("dialect", string(db.Dialect())).Msg("migrations applied")

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds every repository on top of an open pool.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		QuestionRepository: NewQuestionRepository(db, logger),
		CommentRepository:  NewCommentRepository(db, logger),
		db:                 db,
	}
}

// Ping verifies the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return ErrStorageNotInitialized
	}
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
