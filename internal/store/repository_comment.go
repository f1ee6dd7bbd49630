package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/utils"
	"github.com/MKhiriev/stack-underflow/models"
)

// commentRepository is the SQL-backed implementation of [CommentRepository].
type commentRepository struct {
	db          *DB
	idGenerator IDGenerator
	logger      *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:          db,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// CreateComment inserts comment with a fresh ID and timestamps.
// QuestionID is stored as given; the table has no foreign key on it.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	comment.ID = r.idGenerator.Generate()
	comment.CreatedAt = now()
	comment.UpdatedAt = comment.CreatedAt

	query, args, err := buildCreateCommentQuery(r.db.builder(), comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("failed to build query")
		return models.Comment{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*commentRepository.CreateComment").
			Str("question_id", comment.QuestionID).
			Str("classification", r.db.classify(err).String()).
			Msg("error inserting comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return comment, nil
}

// GetCommentsByQuestionID returns the question's comments ordered by
// creation time, oldest first.
func (r *commentRepository) GetCommentsByQuestionID(ctx context.Context, questionID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCommentsByQuestionIDQuery(r.db.builder(), questionID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetCommentsByQuestionID").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetCommentsByQuestionID").Str("question_id", questionID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, 50)
	for rows.Next() {
		var c models.Comment
		scanErr := rows.Scan(
			&c.ID,
			&c.Content,
			&c.QuestionID,
			&c.UserID,
			&c.Username,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*commentRepository.GetCommentsByQuestionID").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		comments = append(comments, c)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.GetCommentsByQuestionID").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// DeleteComment removes the comment with the given id regardless of who
// wrote it. Returns [ErrCommentNotFound] when no row matches.
func (r *commentRepository) DeleteComment(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCommentQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("failed to build query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Str("comment_id", id).Msg("error deleting comment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
