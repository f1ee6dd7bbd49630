package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/utils"
	"github.com/MKhiriev/stack-underflow/models"
)

// questionRepository is the SQL-backed implementation of [QuestionRepository].
type questionRepository struct {
	db          *DB
	idGenerator IDGenerator
	logger      *logger.Logger
}

// NewQuestionRepository constructs a [QuestionRepository] backed by the
// provided database connection and logger.
func NewQuestionRepository(db *DB, logger *logger.Logger) QuestionRepository {
	logger.Debug().Msg("creating question repository")
	return &questionRepository{
		db:          db,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// CreateQuestion inserts question with a fresh ID and timestamps. The
// username snapshot is written as given and never touched again.
func (r *questionRepository) CreateQuestion(ctx context.Context, question models.Question) (models.Question, error) {
	log := logger.FromContext(ctx)

	question.ID = r.idGenerator.Generate()
	question.CreatedAt = now()
	question.UpdatedAt = question.CreatedAt

	query, args, err := buildCreateQuestionQuery(r.db.builder(), question)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.CreateQuestion").Msg("failed to build query")
		return models.Question{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*questionRepository.CreateQuestion").
			Str("user_id", question.UserID).
			Str("classification", r.db.classify(err).String()).
			Msg("error inserting question")
		return models.Question{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return question, nil
}

// GetAllQuestions returns every question ordered by creation time, newest
// first. An empty table yields an empty, non-nil slice.
func (r *questionRepository) GetAllQuestions(ctx context.Context) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllQuestionsQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.GetAllQuestions").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.GetAllQuestions").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0, 50)
	for rows.Next() {
		question, scanErr := scanQuestion(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*questionRepository.GetAllQuestions").Msg("failed to scan question row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		questions = append(questions, question)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*questionRepository.GetAllQuestions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return questions, nil
}

// GetQuestionByID returns [ErrQuestionNotFound] when no row matches id.
func (r *questionRepository) GetQuestionByID(ctx context.Context, id string) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetQuestionByIDQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.GetQuestionByID").Msg("failed to build query")
		return models.Question{}, err
	}

	question, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.GetQuestionByID").Str("question_id", id).Msg("failed to scan question row")
		return models.Question{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return question, nil
}

// UpdateQuestion overwrites title, description, and status of the row
// matching question.ID and question.UserID and refreshes updated_at.
// The returned question carries the new UpdatedAt; the other fields are
// echoed from the argument.
func (r *questionRepository) UpdateQuestion(ctx context.Context, question models.Question) (models.Question, error) {
	log := logger.FromContext(ctx)

	question.UpdatedAt = now()

	query, args, err := buildUpdateQuestionQuery(r.db.builder(), question)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.UpdateQuestion").Msg("failed to build query")
		return models.Question{}, err
	}

	if err = r.execAffectingOne(ctx, "*questionRepository.UpdateQuestion", query, args...); err != nil {
		return models.Question{}, err
	}

	return question, nil
}

// DeleteQuestion removes the row matching id and userID.
// Comments of the question are left in place.
func (r *questionRepository) DeleteQuestion(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuestionQuery(r.db.builder(), id, userID)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.DeleteQuestion").Msg("failed to build query")
		return err
	}

	return r.execAffectingOne(ctx, "*questionRepository.DeleteQuestion", query, args...)
}

// execAffectingOne runs a conditional DML statement and reports
// [ErrNoRowsAffected] when it matched nothing.
func (r *questionRepository) execAffectingOne(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", funcName).Msg("statement affected no rows")
		return ErrNoRowsAffected
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (models.Question, error) {
	var q models.Question
	err := row.Scan(
		&q.ID,
		&q.Title,
		&q.Description,
		&q.Status,
		&q.UserID,
		&q.Username,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	return q, err
}
