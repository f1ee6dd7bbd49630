// Package store implements the relational persistence layer of the forum:
// users, questions, and comments stored in PostgreSQL or SQLite.
//
// Repositories issue one statement per call and never open transactions;
// read-modify-write sequences are composed by the service layer.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/stack-underflow/models"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned ID and
	// timestamps. Returns ErrUsernameAlreadyExists on a duplicate username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername performs a case-sensitive exact lookup.
	// Returns ErrUserNotFound when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// QuestionRepository persists questions.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question models.Question) (models.Question, error)

	// GetAllQuestions returns every question, newest first.
	GetAllQuestions(ctx context.Context) ([]models.Question, error)

	// GetQuestionByID returns ErrQuestionNotFound when no row matches.
	GetQuestionByID(ctx context.Context, id string) (models.Question, error)

	// UpdateQuestion overwrites title, description, and status of the row
	// matching both question.ID and question.UserID.
	// Returns ErrNoRowsAffected when no such row exists.
	UpdateQuestion(ctx context.Context, question models.Question) (models.Question, error)

	// DeleteQuestion removes the row matching both id and userID.
	// Returns ErrNoRowsAffected when no such row exists.
	DeleteQuestion(ctx context.Context, id, userID string) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// GetCommentsByQuestionID returns the question's comments, oldest first.
	GetCommentsByQuestionID(ctx context.Context, questionID string) ([]models.Comment, error)

	// DeleteComment returns ErrCommentNotFound when no row matches id.
	DeleteComment(ctx context.Context, id string) error
}

// IDGenerator produces identifiers for new rows.
type IDGenerator interface {
	Generate() string
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
