// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the decision logic of the forum: credential checks,
// token issuance and verification, and ownership-gated mutation of
// questions. Every failure is returned as one of the sentinel kinds in
// errors.go so the request boundary can map it to a response.
package service

import (
	"context"

	"github.com/MKhiriev/stack-underflow/models"
)

// AuthService registers users, checks credentials and verifies tokens.
type AuthService interface {
	// Register creates an account. Returns ErrUsernameTaken when the
	// username is already in use and ErrHashingFailed when the password
	// could not be hashed.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login returns a signed token and the full user record.
	// An unknown username and a wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.Token, models.User, error)

	// ParseToken verifies tokenString and returns its claims, or
	// ErrInvalidToken for any malformed, forged, or expired token.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// QuestionService creates, lists and mutates questions. Update and delete
// are allowed to the owner only.
type QuestionService interface {
	CreateQuestion(ctx context.Context, question models.Question) (models.Question, error)
	GetAllQuestions(ctx context.Context) ([]models.Question, error)
	GetQuestion(ctx context.Context, id string) (models.Question, error)
	UpdateQuestion(ctx context.Context, update models.QuestionUpdate) (models.Question, error)
	DeleteQuestion(ctx context.Context, id, requestingUserID string) error
}

// CommentService manages comments. Deletion is not ownership-gated.
type CommentService interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	GetCommentsByQuestion(ctx context.Context, questionID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// AppInfoService reports build metadata and storage health.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
	CheckHealth(ctx context.Context) error
}

// AuthServiceWrapper decorates an AuthService with extra behavior.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// QuestionServiceWrapper decorates a QuestionService with extra behavior.
type QuestionServiceWrapper interface {
	Wrap(QuestionService) QuestionService
}

// CommentServiceWrapper decorates a CommentService with extra behavior.
type CommentServiceWrapper interface {
	Wrap(CommentService) CommentService
}

// PasswordHasher hashes and verifies passwords with a salted one-way function.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// Pinger reports whether the storage answers.
type Pinger interface {
	Ping(ctx context.Context) error
}
