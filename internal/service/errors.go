package service

import (
	"errors"
	"fmt"
)

// Failure kinds returned to the request boundary.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUsernameTaken         = errors.New("username already exists")
	ErrHashingFailed         = errors.New("hashing error")
	ErrTokenGenerationFailed = errors.New("token generation error")
	ErrInvalidToken          = errors.New("invalid token")
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("forbidden")
	ErrUpdateFailed          = errors.New("update failed")
	ErrDeleteFailed          = errors.New("delete failed")

	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Specific failures. Each one matches its kind with errors.Is.
var (
	ErrQuestionNotFound     = fmt.Errorf("question %w", ErrNotFound)
	ErrCommentNotFound      = fmt.Errorf("comment %w", ErrNotFound)
	ErrCannotEditQuestion   = fmt.Errorf("%w: you can only edit your own questions", ErrForbidden)
	ErrCannotDeleteQuestion = fmt.Errorf("%w: you can only delete your own questions", ErrForbidden)
)
