package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrUsernameTooLong   = errors.New("username is too long")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrEmptyDescription  = errors.New("description is required")
	ErrInvalidStatus     = errors.New("invalid question status")
	ErrEmptyContent      = errors.New("content is required")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidQuestionID = errors.New("invalid question id")
)
