// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/stack-underflow/internal/utils"
	"github.com/MKhiriev/stack-underflow/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldUserID      = "user_id"
	FieldContent     = "content"
	FieldQuestionID  = "question_id"
)

const (
	// MaxUsernameLength is counted in runes after trimming.
	MaxUsernameLength = 50
	// MaxTitleLength is counted in runes.
	MaxTitleLength = 500
)

// ForumValidator implements Validator for credentials, questions, question
// updates and comments. Both value and pointer forms are accepted.
type ForumValidator struct {
}

func NewForumValidator() Validator {
	return &ForumValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields, every
// field of the type is checked.
func (v *ForumValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Question:
		return v.validateQuestion(value, fields...)
	case *models.Question:
		return v.validateQuestion(*value, fields...)

	case models.QuestionUpdate:
		return v.validateQuestionUpdate(value, fields...)
	case *models.QuestionUpdate:
		return v.validateQuestionUpdate(*value, fields...)

	case models.Comment:
		return v.validateComment(value, fields...)
	case *models.Comment:
		return v.validateComment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ForumValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			username := strings.TrimSpace(creds.Username)
			if username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ForumValidator) validateQuestion(question models.Question, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldStatus, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsValidUUID(question.ID) {
				return ErrInvalidID
			}
		case FieldTitle:
			if err := validateTitle(question.Title); err != nil {
				return err
			}
		case FieldDescription:
			if strings.TrimSpace(question.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldStatus:
			if !question.Status.IsValid() {
				return ErrInvalidStatus
			}
		case FieldUserID:
			if question.UserID == "" {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ForumValidator) validateQuestionUpdate(update models.QuestionUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldDescription, FieldStatus, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsValidUUID(update.ID) {
				return ErrInvalidID
			}
		case FieldTitle:
			if err := validateTitle(update.Title); err != nil {
				return err
			}
		case FieldDescription:
			if strings.TrimSpace(update.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldStatus:
			// status is mandatory on update, so an empty value fails here too
			if !update.Status.IsValid() {
				return ErrInvalidStatus
			}
		case FieldUserID:
			if update.RequestingUserID == "" {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ForumValidator) validateComment(comment models.Comment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldQuestionID, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsValidUUID(comment.ID) {
				return ErrInvalidID
			}
		case FieldContent:
			if strings.TrimSpace(comment.Content) == "" {
				return ErrEmptyContent
			}
		case FieldQuestionID:
			if !utils.IsValidUUID(comment.QuestionID) {
				return ErrInvalidQuestionID
			}
		case FieldUserID:
			if comment.UserID == "" {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
