package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/stack-underflow/internal/utils"
	"github.com/MKhiriev/stack-underflow/internal/validators"
	"github.com/MKhiriev/stack-underflow/models"
)

// AuthValidationService rejects malformed credentials before they reach
// the wrapped AuthService. Usernames are passed on exactly as sent.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewForumValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, creds)
}

func (v *AuthValidationService) Login(ctx context.Context, creds models.Credentials) (models.Token, models.User, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.Token{}, models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, creds)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	if tokenString == "" {
		return models.Claims{}, ErrInvalidToken
	}

	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// QuestionValidationService validates question input, and sanitizes it when
// HTML sanitizing is enabled, before it reaches the wrapped QuestionService.
//
// Malformed ids cannot match any row: reads report them as not found,
// mutations as invalid data.
type QuestionValidationService struct {
	inner     QuestionService
	validator validators.Validator
	sanitizer *utils.Sanitizer
}

func NewQuestionValidationService(sanitizer *utils.Sanitizer) QuestionServiceWrapper {
	return &QuestionValidationService{
		validator: validators.NewForumValidator(),
		sanitizer: sanitizer,
	}
}

func (v *QuestionValidationService) CreateQuestion(ctx context.Context, question models.Question) (models.Question, error) {
	question.Title = v.sanitizer.Sanitize(question.Title)
	question.Description = v.sanitizer.Sanitize(question.Description)

	fields := []string{validators.FieldTitle, validators.FieldDescription, validators.FieldUserID}
	if question.Status != "" {
		fields = append(fields, validators.FieldStatus)
	}

	if err := v.validator.Validate(ctx, question, fields...); err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateQuestion(ctx, question)
}

func (v *QuestionValidationService) GetAllQuestions(ctx context.Context) ([]models.Question, error) {
	return v.inner.GetAllQuestions(ctx)
}

func (v *QuestionValidationService) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	if !utils.IsValidUUID(id) {
		return models.Question{}, ErrQuestionNotFound
	}

	return v.inner.GetQuestion(ctx, id)
}

func (v *QuestionValidationService) UpdateQuestion(ctx context.Context, update models.QuestionUpdate) (models.Question, error) {
	update.Title = v.sanitizer.Sanitize(update.Title)
	update.Description = v.sanitizer.Sanitize(update.Description)

	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateQuestion(ctx, update)
}

func (v *QuestionValidationService) DeleteQuestion(ctx context.Context, id, requestingUserID string) error {
	if !utils.IsValidUUID(id) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
	}
	if requestingUserID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.DeleteQuestion(ctx, id, requestingUserID)
}

func (v *QuestionValidationService) Wrap(inner QuestionService) QuestionService {
	v.inner = inner
	return v
}

// CommentValidationService validates comment input, and sanitizes it when
// HTML sanitizing is enabled, before it reaches the wrapped CommentService.
type CommentValidationService struct {
	inner     CommentService
	validator validators.Validator
	sanitizer *utils.Sanitizer
}

func NewCommentValidationService(sanitizer *utils.Sanitizer) CommentServiceWrapper {
	return &CommentValidationService{
		validator: validators.NewForumValidator(),
		sanitizer: sanitizer,
	}
}

func (v *CommentValidationService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	comment.Content = v.sanitizer.Sanitize(comment.Content)
	comment.QuestionID = strings.TrimSpace(comment.QuestionID)

	if err := v.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateComment(ctx, comment)
}

// GetCommentsByQuestion returns an empty discussion for a malformed id.
func (v *CommentValidationService) GetCommentsByQuestion(ctx context.Context, questionID string) ([]models.Comment, error) {
	if !utils.IsValidUUID(questionID) {
		return []models.Comment{}, nil
	}

	return v.inner.GetCommentsByQuestion(ctx, questionID)
}

func (v *CommentValidationService) DeleteComment(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.Comment{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteComment(ctx, id)
}

func (v *CommentValidationService) Wrap(inner CommentService) CommentService {
	v.inner = inner
	return v
}
