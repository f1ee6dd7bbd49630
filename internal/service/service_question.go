package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/store"
	"github.com/MKhiriev/stack-underflow/models"
)

type questionService struct {
	questionRepository store.QuestionRepository
	logger             *logger.Logger
}

func NewQuestionService(questionRepository store.QuestionRepository, logger *logger.Logger) QuestionService {
	return &questionService{
		questionRepository: questionRepository,
		logger:             logger,
	}
}

// CreateQuestion stores question on behalf of question.UserID.
// A missing status defaults to OPEN.
func (s *questionService) CreateQuestion(ctx context.Context, question models.Question) (models.Question, error) {
	log := logger.FromContext(ctx)

	if question.Status == "" {
		question.Status = models.QuestionStatusOpen
	}

	created, err := s.questionRepository.CreateQuestion(ctx, question)
	if err != nil {
		log.Err(err).Str("func", "*questionService.CreateQuestion").Str("user_id", question.UserID).Msg("question creation failed")
		return models.Question{}, fmt.Errorf("question creation failed: %w", err)
	}

	return created, nil
}

// GetAllQuestions returns every question, newest first.
func (s *questionService) GetAllQuestions(ctx context.Context) ([]models.Question, error) {
	questions, err := s.questionRepository.GetAllQuestions(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*questionService.GetAllQuestions").Msg("listing questions failed")
		return nil, fmt.Errorf("listing questions failed: %w", err)
	}

	return questions, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	question, err := s.questionRepository.GetQuestionByID(ctx, id)
	if errors.Is(err, store.ErrQuestionNotFound) {
		return models.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*questionService.GetQuestion").Str("question_id", id).Msg("question lookup failed")
		return models.Question{}, fmt.Errorf("question lookup failed: %w", err)
	}

	return question, nil
}

// UpdateQuestion overwrites title, description and status of a question
// owned by update.RequestingUserID.
//
// The owner is checked on the loaded row and again by the conditional
// write, so a question deleted or re-owned in between yields ErrUpdateFailed.
func (s *questionService) UpdateQuestion(ctx context.Context, update models.QuestionUpdate) (models.Question, error) {
	log := logger.FromContext(ctx)

	existing, err := s.questionRepository.GetQuestionByID(ctx, update.ID)
	if errors.Is(err, store.ErrQuestionNotFound) {
		return models.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*questionService.UpdateQuestion").Str("question_id", update.ID).Msg("question lookup failed")
		return models.Question{}, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	if existing.UserID != update.RequestingUserID {
		log.Warn().
			Str("question_id", update.ID).
			Str("owner_id", existing.UserID).
			Str("user_id", update.RequestingUserID).
			Msg("attempt to edit a foreign question")
		return models.Question{}, ErrCannotEditQuestion
	}

	updated, err := s.questionRepository.UpdateQuestion(ctx, models.Question{
		ID:          update.ID,
		Title:       update.Title,
		Description: update.Description,
		Status:      update.Status,
		UserID:      update.RequestingUserID,
	})
	if err != nil {
		log.Err(err).Str("func", "*questionService.UpdateQuestion").Str("question_id", update.ID).Msg("question update failed")
		return models.Question{}, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	existing.Title = updated.Title
	existing.Description = updated.Description
	existing.Status = updated.Status
	existing.UpdatedAt = updated.UpdatedAt

	return existing, nil
}

// DeleteQuestion removes a question owned by requestingUserID. Its
// comments are kept.
func (s *questionService) DeleteQuestion(ctx context.Context, id, requestingUserID string) error {
	log := logger.FromContext(ctx)

	existing, err := s.questionRepository.GetQuestionByID(ctx, id)
	if errors.Is(err, store.ErrQuestionNotFound) {
		return ErrQuestionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*questionService.DeleteQuestion").Str("question_id", id).Msg("question lookup failed")
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	if existing.UserID != requestingUserID {
		log.Warn().
			Str("question_id", id).
			Str("owner_id", existing.UserID).
			Str("user_id", requestingUserID).
			Msg("attempt to delete a foreign question")
		return ErrCannotDeleteQuestion
	}

	if err = s.questionRepository.DeleteQuestion(ctx, id, requestingUserID); err != nil {
		log.Err(err).Str("func", "*questionService.DeleteQuestion").Str("question_id", id).Msg("question deletion failed")
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	return nil
}
