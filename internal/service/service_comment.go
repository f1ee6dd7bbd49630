package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/store"
	"github.com/MKhiriev/stack-underflow/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	logger            *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

// CreateComment stores comment without checking that its question exists.
func (s *commentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	created, err := s.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*commentService.CreateComment").
			Str("question_id", comment.QuestionID).
			Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}

	return created, nil
}

// GetCommentsByQuestion returns the discussion of a question, oldest first.
func (s *commentService) GetCommentsByQuestion(ctx context.Context, questionID string) ([]models.Comment, error) {
	comments, err := s.commentRepository.GetCommentsByQuestionID(ctx, questionID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*commentService.GetCommentsByQuestion").
			Str("question_id", questionID).
			Msg("listing comments failed")
		return nil, fmt.Errorf("listing comments failed: %w", err)
	}

	return comments, nil
}

// DeleteComment removes a comment by id. Any caller may delete any comment.
func (s *commentService) DeleteComment(ctx context.Context, id string) error {
	err := s.commentRepository.DeleteComment(ctx, id)
	if errors.Is(err, store.ErrCommentNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.DeleteComment").Str("comment_id", id).Msg("comment deletion failed")
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	return nil
}
