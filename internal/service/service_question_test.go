package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/mock"
	"github.com/MKhiriev/stack-underflow/internal/store"
	"github.com/MKhiriev/stack-underflow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestQuestionService(t *testing.T) (QuestionService, *mock.MockQuestionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockQuestionRepository(ctrl)
	return NewQuestionService(repo, logger.Nop()), repo
}

func storedQuestion() models.Question {
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	return models.Question{
		ID:          "q-1",
		Title:       "Why?",
		Description: "...",
		Status:      models.QuestionStatusOpen,
		UserID:      "alice-id",
		Username:    "alice",
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestQuestionService_CreateQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("missing status defaults to open", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)

		repo.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q models.Question) (models.Question, error) {
				assert.Equal(t, models.QuestionStatusOpen, q.Status)
				q.ID = "q-1"
				return q, nil
			})

		q, err := svc.CreateQuestion(ctx, models.Question{Title: "Why?", Description: "...", UserID: "alice-id", Username: "alice"})
		require.NoError(t, err)
		assert.Equal(t, "q-1", q.ID)
		assert.Equal(t, "alice", q.Username)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)

		repo.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q models.Question) (models.Question, error) {
				return q, nil
			})

		q, err := svc.CreateQuestion(ctx, models.Question{Title: "t", Description: "d", Status: models.QuestionStatusAnswered})
		require.NoError(t, err)
		assert.Equal(t, models.QuestionStatusAnswered, q.Status)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)

		repo.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).Return(models.Question{}, store.ErrExecutingStatement)

		_, err := svc.CreateQuestion(ctx, models.Question{Title: "t", Description: "d"})
		assert.ErrorIs(t, err, store.ErrExecutingStatement)
	})
}

func TestQuestionService_GetQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)
		repo.EXPECT().GetQuestionByID(gomock.Any(), "q-1").Return(storedQuestion(), nil)

		q, err := svc.GetQuestion(ctx, "q-1")
		require.NoError(t, err)
		assert.Equal(t, storedQuestion(), q)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)
		repo.EXPECT().GetQuestionByID(gomock.Any(), "q-x").Return(models.Question{}, store.ErrQuestionNotFound)

		_, err := svc.GetQuestion(ctx, "q-x")
		assert.ErrorIs(t, err, ErrQuestionNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQuestionService_GetAllQuestions(t *testing.T) {
	svc, repo := newTestQuestionService(t)

	newer := storedQuestion()
	newer.ID = "q-2"
	repo.EXPECT().GetAllQuestions(gomock.Any()).Return([]models.Question{newer, storedQuestion()}, nil)

	questions, err := svc.GetAllQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "q-2", questions[0].ID)
}

func TestQuestionService_UpdateQuestion(t *testing.T) {
	ctx := context.Background()
	update := models.QuestionUpdate{
		ID:               "q-1",
		Title:            "Why not?",
		Description:      "edited",
		Status:           models.QuestionStatusClosed,
		RequestingUserID: "alice-id",
	}

	t.Run("owner updates all fields", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)
		updatedAt := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

		repo.EXPECT().GetQuestionByID(gomock.Any(), "q-1").Return(storedQuestion(), nil)
		repo.EXPECT().UpdateQuestion(gomock.Any(), models.Question{
			ID:          "q-1",
			Title:       "Why not?",
			Description: "edited",
			Status:      models.QuestionStatusClosed,
			UserID:      "alice-id",
		}).DoAndReturn(func(_ context.Context, q models.Question) (models.Question, error) {
			q.UpdatedAt = updatedAt
			return q, nil
		})

		q, err := svc.UpdateQuestion(ctx, update)
		require.NoError(t, err)
		assert.Equal(t, "Why not?", q.Title)
		assert.Equal(t, "edited", q.Description)
		assert.Equal(t, models.QuestionStatusClosed, q.Status)
		assert.Equal(t, "alice", q.Username)
		assert.Equal(t, storedQuestion().CreatedAt, q.CreatedAt)
		assert.Equal(t, updatedAt, q.UpdatedAt)
	})

	t.Run("non-owner is forbidden and nothing is written", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)

		repo.EXPECT().GetQuestionByID(gomock.Any(), "q-1").Return(storedQuestion(), nil)
		repo.EXPECT().UpdateQuestion(gomock.Any(), gomock.Any()).Times(0)

		bobUpdate := update
		bobUpdate.RequestingUserID = "bob-id"
		_, err := svc.UpdateQuestion(ctx, bobUpdate)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.ErrorIs(t, err, ErrCannotEditQuestion)
	})

	t.Run("missing question", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)

		repo.EXPECT().GetQuestionByID(gomock.Any(), "q-1").Return(models.Question{}, store.ErrQuestionNotFound)

		_, err := svc.UpdateQuestion(ctx, update)
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})

	t.Run("row vanished before write", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)

		repo.EXPECT().GetQuestionByID(gomock.Any(), "q-1").Return(storedQuestion(), nil)
		repo.EXPECT().UpdateQuestion(gomock.Any(), gomock.Any()).Return(models.Question{}, store.ErrNoRowsAffected)

		_, err := svc.UpdateQuestion(ctx, update)
		assert.ErrorIs(t, err, ErrUpdateFailed)
	})
}

func TestQuestionService_DeleteQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)

		repo.EXPECT().GetQuestionByID(gomock.Any(), "q-1").Return(storedQuestion(), nil)
		repo.EXPECT().DeleteQuestion(gomock.Any(), "q-1", "alice-id").Return(nil)

		assert.NoError(t, svc.DeleteQuestion(ctx, "q-1", "alice-id"))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)

		repo.EXPECT().GetQuestionByID(gomock.Any(), "q-1").Return(storedQuestion(), nil)

		err := svc.DeleteQuestion(ctx, "q-1", "bob-id")
		assert.ErrorIs(t, err, ErrCannotDeleteQuestion)
	})

	t.Run("second delete never succeeds", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)

		gomock.InOrder(
			repo.EXPECT().GetQuestionByID(gomock.Any(), "q-1").Return(storedQuestion(), nil),
			repo.EXPECT().DeleteQuestion(gomock.Any(), "q-1", "alice-id").Return(nil),
			repo.EXPECT().GetQuestionByID(gomock.Any(), "q-1").Return(models.Question{}, store.ErrQuestionNotFound),
		)

		require.NoError(t, svc.DeleteQuestion(ctx, "q-1", "alice-id"))
		err := svc.DeleteQuestion(ctx, "q-1", "alice-id")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nothing removed", func(t *testing.T) {
		svc, repo := newTestQuestionService(t)

		repo.EXPECT().GetQuestionByID(gomock.Any(), "q-1").Return(storedQuestion(), nil)
		repo.EXPECT().DeleteQuestion(gomock.Any(), "q-1", "alice-id").Return(store.ErrNoRowsAffected)

		err := svc.DeleteQuestion(ctx, "q-1", "alice-id")
		assert.ErrorIs(t, err, ErrDeleteFailed)
	})
}
