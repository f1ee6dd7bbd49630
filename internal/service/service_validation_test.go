package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/stack-underflow/internal/utils"
	"github.com/MKhiriev/stack-underflow/internal/validators"
	"github.com/MKhiriev/stack-underflow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn    func(ctx context.Context, creds models.Credentials) (models.Token, models.User, error)
	parseFn    func(ctx context.Context, token string) (models.Claims, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, creds)
	}
	return models.User{Username: creds.Username}, nil
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.Token, models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, creds)
	}
	return models.Token{}, models.User{Username: creds.Username}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Claims, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, token)
	}
	return models.Claims{}, nil
}

type mockQuestionService struct {
	called bool
	last   any
}

func (m *mockQuestionService) CreateQuestion(_ context.Context, q models.Question) (models.Question, error) {
	m.called, m.last = true, q
	return q, nil
}

func (m *mockQuestionService) GetAllQuestions(context.Context) ([]models.Question, error) {
	m.called = true
	return []models.Question{}, nil
}

func (m *mockQuestionService) GetQuestion(_ context.Context, id string) (models.Question, error) {
	m.called, m.last = true, id
	return models.Question{ID: id}, nil
}

func (m *mockQuestionService) UpdateQuestion(_ context.Context, u models.QuestionUpdate) (models.Question, error) {
	m.called, m.last = true, u
	return models.Question{ID: u.ID, Title: u.Title}, nil
}

func (m *mockQuestionService) DeleteQuestion(_ context.Context, id, _ string) error {
	m.called, m.last = true, id
	return nil
}

type mockCommentService struct {
	called bool
	last   any
}

func (m *mockCommentService) CreateComment(_ context.Context, c models.Comment) (models.Comment, error) {
	m.called, m.last = true, c
	return c, nil
}

func (m *mockCommentService) GetCommentsByQuestion(_ context.Context, questionID string) ([]models.Comment, error) {
	m.called, m.last = true, questionID
	return []models.Comment{{QuestionID: questionID}}, nil
}

func (m *mockCommentService) DeleteComment(_ context.Context, id string) error {
	m.called, m.last = true, id
	return nil
}

const validID = "01928f6e-7b3a-7c4d-8e5f-0a1b2c3d4e5f"

// ─────────────────────────────────────────────
// AuthValidationService
// ─────────────────────────────────────────────

func TestAuthValidationService(t *testing.T) {
	ctx := context.Background()

	t.Run("username reaches inner unchanged", func(t *testing.T) {
		inner := &mockAuthService{}
		svc := NewAuthValidationService().Wrap(inner)

		user, err := svc.Register(ctx, models.Credentials{Username: " Alice", Password: "pw1"})
		require.NoError(t, err)
		assert.Equal(t, " Alice", user.Username)
	})

	t.Run("empty password is rejected on register", func(t *testing.T) {
		inner := &mockAuthService{registerFn: func(context.Context, models.Credentials) (models.User, error) {
			t.Fatal("inner must not be called")
			return models.User{}, nil
		}}
		svc := NewAuthValidationService().Wrap(inner)

		_, err := svc.Register(ctx, models.Credentials{Username: "alice"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrEmptyPassword)
	})

	t.Run("blank username is rejected on login", func(t *testing.T) {
		svc := NewAuthValidationService().Wrap(&mockAuthService{})

		_, _, err := svc.Login(ctx, models.Credentials{Username: " ", Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("empty token is invalid", func(t *testing.T) {
		svc := NewAuthValidationService().Wrap(&mockAuthService{})

		_, err := svc.ParseToken(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

// ─────────────────────────────────────────────
// QuestionValidationService
// ─────────────────────────────────────────────

func TestQuestionValidationService(t *testing.T) {
	ctx := context.Background()
	sanitizer := utils.NewSanitizer(true)

	t.Run("create sanitizes and passes through", func(t *testing.T) {
		inner := &mockQuestionService{}
		svc := NewQuestionValidationService(sanitizer).Wrap(inner)

		q, err := svc.CreateQuestion(ctx, models.Question{
			Title:       "Why?<script>alert(1)</script>",
			Description: "  ...  ",
			UserID:      "alice-id",
		})
		require.NoError(t, err)
		assert.True(t, inner.called)
		assert.Equal(t, "Why?", q.Title)
		assert.Equal(t, "...", q.Description)
	})

	t.Run("create keeps text verbatim when sanitizing is off", func(t *testing.T) {
		inner := &mockQuestionService{}
		svc := NewQuestionValidationService(utils.NewSanitizer(false)).Wrap(inner)

		q, err := svc.CreateQuestion(ctx, models.Question{
			Title:       "Q&A: is a < b?",
			Description: `use <T any> "generics"`,
			UserID:      "alice-id",
		})
		require.NoError(t, err)
		assert.Equal(t, "Q&A: is a < b?", q.Title)
		assert.Equal(t, `use <T any> "generics"`, q.Description)
	})

	t.Run("create rejects unknown status", func(t *testing.T) {
		inner := &mockQuestionService{}
		svc := NewQuestionValidationService(sanitizer).Wrap(inner)

		_, err := svc.CreateQuestion(ctx, models.Question{Title: "t", Description: "d", Status: "PENDING", UserID: "u"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrInvalidStatus)
		assert.False(t, inner.called)
	})

	t.Run("create rejects title emptied by sanitizing", func(t *testing.T) {
		svc := NewQuestionValidationService(sanitizer).Wrap(&mockQuestionService{})

		_, err := svc.CreateQuestion(ctx, models.Question{Title: "<script>x</script>", Description: "d", UserID: "u"})
		assert.ErrorIs(t, err, validators.ErrEmptyTitle)
	})

	t.Run("get with malformed id is not found", func(t *testing.T) {
		inner := &mockQuestionService{}
		svc := NewQuestionValidationService(sanitizer).Wrap(inner)

		_, err := svc.GetQuestion(ctx, "42")
		assert.ErrorIs(t, err, ErrQuestionNotFound)
		assert.False(t, inner.called)
	})

	t.Run("update requires status", func(t *testing.T) {
		inner := &mockQuestionService{}
		svc := NewQuestionValidationService(sanitizer).Wrap(inner)

		_, err := svc.UpdateQuestion(ctx, models.QuestionUpdate{ID: validID, Title: "t", Description: "d", RequestingUserID: "u"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.False(t, inner.called)
	})

	t.Run("update passes valid input", func(t *testing.T) {
		inner := &mockQuestionService{}
		svc := NewQuestionValidationService(sanitizer).Wrap(inner)

		_, err := svc.UpdateQuestion(ctx, models.QuestionUpdate{
			ID: validID, Title: "t", Description: "d", Status: models.QuestionStatusClosed, RequestingUserID: "u",
		})
		require.NoError(t, err)
		assert.True(t, inner.called)
	})

	t.Run("delete with malformed id is invalid data", func(t *testing.T) {
		inner := &mockQuestionService{}
		svc := NewQuestionValidationService(sanitizer).Wrap(inner)

		err := svc.DeleteQuestion(ctx, "42", "u")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.False(t, inner.called)
	})
}

// ─────────────────────────────────────────────
// CommentValidationService
// ─────────────────────────────────────────────

func TestCommentValidationService(t *testing.T) {
	ctx := context.Background()
	sanitizer := utils.NewSanitizer(true)

	t.Run("create requires well-formed question id", func(t *testing.T) {
		inner := &mockCommentService{}
		svc := NewCommentValidationService(sanitizer).Wrap(inner)

		_, err := svc.CreateComment(ctx, models.Comment{Content: "c", QuestionID: "q1", UserID: "u"})
		assert.ErrorIs(t, err, validators.ErrInvalidQuestionID)
		assert.False(t, inner.called)
	})

	t.Run("create passes sanitized content", func(t *testing.T) {
		inner := &mockCommentService{}
		svc := NewCommentValidationService(sanitizer).Wrap(inner)

		c, err := svc.CreateComment(ctx, models.Comment{Content: " <b>yes</b> ", QuestionID: validID, UserID: "u"})
		require.NoError(t, err)
		assert.Equal(t, "<b>yes</b>", c.Content)
	})

	t.Run("create keeps content verbatim when sanitizing is off", func(t *testing.T) {
		inner := &mockCommentService{}
		svc := NewCommentValidationService(utils.NewSanitizer(false)).Wrap(inner)

		c, err := svc.CreateComment(ctx, models.Comment{Content: "x && y <-> z", QuestionID: validID, UserID: "u"})
		require.NoError(t, err)
		assert.Equal(t, "x && y <-> z", c.Content)
	})

	t.Run("list with malformed id is empty", func(t *testing.T) {
		inner := &mockCommentService{}
		svc := NewCommentValidationService(sanitizer).Wrap(inner)

		comments, err := svc.GetCommentsByQuestion(ctx, "nope")
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
		assert.False(t, inner.called)
	})

	t.Run("delete with malformed id is invalid data", func(t *testing.T) {
		inner := &mockCommentService{}
		svc := NewCommentValidationService(sanitizer).Wrap(inner)

		err := svc.DeleteComment(ctx, "nope")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.False(t, inner.called)
	})

	t.Run("delete with valid id reaches inner", func(t *testing.T) {
		inner := &mockCommentService{}
		svc := NewCommentValidationService(sanitizer).Wrap(inner)

		require.NoError(t, svc.DeleteComment(ctx, validID))
		assert.Equal(t, validID, inner.last)
	})
}
