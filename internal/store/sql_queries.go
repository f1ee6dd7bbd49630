package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/stack-underflow/models"
)

var (
	userColumns     = []string{"id", "username", "password", "created_at", "updated_at"}
	questionColumns = []string{"id", "title", "description", "status", "user_id", "username", "created_at", "updated_at"}
	commentColumns  = []string{"id", "content", "question_id", "user_id", "username", "created_at", "updated_at"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt))
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		Limit(1))
}

func buildCreateQuestionQuery(b sq.StatementBuilderType, q models.Question) (string, []any, error) {
	return toSQL(b.Insert(q.TableName()).
		Columns(questionColumns...).
		Values(q.ID, q.Title, q.Description, q.Status.String(), q.UserID, q.Username, q.CreatedAt, q.UpdatedAt))
}

// buildGetAllQuestionsQuery orders newest first; ids are time-ordered
// UUIDs, so they break ties between equal timestamps.
func buildGetAllQuestionsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(b.Select(questionColumns...).
		From(models.Question{}.TableName()).
		OrderBy("created_at DESC", "id DESC"))
}

func buildGetQuestionByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return toSQL(b.Select(questionColumns...).
		From(models.Question{}.TableName()).
		Where(sq.Eq{"id": id}))
}

// buildUpdateQuestionQuery overwrites every mutable field of the row owned
// by q.UserID. The ownership condition makes the write atomic with respect
// to the owner check.
func buildUpdateQuestionQuery(b sq.StatementBuilderType, q models.Question) (string, []any, error) {
	return toSQL(b.Update(q.TableName()).
		Set("title", q.Title).
		Set("description", q.Description).
		Set("status", q.Status.String()).
		Set("updated_at", q.UpdatedAt).
		Where(sq.And{sq.Eq{"id": q.ID}, sq.Eq{"user_id": q.UserID}}))
}

func buildDeleteQuestionQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return toSQL(b.Delete(models.Question{}.TableName()).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"user_id": userID}}))
}

func buildCreateCommentQuery(b sq.StatementBuilderType, c models.Comment) (string, []any, error) {
	return toSQL(b.Insert(c.TableName()).
		Columns(commentColumns...).
		Values(c.ID, c.Content, c.QuestionID, c.UserID, c.Username, c.CreatedAt, c.UpdatedAt))
}

// buildGetCommentsByQuestionIDQuery orders oldest first so a discussion
// reads chronologically.
func buildGetCommentsByQuestionIDQuery(b sq.StatementBuilderType, questionID string) (string, []any, error) {
	return toSQL(b.Select(commentColumns...).
		From(models.Comment{}.TableName()).
		Where(sq.Eq{"question_id": questionID}).
		OrderBy("created_at ASC", "id ASC"))
}

func buildDeleteCommentQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return toSQL(b.Delete(models.Comment{}.TableName()).
		Where(sq.Eq{"id": id}))
}

func toSQL(s sq.Sqlizer) (string, []any, error) {
	query, args, err := s.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
