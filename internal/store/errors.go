package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when inserting a user violates the
	// unique constraint on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the requested username.
	ErrUserNotFound = errors.New("user was not found")

	// ErrQuestionNotFound is returned when no question matches the requested id.
	ErrQuestionNotFound = errors.New("question was not found")

	// ErrCommentNotFound is returned when deleting a comment id that matches
	// no row.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrNoRowsAffected is returned when a conditional UPDATE or DELETE
	// completes without error but touches no row, e.g. because the row was
	// removed concurrently or is owned by someone else.
	ErrNoRowsAffected = errors.New("no rows affected")

	// ErrUnsupportedDSN is returned when the configured DSN does not select
	// a known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrStorageNotInitialized is returned by [Storages.Ping] when no
	// connection pool was attached.
	ErrStorageNotInitialized = errors.New("storage is not initialized")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
