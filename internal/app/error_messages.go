// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// stack-underflow server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of the response envelope or into log entries. Keeping
// them in one place ensures consistent wording throughout the API.
package app

// Failure messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for both an unknown username and a
	// wrong password, so the two cases cannot be told apart.
	MsgInvalidCredentials = "invalid username or password"

	// MsgUsernameTaken is returned when a registration attempt is rejected
	// because the requested username is already in use.
	MsgUsernameTaken = "username already exists"

	// MsgHashingFailed is returned when the password could not be hashed.
	MsgHashingFailed = "hashing error"

	// MsgTokenGenerationFailed is returned when an access token could not be
	// signed after a successful credential check.
	MsgTokenGenerationFailed = "token generation error"

	// MsgInvalidToken is returned for any rejected bearer token. Expired,
	// malformed, and forged tokens all share this message.
	MsgInvalidToken = "invalid token"

	// MsgQuestionNotFound is returned when a question id matches no row.
	MsgQuestionNotFound = "question not found"

	// MsgCommentNotFound is returned when a comment id matches no row.
	MsgCommentNotFound = "comment not found"

	// MsgCannotEditQuestion is returned when a user tries to update a
	// question owned by someone else.
	MsgCannotEditQuestion = "you can only edit your own questions"

	// MsgCannotDeleteQuestion is returned when a user tries to delete a
	// question owned by someone else.
	MsgCannotDeleteQuestion = "you can only delete your own questions"

	// MsgUpdateFailed is returned when an authorised update affected no row.
	MsgUpdateFailed = "update failed"

	// MsgDeleteFailed is returned when an authorised delete removed no row.
	MsgDeleteFailed = "delete failed"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned by the health endpoint when the
	// database does not answer a ping.
	MsgStorageUnavailable = "storage unavailable"
)

// Success messages.
const (
	MsgRegistrationSuccessful = "Registration successful"
	MsgLoginSuccessful        = "Login successful"
	MsgTokenIsValid           = "Token is valid"
	MsgQuestionCreated        = "Question created successfully"
	MsgQuestionsFetched       = "Success get all questions"
	MsgQuestionFetched        = "Success get question"
	MsgQuestionUpdated        = "Question updated successfully"
	MsgQuestionDeleted        = "Question deleted successfully"
	MsgCommentCreated         = "Comment created successfully"
	MsgCommentsFetched        = "Success get comments"
	MsgCommentDeleted         = "Comment deleted successfully"
	MsgOK                     = "ok"
)
