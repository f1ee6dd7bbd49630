// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the request body of register and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateQuestionRequest is the request body of question creation.
// Status is optional and defaults to OPEN.
type CreateQuestionRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      *QuestionStatus `json:"status,omitempty"`
}

// UpdateQuestionRequest is the request body of question update.
// All fields are applied; there are no partial updates.
type UpdateQuestionRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      QuestionStatus `json:"status"`
}

// CreateCommentRequest is the request body of comment creation.
type CreateCommentRequest struct {
	Content    string `json:"content"`
	QuestionID string `json:"questionId"`
}
