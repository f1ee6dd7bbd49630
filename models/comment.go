// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Comment is a reply attached to a question.
type Comment struct {
	ID      string `json:"id"`
	Content string `json:"content"`

	// QuestionID references the question the comment belongs to.
	// The reference is not checked when the comment is written.
	QuestionID string `json:"questionId"`

	UserID string `json:"userId"`

	// Username is a snapshot of the author's username taken at creation time.
	Username string `json:"username"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
