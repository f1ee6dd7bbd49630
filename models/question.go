// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// QuestionStatus is the free-form lifecycle marker of a question.
// Any value may follow any other; there is no enforced transition graph.
type QuestionStatus string

const (
	QuestionStatusOpen     QuestionStatus = "OPEN"
	QuestionStatusAnswered QuestionStatus = "ANSWERED"
	QuestionStatusClosed   QuestionStatus = "CLOSED"
)

// QuestionStatuses lists every accepted status value.
var QuestionStatuses = []QuestionStatus{
	QuestionStatusOpen,
	QuestionStatusAnswered,
	QuestionStatusClosed,
}

// IsValid reports whether s is one of the known statuses.
func (s QuestionStatus) IsValid() bool {
	for _, status := range QuestionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (s QuestionStatus) String() string {
	return string(s)
}

// Question is a forum question owned by the user who posted it.
type Question struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      QuestionStatus `json:"status"`

	// UserID is the owner. Only the owner may update or delete the question.
	UserID string `json:"userId"`

	// Username is a snapshot of the owner's username taken at creation time.
	// It is never synchronised with later username changes.
	Username string `json:"username"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Question model.
func (q Question) TableName() string {
	return "questions"
}

// QuestionUpdate carries a full replacement of the mutable question fields
// together with the identity of the user requesting the change.
type QuestionUpdate struct {
	ID          string
	Title       string
	Description string
	Status      QuestionStatus

	// RequestingUserID is compared against the stored owner before the write.
	RequestingUserID string
}
