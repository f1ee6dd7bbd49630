// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionStatus_IsValid(t *testing.T) {
	tests := []struct {
		status QuestionStatus
		want   bool
	}{
		{QuestionStatusOpen, true},
		{QuestionStatusAnswered, true},
		{QuestionStatusClosed, true},
		{"open", false},
		{"", false},
		{"RESOLVED", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestUser_PasswordHashIsNotSerialised(t *testing.T) {
	u := User{ID: "u-1", Username: "alice", PasswordHash: "$2a$10$secret"}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "password")
	assert.Contains(t, string(b), `"username":"alice"`)
}

func TestEnvelope_NilDataIsNull(t *testing.T) {
	b, err := json.Marshal(Envelope{Success: false, Message: "question not found"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":false,"message":"question not found","data":null}`, string(b))
}

func TestClaims_Accessors(t *testing.T) {
	exp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Username: "alice",
	}

	assert.Equal(t, "user-42", c.UserID())
	assert.True(t, exp.Equal(c.Expiry()))
	assert.True(t, Claims{}.Expiry().IsZero())
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}
