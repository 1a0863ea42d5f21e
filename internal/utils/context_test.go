// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != 42 {
		t.Errorf("expected userID 42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int")
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for wrongly typed value")
	}
}

func TestGetUserEmailFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserEmailCtxKey, "alex@example.com")

	email, ok := GetUserEmailFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if email != "alex@example.com" {
		t.Errorf("expected 'alex@example.com', got %s", email)
	}
}

func TestGetUserEmailFromContext_Missing(t *testing.T) {
	if _, ok := GetUserEmailFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
