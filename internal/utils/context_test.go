// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-gift-catalog/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAuthorizationCtxKey(t *testing.T) {
	if AuthorizationCtxKey.String() != "authorization" {
		t.Errorf("expected 'authorization', got '%s'", AuthorizationCtxKey.String())
	}
}

func TestGetAuthorizationFromContext_Success(t *testing.T) {
	ctx := WithAuthorization(context.Background(), models.Authorization{MemberID: 42, Role: models.RoleAdmin})

	auth, ok := GetAuthorizationFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if auth.MemberID != 42 {
		t.Errorf("expected memberID=42, got %d", auth.MemberID)
	}
	if !auth.IsAdmin() {
		t.Errorf("expected admin role, got %s", auth.Role)
	}
}

func TestGetAuthorizationFromContext_Missing(t *testing.T) {
	auth, ok := GetAuthorizationFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if auth != (models.Authorization{}) {
		t.Errorf("expected zero authorization, got %+v", auth)
	}
}

func TestGetAuthorizationFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AuthorizationCtxKey, "ADMIN")

	_, ok := GetAuthorizationFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetMemberIDFromContext(t *testing.T) {
	ctx := WithAuthorization(context.Background(), models.Authorization{MemberID: 7, Role: models.RoleUser})

	memberID, ok := GetMemberIDFromContext(ctx)
	if !ok || memberID != 7 {
		t.Errorf("expected (7, true), got (%d, %v)", memberID, ok)
	}

	memberID, ok = GetMemberIDFromContext(context.Background())
	if ok || memberID != 0 {
		t.Errorf("expected (0, false), got (%d, %v)", memberID, ok)
	}
}
