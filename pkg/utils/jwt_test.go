package utils

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken("u1", "maria@email.com", "pilgrim", "group_001", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != "u1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "u1")
	}
	if claims.Email != "maria@email.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "maria@email.com")
	}
	if claims.Role != "pilgrim" {
		t.Errorf("Role = %q, want %q", claims.Role, "pilgrim")
	}
	if claims.GroupID != "group_001" {
		t.Errorf("GroupID = %q, want %q", claims.GroupID, "group_001")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken("u1", "maria@email.com", "pilgrim", "", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted an expired token")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	SetSecret("test-secret")
	token, err := GenerateToken("u1", "maria@email.com", "admin", "", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	SetSecret("another-secret")
	defer SetSecret("test-secret")

	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	SetSecret("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ValidateToken(tok); err == nil {
			t.Errorf("ValidateToken(%q) accepted a malformed token", tok)
		}
	}
}
