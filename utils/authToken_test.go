package utils

import (
	"strings"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)

	token, err := GenerateSessionToken("asha1", RoleWorker)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := ValidateSessionToken(token, RoleWorker)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if claims.Username != "asha1" || claims.Role != RoleWorker {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.HasDraft() {
		t.Fatal("fresh session must not carry a draft")
	}
}

func TestSessionTokenCarriesDraft(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)

	token, err := EncodeSessionClaims(&SessionClaims{
		Username:      "asha1",
		Role:          RoleWorker,
		PatientName:   "Sita",
		PatientAge:    "30",
		PatientMobile: "9999999999",
	})
	if err != nil {
		t.Fatalf("EncodeSessionClaims: %v", err)
	}

	claims, err := ValidateSessionToken(token, RoleWorker)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if !claims.HasDraft() {
		t.Fatalf("draft lost: %+v", claims)
	}
	if claims.PatientName != "Sita" || claims.PatientAge != "30" || claims.PatientMobile != "9999999999" {
		t.Fatalf("draft fields = %+v", claims)
	}

	claims.ClearDraft()
	if claims.HasDraft() {
		t.Fatal("ClearDraft left draft fields behind")
	}
	if claims.Username != "asha1" {
		t.Fatal("ClearDraft must keep the identity")
	}
}

func TestSessionTokenRoleMismatch(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)

	token, err := GenerateSessionToken("asha1", RoleWorker)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	if _, err := ValidateSessionToken(token, RoleAdmin); err == nil {
		t.Fatal("worker token must not pass the admin check")
	}
	// No required role means any valid session passes.
	if _, err := ValidateSessionToken(token); err != nil {
		t.Fatalf("roleless validation failed: %v", err)
	}
}

func TestSessionTokenGarbageRejected(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)

	if _, err := ValidateSessionToken("v2.local.garbage", RoleWorker); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestSessionTokenWrongKeyRejected(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)
	token, err := GenerateSessionToken("asha1", RoleWorker)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	t.Setenv("SYMMETRIC_KEY", strings.Repeat("x", 32))
	if _, err := ValidateSessionToken(token, RoleWorker); err == nil {
		t.Fatal("token minted under another key accepted")
	}
}
