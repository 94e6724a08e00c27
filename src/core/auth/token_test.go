package auth

import "testing"

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret")

	token, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	username, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if username != "alice" {
		t.Errorf("Verify returned username %q, want %q", username, "alice")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	tokens := NewTokenService("test-secret")

	token, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := tokens.Verify(tampered); err == nil {
		t.Error("Verify accepted a tampered token")
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	token, err := NewTokenService("other-secret").Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := NewTokenService("test-secret").Verify(token); err == nil {
		t.Error("Verify accepted a token signed with a different secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret")

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Verify(raw); err == nil {
			t.Errorf("Verify accepted %q", raw)
		}
	}
}
