package domain_test

import (
	"testing"

	"projectbrain/internal/modules/auth/domain"
)

func TestGateAllowsOnlyExactEmail(t *testing.T) {
	t.Parallel()
	gate := domain.NewGate("testingcheckuser1234@gmail.com")

	if !gate.Allows("testingcheckuser1234@gmail.com") {
		t.Fatalf("exact email must be allowed")
	}
	for _, email := range []string{
		"",
		"TestingCheckUser1234@gmail.com",
		" testingcheckuser1234@gmail.com",
		"testingcheckuser1234@gmail.com ",
		"testingcheckuser1234@gmail.co",
		"someone@example.com",
	} {
		if gate.Allows(email) {
			t.Fatalf("email %q must be rejected", email)
		}
	}
}

func TestEmptyGateRejectsEverything(t *testing.T) {
	t.Parallel()
	if domain.NewGate("").Allows("") {
		t.Fatalf("an unconfigured gate must not admit the empty string")
	}
}
