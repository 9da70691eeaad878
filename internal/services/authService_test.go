package services

import (
	"strings"
	"testing"

	"taskboard/internal/models"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	if hash == "p1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if !VerifyPassword("p1", hash) {
		t.Fatal("correct password must verify")
	}
	if VerifyPassword("p2", hash) {
		t.Fatal("wrong password must not verify")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, _ := HashPassword("p1")
	h2, _ := HashPassword("p1")
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(models.RoleAdmin) || !ValidRole(models.RoleMember) {
		t.Fatal("roles 1 and 2 must be valid")
	}
	for _, role := range []int{0, 3, -1, 99} {
		if ValidRole(role) {
			t.Fatalf("role %d must be invalid", role)
		}
	}
}

func TestDuplicateUsernameMessageNamesTheField(t *testing.T) {
	if !strings.Contains(ErrUsernameTaken.Error(), "nombre de usuario") {
		t.Fatalf("message should mention the username field, got %q", ErrUsernameTaken.Error())
	}
	if !strings.Contains(ErrEmailTaken.Error(), "correo") {
		t.Fatalf("message should mention the email field, got %q", ErrEmailTaken.Error())
	}
}
