package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("Peregrina7")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if digest == "Peregrina7" {
		t.Fatal("digest equals the plaintext")
	}
	if !CheckPassword("Peregrina7", digest) {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword("wrong-password", digest) {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, err := HashPassword("password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	b, err := HashPassword("password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if a == b {
		t.Error("two hashes of the same password are identical, salt missing")
	}
	if !CheckPassword("password", a) || !CheckPassword("password", b) {
		t.Error("CheckPassword() failed against a freshly produced digest")
	}
}

// Digests produced at a lower cost parameter stay verifiable: the cost
// is encoded in the digest itself.
func TestCheckPassword_AcceptsLowerCostDigest(t *testing.T) {
	digest, err := bcrypt.GenerateFromPassword([]byte("Peregrina7"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword() error = %v", err)
	}

	if !CheckPassword("Peregrina7", string(digest)) {
		t.Error("CheckPassword() rejected a valid low-cost digest")
	}
	if CheckPassword("wrong-password", string(digest)) {
		t.Error("CheckPassword() accepted a wrong password against a low-cost digest")
	}
}
