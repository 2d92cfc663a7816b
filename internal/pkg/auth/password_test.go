package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("salasana")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "salasana" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "salasana") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestCheckPasswordAgainstInvalidHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("invalid hash accepted")
	}
}
