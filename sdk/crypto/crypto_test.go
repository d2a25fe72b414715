package crypto

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/argon2"
)

func argon2Key(password string, salt []byte, p params) []byte {
	return argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, argonKeyLen)
}

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("test_password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
	if strings.Contains(hash, "test_password") {
		t.Fatal("hash must not contain the plaintext")
	}
	if _, _, _, err := decodeHash(hash); err != nil {
		t.Fatalf("expected a fresh hash to decode, got %v", err)
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("same")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if a == b {
		t.Fatal("expected two hashes of the same password to differ")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	match, err := VerifyPassword("correct-horse", hash)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if !match {
		t.Fatal("expected password to match")
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	hash, err := HashPassword("right-password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	match, err := VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if match {
		t.Fatal("expected password NOT to match")
	}
}

func TestVerifyUsesStoredParameters(t *testing.T) {
	salt := []byte("0123456789abcdef")
	p := params{memory: 8 * 1024, time: 2, threads: 1}
	hash := encodeHash(p, salt, argon2Key("legacy", salt, p))

	match, err := VerifyPassword("legacy", hash)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if !match {
		t.Fatal("expected hash with non-default parameters to verify")
	}
}

func TestVerifyInvalidHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want error
	}{
		{"garbage", "not-a-valid-hash", ErrInvalidHash},
		{"bcrypt", "$2a$10$abcdefghijklmnopqrstuv", ErrInvalidHash},
		{"bad params", "$argon2id$v=19$m=x,t=1,p=4$c2FsdA$aGFzaA", ErrInvalidHash},
		{"zero cost", "$argon2id$v=19$m=0,t=1,p=4$c2FsdA$aGFzaA", ErrInvalidHash},
		{"old version", "$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$aGFzaA", ErrIncompatibleVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyPassword("anything", tt.hash)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if _, _, _, err := decodeHash(tt.hash); err == nil {
				t.Fatal("expected decodeHash to reject")
			}
		})
	}
}
