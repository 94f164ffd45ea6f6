package service

import (
	"strings"
	"testing"
)

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := SHA256Hasher{}
	a, _ := h.Hash("password")
	b, _ := h.Hash("password")
	if a != b {
		t.Fatalf("hash not deterministic: %s vs %s", a, b)
	}
	// sha256("password")
	const want = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	if a != want {
		t.Fatalf("got %s, want %s", a, want)
	}
	if len(a) != 64 || strings.ToLower(a) != a {
		t.Fatalf("expected 64 lowercase hex chars, got %q", a)
	}
	if !h.Verify(want, "password") || h.Verify(want, "Password") {
		t.Fatalf("Verify mismatch")
	}
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := BcryptHasher{Cost: 4}
	a, err := h.Hash("password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, _ := h.Hash("password")
	if a == b {
		t.Fatalf("expected different salts")
	}
	if !h.Verify(a, "password") || h.Verify(a, "other") {
		t.Fatalf("Verify mismatch")
	}
}

func TestNewHasher(t *testing.T) {
	for name, wantErr := range map[string]bool{"": false, "sha256": false, "bcrypt": false, "md5": true} {
		_, err := NewHasher(name)
		if (err != nil) != wantErr {
			t.Fatalf("NewHasher(%q) err=%v, wantErr=%v", name, err, wantErr)
		}
	}
}
