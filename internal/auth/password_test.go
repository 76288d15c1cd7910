package auth

import (
	"errors"
	"testing"
)

func TestHashPasswordPolicy(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "empty password is rejected", raw: "", wantErr: ErrInvalidPassword},
		{name: "two characters is rejected", raw: "ab", wantErr: ErrInvalidPassword},
		{name: "three characters passes the minimum", raw: "abc", wantErr: nil},
		{name: "regular password is accepted", raw: "teste123", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("HashPassword() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && hash == "" {
				t.Errorf("HashPassword() returned an empty hash")
			}
			if tt.wantErr != nil && hash != "" {
				t.Errorf("HashPassword() returned a hash alongside an error")
			}
		})
	}
}

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	raw := "sekret"
	hash, err := HashPassword(raw)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == raw {
		t.Fatalf("hash equals the raw password")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("sekret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !VerifyPassword("sekret", hash) {
		t.Errorf("VerifyPassword() rejected the original password")
	}
	if VerifyPassword("sekres", hash) {
		t.Errorf("VerifyPassword() accepted a wrong password")
	}
	if VerifyPassword("", hash) {
		t.Errorf("VerifyPassword() accepted an empty password")
	}
	if VerifyPassword("sekret", "not-a-hash") {
		t.Errorf("VerifyPassword() accepted a garbage hash")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("sekret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("sekret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if first == second {
		t.Errorf("two hashes of the same password are identical, salting is broken")
	}
}
