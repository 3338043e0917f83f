// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestValidateAdminKey(t *testing.T) {
	tests := []struct {
		name       string
		provided   string
		configured string
		want       error
	}{
		{"match", "s3cret", "s3cret", nil},
		{"mismatch", "guess", "s3cret", ErrInvalidAdminKey},
		{"prefix", "s3cre", "s3cret", ErrInvalidAdminKey},
		{"missing header", "", "s3cret", ErrInvalidAdminKey},
		{"not configured", "anything", "", ErrAdminDisabled},
		{"not configured and empty", "", "", ErrAdminDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.provided, tt.configured)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateAdminKey() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	h1 := HashIP("192.168.1.1", "salt")
	h2 := HashIP("192.168.1.1", "salt")
	if h1 != h2 {
		t.Error("HashIP() should be deterministic")
	}
	if len(h1) != 16 {
		t.Errorf("HashIP() length = %d, want 16", len(h1))
	}
	if HashIP("192.168.1.2", "salt") == h1 {
		t.Error("different IPs should hash differently")
	}
	if HashIP("192.168.1.1", "other") == h1 {
		t.Error("different salts should hash differently")
	}
}
