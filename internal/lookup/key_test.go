package lookup

import (
	"encoding/hex"
	"testing"
)

func TestNewKeyFormat(t *testing.T) {
	key, err := NewKey()
	if err != nil {
		t.Fatalf("NewKey() error = %v", err)
	}
	if len(key) != 64 {
		t.Errorf("len(NewKey()) = %d, want 64", len(key))
	}
	if _, err := hex.DecodeString(key); err != nil {
		t.Errorf("NewKey() = %q, not hex: %v", key, err)
	}
}

func TestNewKeyUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		key, err := NewKey()
		if err != nil {
			t.Fatalf("NewKey() error = %v", err)
		}
		if _, dup := seen[key]; dup {
			t.Fatalf("NewKey() returned duplicate %q after %d keys", key, i)
		}
		seen[key] = struct{}{}
	}
}

func TestRandomStringAlphabet(t *testing.T) {
	s, err := randomString(keySeedLength)
	if err != nil {
		t.Fatalf("randomString() error = %v", err)
	}
	if len(s) != keySeedLength {
		t.Errorf("len(randomString()) = %d, want %d", len(s), keySeedLength)
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			t.Errorf("randomString() contains %q", r)
		}
	}
}
