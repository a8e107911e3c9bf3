package validate

import (
	"strings"
	"testing"
)

func TestNormalizePasswordLengthCap(t *testing.T) {
	ok := strings.Repeat("a", MaxPasswordRunes)
	if _, err := NormalizePassword(ok); err != nil {
		t.Fatalf("at-cap input rejected: %v", err)
	}
	if _, err := NormalizePassword(ok + "a"); err == nil {
		t.Fatal("over-cap input accepted")
	}
}

func TestNormalizePasswordStripsControls(t *testing.T) {
	got, err := NormalizePassword("pa\x00ssword")
	if err != nil {
		t.Fatal(err)
	}
	if got != "password" {
		t.Errorf("got %q, want control characters stripped", got)
	}
}

func TestNormalizePasswordKeepsPrintable(t *testing.T) {
	in := "P@ss word 日本語!"
	got, err := NormalizePassword(in)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("printable input changed: %q -> %q", in, got)
	}
}
