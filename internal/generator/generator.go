// Package generator produces random passwords for the convenience endpoint.
// Explicitly non-deterministic, unlike the scoring core.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	special = "!@#$%^&*()-_=+[]{};:,.<>?"

	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 16
)

var alphabet = lower + upper + digits + special

// New returns a random password of the given length containing at least one
// character from each of the four classes. Lengths outside [MinLength,
// MaxLength] are rejected rather than clamped so callers see their mistake.
func New(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("generator: length %d out of range [%d,%d]", length, MinLength, MaxLength)
	}

	buf := make([]byte, 0, length)

	// one guaranteed pick per class
	for _, set := range []string{lower, upper, digits, special} {
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	for len(buf) < length {
		c, err := pick(alphabet)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}

	// Fisher-Yates so the guaranteed picks don't sit at fixed positions
	for i := len(buf) - 1; i > 0; i-- {
		j, err := intn(i + 1)
		if err != nil {
			return "", err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

func pick(set string) (byte, error) {
	i, err := intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("generator: rand: %w", err)
	}
	return int(v.Int64()), nil
}
