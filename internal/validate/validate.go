package validate

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxPasswordRunes bounds analyzed input so the crack-time exponentiation
// and the rule scans stay cheap. The analyzer itself is total; this is the
// caller-side defensive cap.
const MaxPasswordRunes = 1024

var (
	ErrPasswordTooLong = errors.New("password exceeds " + strconv.Itoa(MaxPasswordRunes) + " characters")

	// NFC-normalize and drop non-printing control characters that paste
	// buffers sometimes carry. Spaces and all printable runes pass through.
	passwordCleaner = transform.Chain(
		norm.NFC,
		runes.Remove(runes.In(unicode.Cc)),
	)
)

// NormalizePassword prepares raw request input for analysis. It never
// rejects content, only shape: the single failure mode is the length cap.
func NormalizePassword(raw string) (string, error) {
	if utf8.RuneCountInString(raw) > MaxPasswordRunes {
		return "", ErrPasswordTooLong
	}
	cleaned, _, err := transform.String(passwordCleaner, raw)
	if err != nil {
		// malformed UTF-8 survives as-is; the analyzer is total over it
		return raw, nil
	}
	return cleaned, nil
}
