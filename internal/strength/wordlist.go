package strength

import "strings"

// Static sample of commonly used passwords. Deliberately small: this is a
// heuristic tripwire, not a breach database. Deployments that want a wider
// net merge extra entries via NewMatcher.
var defaultWeakPasswords = []string{
	"password",
	"password1",
	"123456",
	"12345678",
	"123123",
	"111111",
	"qwerty",
	"qwerty123",
	"1q2w3e4r",
	"abc123",
	"letmein",
	"iloveyou",
	"admin",
	"welcome",
	"monkey",
	"dragon",
	"master",
	"login",
	"princess",
	"sunshine",
	"football",
	"baseball",
}

const (
	lowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	digitRun      = "0123456789"
	seqWindow     = 6
)

// Matcher carries the weak-password and sequential-pattern tables used by
// Analyze. A Matcher is immutable after construction; building a new one and
// swapping the pointer is the way to widen the list at runtime.
type Matcher struct {
	weakExact   map[string]struct{}
	weakSubstr  []string // entries of length >= weakSubstrMinLen, lowercased
	seqPatterns []string
}

// Default returns the matcher backed by the embedded static tables.
func Default() *Matcher { return defaultMatcher }

var defaultMatcher = NewMatcher(nil)

// NewMatcher builds a matcher from the static tables plus extra weak
// passwords. Entries are lowercased and deduped; extras shorter than
// weakSubstrMinLen participate in exact matching only.
func NewMatcher(extra []string) *Matcher {
	m := &Matcher{
		weakExact:   make(map[string]struct{}, len(defaultWeakPasswords)+len(extra)),
		seqPatterns: sequentialPatterns(),
	}
	add := func(w string) {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			return
		}
		if _, ok := m.weakExact[w]; ok {
			return
		}
		m.weakExact[w] = struct{}{}
		if len(w) >= weakSubstrMinLen {
			m.weakSubstr = append(m.weakSubstr, w)
		}
	}
	for _, w := range defaultWeakPasswords {
		add(w)
	}
	for _, w := range extra {
		add(w)
	}
	return m
}

// Size reports how many distinct weak passwords the matcher knows.
func (m *Matcher) Size() int { return len(m.weakExact) }

// sequentialPatterns yields every 6-char window over the alphabet and the
// digit run, forward and reversed.
func sequentialPatterns() []string {
	var pats []string
	for _, base := range []string{lowerAlphabet, digitRun} {
		rev := reverse(base)
		for i := 0; i+seqWindow <= len(base); i++ {
			pats = append(pats, base[i:i+seqWindow])
			pats = append(pats, rev[i:i+seqWindow])
		}
	}
	return pats
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
