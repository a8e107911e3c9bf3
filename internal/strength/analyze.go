// Package strength scores candidate passwords with a fixed heuristic rule
// set: bonuses for length and character variety, penalties for repetition,
// known-weak words, and sequential runs. Every function here is pure and
// total; the same input always produces the same Result.
package strength

// Level is the coarse qualitative label derived from the numeric score.
type Level string

const (
	LevelEmpty      Level = "empty"
	LevelVeryWeak   Level = "very-weak"
	LevelWeak       Level = "weak"
	LevelMedium     Level = "medium"
	LevelStrong     Level = "strong"
	LevelVeryStrong Level = "very-strong"
)

// Criteria reports the eight independent pass/fail checks. These derive from
// the raw rule outputs, not the aggregate score: a high-scoring password can
// still fail an individual criterion and the UI shows that.
type Criteria struct {
	Length           bool `json:"length"`
	Lowercase        bool `json:"lowercase"`
	Uppercase        bool `json:"uppercase"`
	Numbers          bool `json:"numbers"`
	SpecialChars     bool `json:"specialChars"`
	NoRepeatingChars bool `json:"noRepeating"`
	NotWeakPassword  bool `json:"notWeak"`
	NoSequentialRuns bool `json:"noSequential"`
}

func (c Criteria) metCount() int {
	n := 0
	for _, b := range [8]bool{
		c.Length, c.Lowercase, c.Uppercase, c.Numbers,
		c.SpecialChars, c.NoRepeatingChars, c.NotWeakPassword, c.NoSequentialRuns,
	} {
		if b {
			n++
		}
	}
	return n
}

// Result is a fresh, immutable snapshot of one analysis pass.
type Result struct {
	Score       int      `json:"score"` // 0..100
	Level       Level    `json:"level"`
	Criteria    Criteria `json:"criteria"`
	Feedback    []string `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// Analyze scores a password against the default matcher.
func Analyze(password string) Result {
	return defaultMatcher.Analyze(password)
}

// Analyze runs every rule evaluator once, sums bonuses minus penalties,
// clamps to [0,100], and derives level, criteria, and feedback.
// The empty password short-circuits to the fixed empty result.
func (m *Matcher) Analyze(password string) Result {
	if password == "" {
		return emptyResult()
	}

	runes := []rune(password)
	cs := scanClasses(password)

	lenB := lengthBonus(runes)
	lowerB := presenceBonus(cs.lower, lowerBonus)
	upperB := presenceBonus(cs.upper, upperBonus)
	digitB := presenceBonus(cs.digit, digitBonus)
	specialB := presenceBonus(cs.special, specialBonus)
	varietyB := varietyBonus(cs)

	repeatP := repeatPenalty(runes)
	weakP := weakPenalty(password, m)
	seqP := seqPenalty(password, runes, m)

	score := lenB + lowerB + upperB + digitB + specialB + varietyB
	score -= repeatP + weakP + seqP
	score = clamp(score, 0, 100)

	crit := Criteria{
		Length:           lenB == lengthBonusFull,
		Lowercase:        lowerB > 0,
		Uppercase:        upperB > 0,
		Numbers:          digitB > 0,
		SpecialChars:     specialB > 0,
		NoRepeatingChars: repeatP == 0,
		NotWeakPassword:  weakP == 0,
		NoSequentialRuns: seqP == 0,
	}

	fb, sugg := buildFeedback(len(runes), crit, score)

	return Result{
		Score:       score,
		Level:       levelFor(score),
		Criteria:    crit,
		Feedback:    fb,
		Suggestions: sugg,
	}
}

func presenceBonus(present bool, bonus int) int {
	if present {
		return bonus
	}
	return 0
}

// levelFor maps the clamped score onto half-open bands covering all of
// [0,100]. Monotonic by construction.
func levelFor(score int) Level {
	switch {
	case score < 20:
		return LevelVeryWeak
	case score < 40:
		return LevelWeak
	case score < 60:
		return LevelMedium
	case score < 80:
		return LevelStrong
	default:
		return LevelVeryStrong
	}
}

func emptyResult() Result {
	return Result{
		Score:       0,
		Level:       LevelEmpty,
		Criteria:    Criteria{},
		Feedback:    []string{msgEmptyFeedback},
		Suggestions: []string{msgEmptySuggestion},
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
