package strength

import (
	"reflect"
	"testing"
)

func TestAnalyzeEmpty(t *testing.T) {
	got := Analyze("")
	if got.Score != 0 || got.Level != LevelEmpty {
		t.Fatalf("empty: got score=%d level=%s", got.Score, got.Level)
	}
	if got.Criteria != (Criteria{}) {
		t.Errorf("empty: all criteria must be false, got %+v", got.Criteria)
	}
	if len(got.Feedback) != 1 || len(got.Suggestions) != 1 {
		t.Errorf("empty: want exactly one feedback and one suggestion, got %d/%d",
			len(got.Feedback), len(got.Suggestions))
	}
	// idempotent
	if again := Analyze(""); !reflect.DeepEqual(got, again) {
		t.Error("empty result not stable across calls")
	}
}

func TestAnalyzeRepeatedRun(t *testing.T) {
	got := Analyze("aaaaaaaa")
	if !got.Criteria.Lowercase {
		t.Error("lowercase criterion should be true")
	}
	if got.Criteria.NoRepeatingChars {
		t.Error("noRepeating criterion should be false")
	}
	// 20 (length) + 10 (lower) - 15 (repeat cap) = 15
	if got.Score != 15 {
		t.Errorf("score = %d, want 15", got.Score)
	}
	if got.Level != LevelVeryWeak && got.Level != LevelWeak {
		t.Errorf("level = %s, want very-weak or weak", got.Level)
	}
}

func TestAnalyzeWeakListMatch(t *testing.T) {
	got := Analyze("password")
	if got.Criteria.NotWeakPassword {
		t.Error("notWeak criterion should be false for an exact weak-list hit")
	}
	if !got.Criteria.Lowercase {
		t.Error("lowercase criterion should still be true")
	}
	// 20 (length) + 10 (lower) - 20 (weak exact) = 10
	if got.Score != 10 {
		t.Errorf("score = %d, want 10", got.Score)
	}
	if got.Level != LevelVeryWeak && got.Level != LevelWeak {
		t.Errorf("level = %s, want at most weak", got.Level)
	}
}

func TestAnalyzeStrongPassword(t *testing.T) {
	got := Analyze("Tr0ub4dor&9Zx")
	want := Criteria{
		Length: true, Lowercase: true, Uppercase: true, Numbers: true,
		SpecialChars: true, NoRepeatingChars: true, NotWeakPassword: true,
		NoSequentialRuns: true,
	}
	if got.Criteria != want {
		t.Errorf("criteria = %+v, want all true", got.Criteria)
	}
	// 30 + 10 + 10 + 10 + 15 + 10 = 85
	if got.Score != 85 {
		t.Errorf("score = %d, want 85", got.Score)
	}
	if got.Level != LevelStrong && got.Level != LevelVeryStrong {
		t.Errorf("level = %s, want strong or very-strong", got.Level)
	}
}

func TestAnalyzeSequentialRun(t *testing.T) {
	got := Analyze("abcdefgh")
	if got.Criteria.NoSequentialRuns {
		t.Error("noSequential criterion should be false")
	}
	if !got.Criteria.Lowercase {
		t.Error("lowercase criterion should be true")
	}
	// 20 (length) + 10 (lower) - 15 (seq cap) = 15
	if got.Score != 15 {
		t.Errorf("score = %d, want 15", got.Score)
	}
}

func TestAnalyzeScoreAlwaysInRange(t *testing.T) {
	inputs := []string{
		"", "a", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"password123456", "abcdefghijklmnopqrstuvwxyz",
		"P@ssw0rd!P@ssw0rd!P@ssw0rd!", "日本語のパスワード",
		"!!!###$$$", "0123456789", "Tr0ub4dor&9Zx",
	}
	for _, p := range inputs {
		got := Analyze(p)
		if got.Score < 0 || got.Score > 100 {
			t.Errorf("Analyze(%q).Score = %d, out of [0,100]", p, got.Score)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	for _, p := range []string{"", "aaaa", "Tr0ub4dor&9Zx", "qwerty123"} {
		a, b := Analyze(p), Analyze(p)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Analyze(%q) not deterministic", p)
		}
	}
}

func TestLevelForCoversBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, LevelVeryWeak},
		{19, LevelVeryWeak},
		{20, LevelWeak},
		{39, LevelWeak},
		{40, LevelMedium},
		{59, LevelMedium},
		{60, LevelStrong},
		{79, LevelStrong},
		{80, LevelVeryStrong},
		{100, LevelVeryStrong},
	}
	for _, tt := range tests {
		if got := levelFor(tt.score); got != tt.want {
			t.Errorf("levelFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
	// monotonic step function: walking 0..100 never skips backwards
	order := map[Level]int{
		LevelVeryWeak: 0, LevelWeak: 1, LevelMedium: 2, LevelStrong: 3, LevelVeryStrong: 4,
	}
	prev := -1
	for s := 0; s <= 100; s++ {
		cur := order[levelFor(s)]
		if cur < prev {
			t.Fatalf("levelFor not monotonic at score %d", s)
		}
		prev = cur
	}
}

func TestAnalyzeSubstringWeakMatch(t *testing.T) {
	got := Analyze("Xxmonkey42!")
	if got.Criteria.NotWeakPassword {
		t.Error("notWeak should be false when a listed word of length >= 4 is contained")
	}
}
