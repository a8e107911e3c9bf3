package strength

import "strconv"

const (
	msgEmptyFeedback   = "Please enter a password."
	msgEmptySuggestion = "Start typing to see a strength analysis."
)

// criterion messages in the fixed reporting order: lowercase, uppercase,
// numbers, special, repeating, weak, sequential.
var criterionFeedback = []struct {
	met func(Criteria) bool
	msg string
}{
	{func(c Criteria) bool { return c.Lowercase }, "Add lowercase letters."},
	{func(c Criteria) bool { return c.Uppercase }, "Add uppercase letters."},
	{func(c Criteria) bool { return c.Numbers }, "Add numbers."},
	{func(c Criteria) bool { return c.SpecialChars }, "Add special characters (e.g. !@#$%)."},
	{func(c Criteria) bool { return c.NoRepeatingChars }, "Avoid repeating the same character three or more times."},
	{func(c Criteria) bool { return c.NotWeakPassword }, "Avoid common passwords or common words inside your password."},
	{func(c Criteria) bool { return c.NoSequentialRuns }, "Avoid sequential characters like \"abcdef\" or \"123456\"."},
}

// suggestion bullets include length first, then the same fixed order.
var criterionSuggestions = []struct {
	met func(Criteria) bool
	msg string
}{
	{func(c Criteria) bool { return c.Length }, "Use at least 12 characters."},
	{func(c Criteria) bool { return c.Lowercase }, "Mix in lowercase letters."},
	{func(c Criteria) bool { return c.Uppercase }, "Mix in uppercase letters."},
	{func(c Criteria) bool { return c.Numbers }, "Mix in numbers."},
	{func(c Criteria) bool { return c.SpecialChars }, "Mix in special characters."},
	{func(c Criteria) bool { return c.NoRepeatingChars }, "Break up repeated character runs."},
	{func(c Criteria) bool { return c.NotWeakPassword }, "Pick something not based on a common password."},
	{func(c Criteria) bool { return c.NoSequentialRuns }, "Break up sequential runs of letters or digits."},
}

// buildFeedback renders the two ordered string lists for a non-empty
// password: a length-band opener, one line per unmet criterion, and a
// closing note tiered on how many criteria are met. Suggestions lead with a
// strengthening header when the score is still below 50 and close with up to
// two encouragements at the 70 and 85 marks.
func buildFeedback(runeLen int, crit Criteria, score int) (feedback, suggestions []string) {
	n := strconv.Itoa(runeLen)
	switch {
	case runeLen < 8:
		feedback = append(feedback, "Your password is short ("+n+" characters).")
	case runeLen < 12:
		feedback = append(feedback, "Your password is medium length ("+n+" characters).")
	default:
		feedback = append(feedback, "Your password length is adequate ("+n+" characters).")
	}

	for _, cf := range criterionFeedback {
		if !cf.met(crit) {
			feedback = append(feedback, cf.msg)
		}
	}

	switch met := crit.metCount(); {
	case met >= 6:
		feedback = append(feedback, "Excellent! Your password meets most strength criteria.")
	case met >= 4:
		feedback = append(feedback, "Good progress. A few more improvements will strengthen it further.")
	}

	if score < 50 {
		suggestions = append(suggestions, "To strengthen your password:")
	}
	for _, cs := range criterionSuggestions {
		if !cs.met(crit) {
			suggestions = append(suggestions, cs.msg)
		}
	}
	if score >= 70 {
		suggestions = append(suggestions, "Your password is strong.")
	}
	if score >= 85 {
		suggestions = append(suggestions, "Outstanding! This password would be very hard to guess.")
	}
	return feedback, suggestions
}
