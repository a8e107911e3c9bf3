package strength

import "strings"

// Rule contributions. Bonuses add to the score, penalties subtract.
// All constants are fixed; nothing here is tunable at call time.
const (
	lengthBonusTiny   = 5  // 1-5 chars
	lengthBonusShort  = 10 // 6-7 chars
	lengthBonusMedium = 20 // 8-11 chars
	lengthBonusFull   = 30 // 12+ chars

	lowerBonus   = 10
	upperBonus   = 10
	digitBonus   = 10
	specialBonus = 15

	varietyBonusTwo   = 2
	varietyBonusThree = 5
	varietyBonusFour  = 10

	repeatPenaltyStep = 5
	repeatPenaltyCap  = 15

	weakExactPenalty  = 20
	weakSubstrPenalty = 15
	weakSubstrMinLen  = 4

	seqPatternPenalty = 10
	seqTriplePenalty  = 5
	seqPenaltyCap     = 15
)

type classSet struct {
	lower, upper, digit, special bool
}

func scanClasses(pwd string) classSet {
	var cs classSet
	for _, r := range pwd {
		switch {
		case r >= 'a' && r <= 'z':
			cs.lower = true
		case r >= 'A' && r <= 'Z':
			cs.upper = true
		case r >= '0' && r <= '9':
			cs.digit = true
		default:
			cs.special = true
		}
	}
	return cs
}

func (cs classSet) count() int {
	n := 0
	if cs.lower {
		n++
	}
	if cs.upper {
		n++
	}
	if cs.digit {
		n++
	}
	if cs.special {
		n++
	}
	return n
}

// lengthBonus bands on rune count, not bytes, so multibyte input
// is not over-rewarded.
func lengthBonus(runes []rune) int {
	switch n := len(runes); {
	case n == 0:
		return 0
	case n < 6:
		return lengthBonusTiny
	case n < 8:
		return lengthBonusShort
	case n < 12:
		return lengthBonusMedium
	default:
		return lengthBonusFull
	}
}

func varietyBonus(cs classSet) int {
	switch cs.count() {
	case 4:
		return varietyBonusFour
	case 3:
		return varietyBonusThree
	case 2:
		return varietyBonusTwo
	default:
		return 0
	}
}

// repeatPenalty charges repeatPenaltyStep for every position that extends a
// run of identical characters past length 2 ("aaa" charges once, "aaaa"
// twice), capped at repeatPenaltyCap.
func repeatPenalty(runes []rune) int {
	p := 0
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 3 {
				p += repeatPenaltyStep
				if p >= repeatPenaltyCap {
					return repeatPenaltyCap
				}
			}
		} else {
			run = 1
		}
	}
	return p
}

// weakPenalty checks the exact case-insensitive match first; only if that
// misses does it fall back to substring containment of listed entries of
// length >= weakSubstrMinLen. First hit wins.
func weakPenalty(pwd string, m *Matcher) int {
	low := strings.ToLower(pwd)
	if _, ok := m.weakExact[low]; ok {
		return weakExactPenalty
	}
	for _, w := range m.weakSubstr {
		if strings.Contains(low, w) {
			return weakSubstrPenalty
		}
	}
	return 0
}

// seqPenalty charges seqPatternPenalty for every known ordered run contained
// in the password, plus a single seqTriplePenalty if any three consecutive
// characters step by exactly +1 or -1 in code point. Capped at seqPenaltyCap.
func seqPenalty(pwd string, runes []rune, m *Matcher) int {
	p := 0
	low := strings.ToLower(pwd)
	for _, pat := range m.seqPatterns {
		if strings.Contains(low, pat) {
			p += seqPatternPenalty
			if p >= seqPenaltyCap {
				return seqPenaltyCap
			}
		}
	}
	if hasCodeStepTriple(runes) {
		p += seqTriplePenalty
	}
	if p > seqPenaltyCap {
		p = seqPenaltyCap
	}
	return p
}

func hasCodeStepTriple(runes []rune) bool {
	for i := 0; i+2 < len(runes); i++ {
		a, b, c := runes[i], runes[i+1], runes[i+2]
		if b == a+1 && c == b+1 {
			return true
		}
		if b == a-1 && c == b-1 {
			return true
		}
	}
	return false
}
