package strength

import (
	"math"
	"strconv"
)

// EstimateTimeToCrack gives a rough offline-attack duration for display.
// Effective alphabet = sum of class sizes present (26/26/10/32); keyspace =
// alphabet^length; divided by a fixed 1e9 guesses/second. This is a UX
// heuristic, not an entropy model.
const guessesPerSecond = 1e9

const crackTimeEmptySentinel = "No password entered"

func EstimateTimeToCrack(password string, score int) string {
	if password == "" {
		return crackTimeEmptySentinel
	}

	runes := []rune(password)
	if len(runes) < 6 || score < 20 {
		return "Instantly"
	}

	pool := alphabetSize(scanClasses(password))
	// pool can't be 0 for a non-empty password; every rune lands in a class.
	keyspace := math.Pow(float64(pool), float64(len(runes)))
	return formatDuration(keyspace / guessesPerSecond)
}

func alphabetSize(cs classSet) int {
	pool := 0
	if cs.lower {
		pool += 26
	}
	if cs.upper {
		pool += 26
	}
	if cs.digit {
		pool += 10
	}
	if cs.special {
		pool += 32
	}
	return pool
}

// formatDuration picks the coarsest sensible unit, saturating at "Centuries"
// so absurd exponents do not leak into the UI.
func formatDuration(seconds float64) string {
	const (
		minute = 60
		hour   = 60 * minute
		day    = 24 * hour
		month  = 30 * day
		year   = 365 * day
	)
	switch {
	case seconds < 1:
		return "Instantly"
	case seconds < minute:
		return plural(seconds, "second")
	case seconds < hour:
		return plural(seconds/minute, "minute")
	case seconds < day:
		return plural(seconds/hour, "hour")
	case seconds < month:
		return plural(seconds/day, "day")
	case seconds < year:
		return plural(seconds/month, "month")
	case seconds < 100*year:
		return plural(seconds/year, "year")
	default:
		return "Centuries"
	}
}

func plural(v float64, unit string) string {
	n := int64(math.Round(v))
	if n <= 1 {
		return "1 " + unit
	}
	return strconv.FormatInt(n, 10) + " " + unit + "s"
}
