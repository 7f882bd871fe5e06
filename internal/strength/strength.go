// Package strength scores candidate passwords against a fixed five-point
// rubric: minimum length plus presence of lowercase, uppercase, digit and
// symbol characters.
package strength

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// MinLength is the minimum password length required to earn the length point.
const MinLength = 12

// Rating labels, strongest first.
const (
	RatingVeryStrong = "VERY STRONG"
	RatingStrong     = "STRONG"
	RatingMedium     = "MEDIUM"
	RatingWeak       = "WEAK"
)

// MaxScore is one point per check.
const MaxScore = 5

// Report is the result of evaluating a single candidate password. Feedback
// lines appear in check order: length, lowercase, uppercase, digit, symbol.
type Report struct {
	Score    int
	Rating   string
	Feedback []string
}

// ratingThresholds maps a score to its label. Evaluated top-down, first
// match wins, so the tie-break order is explicit rather than an accident of
// branch order.
var ratingThresholds = []struct {
	min    int
	rating string
}{
	{5, RatingVeryStrong},
	{4, RatingStrong},
	{2, RatingMedium},
	{0, RatingWeak},
}

// Evaluate scores a candidate password. It accepts any string, including
// empty, and never fails: a missing property becomes a feedback line, not an
// error. The function is pure; equal inputs yield equal reports.
func Evaluate(password string) Report {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case !unicode.IsSpace(r):
			// Anything that is not a Latin letter, decimal digit or
			// whitespace counts as a symbol. This is deliberately broader
			// than the generator's symbol alphabet.
			hasSymbol = true
		}
	}

	score := 0
	feedback := make([]string, 0, MaxScore)

	// The length requirement counts characters, not bytes. Only the length
	// check confirms success; the character checks report failures only.
	if utf8.RuneCountInString(password) >= MinLength {
		score++
		feedback = append(feedback, "length requirement met")
	} else {
		feedback = append(feedback, fmt.Sprintf("password should be at least %d characters long", MinLength))
	}

	for _, check := range []struct {
		ok      bool
		missing string
	}{
		{hasLower, "missing lowercase letter"},
		{hasUpper, "missing uppercase letter"},
		{hasDigit, "missing digit"},
		{hasSymbol, "missing symbol"},
	} {
		if check.ok {
			score++
		} else {
			feedback = append(feedback, check.missing)
		}
	}

	return Report{
		Score:    score,
		Rating:   ratingFor(score),
		Feedback: feedback,
	}
}

func ratingFor(score int) string {
	for _, t := range ratingThresholds {
		if score >= t.min {
			return t.rating
		}
	}
	return RatingWeak
}
