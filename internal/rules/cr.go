// Package rules holds the D&D 5e tabletop reference tables and the
// encounter difficulty calculation built on them.
package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmgrid/encounter-api/internal/errors"
)

// crXP maps challenge rating to XP, per the DMG. Fractional ratings
// (1/8, 1/4, 1/2) are exactly representable as float64 keys.
var crXP = map[float64]int{
	0: 10, 0.125: 25, 0.25: 50, 0.5: 100,
	1: 200, 2: 450, 3: 700, 4: 1100, 5: 1800,
	6: 2300, 7: 2900, 8: 3900, 9: 5000, 10: 5900,
	11: 7200, 12: 8400, 13: 10000, 14: 11500, 15: 13000,
	16: 15000, 17: 18000, 18: 20000, 19: 22000, 20: 25000,
	21: 33000, 22: 41000, 23: 50000, 24: 62000, 25: 75000,
	26: 90000, 27: 105000, 28: 120000, 29: 135000, 30: 155000,
}

// XPForCR returns the XP value of a challenge rating. Unmapped
// ratings contribute 0.
func XPForCR(cr float64) int {
	return crXP[cr]
}

// ParseChallengeRating parses a CR written as a decimal ("0.25", "5")
// or a fraction ("1/4"). Fraction strings appear in compendium data
// and save files and must never be evaluated as code.
func ParseChallengeRating(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.InvalidArgument("challenge rating is empty")
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, errors.InvalidArgumentf("invalid challenge rating %q", s)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return 0, errors.InvalidArgumentf("invalid challenge rating %q", s)
		}
		return n / d, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid challenge rating %q", s)
	}
	return v, nil
}

// FormatChallengeRating renders a CR the way statblocks print it,
// using fractions below 1.
func FormatChallengeRating(cr float64) string {
	switch cr {
	case 0.125:
		return "1/8"
	case 0.25:
		return "1/4"
	case 0.5:
		return "1/2"
	}
	if cr == float64(int(cr)) {
		return strconv.Itoa(int(cr))
	}
	return fmt.Sprintf("%g", cr)
}
