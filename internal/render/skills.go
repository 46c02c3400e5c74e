package render

import (
	"strconv"
	"strings"
)

// MaxSkillLevel is the level that fills the whole bar track.
const MaxSkillLevel = 5

// SkillLevel parses a skill level as entered in the form. Non-numeric input
// reads as 0 and the result is clamped to [0, MaxSkillLevel].
func SkillLevel(level string) int {
	n, err := strconv.Atoi(strings.TrimSpace(level))
	if err != nil || n < 0 {
		return 0
	}
	if n > MaxSkillLevel {
		return MaxSkillLevel
	}
	return n
}

// SkillFraction is the share of the bar track a level fills.
func SkillFraction(level string) float64 {
	return float64(SkillLevel(level)) / MaxSkillLevel
}
