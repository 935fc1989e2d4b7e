// Package score computes values derived from the profile. Nothing here is
// stored; callers recompute on read.
package score

import (
	"math"
	"strconv"
	"strings"

	"github.com/rcliao/recruit-tracker/internal/model"
)

// NeutralFit is returned when the GPA cannot be read as a number.
const NeutralFit = 50

// gpaScale is the top of the GPA scale every school is assumed to use.
const gpaScale = 4.0

// FitScore maps a GPA string on a 4.0 scale to 0..100.
func FitScore(gpa string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(gpa), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return NeutralFit
	}
	pct := v / gpaScale * 100
	pct = math.Max(0, math.Min(100, pct))
	return int(math.Round(pct))
}

// completionUnits is the eight scalar fields plus one unit for achievements.
const completionUnits = 9

// ProfileCompletion returns the share of profile fields filled in, as a whole
// percent. Achievements count as a single unit no matter how many there are.
func ProfileCompletion(p model.Profile) int {
	filled := 0
	for _, name := range model.ProfileFields {
		if *p.Field(name) != "" {
			filled++
		}
	}
	if len(p.Achievements) > 0 {
		filled++
	}
	return int(math.Round(float64(filled) / completionUnits * 100))
}
