package matching

import (
	"fmt"
	"regexp"
	"strconv"
)

var yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)

const (
	labelNotSpecified        = "Not specified"
	labelNotClearlySpecified = "Not clearly specified"
)

// ExperienceLevel compares required and stated years of experience.
type ExperienceLevel struct {
	Required      string `json:"required"`
	Found         string `json:"found"`
	Match         bool   `json:"match"`
	RequiredYears int    `json:"requiredYears,omitempty"`
	FoundYears    int    `json:"foundYears,omitempty"`
}

// ExtractYears returns the number in the first "N years" / "N+ year" phrase.
// Only the first occurrence is considered. Zero is treated as absent.
func ExtractYears(text string) (int, bool) {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// ExperienceBonus awards 10 points when the resume meets the required years,
// 5 when it reaches 70% of them, and 0 otherwise or when either side is unknown.
func ExperienceBonus(jobText, resumeText string) int {
	jobYears, okJob := ExtractYears(jobText)
	resumeYears, okResume := ExtractYears(resumeText)
	if !okJob || !okResume {
		return 0
	}
	if resumeYears >= jobYears {
		return 10
	}
	if float64(resumeYears) >= float64(jobYears)*0.7 {
		return 5
	}
	return 0
}

func analyzeExperience(jobText, resumeText string) ExperienceLevel {
	jobYears, okJob := ExtractYears(jobText)
	resumeYears, okResume := ExtractYears(resumeText)

	level := ExperienceLevel{
		Required: labelNotSpecified,
		Found:    labelNotClearlySpecified,
	}
	if okJob {
		level.Required = fmt.Sprintf("%d+ years", jobYears)
		level.RequiredYears = jobYears
	}
	if okResume {
		level.Found = fmt.Sprintf("%d years", resumeYears)
		level.FoundYears = resumeYears
	}
	level.Match = okJob && okResume && resumeYears >= jobYears
	return level
}

// experienceMessage summarises the gap the way the score breakdown reports it.
func experienceMessage(level ExperienceLevel) string {
	if level.RequiredYears == 0 {
		return "Unknown"
	}
	if level.FoundYears >= level.RequiredYears {
		return fmt.Sprintf("Meets requirement (%d years)", level.FoundYears)
	}
	return fmt.Sprintf("Short by %d years", level.RequiredYears-level.FoundYears)
}
