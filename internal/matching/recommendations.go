package matching

import (
	"fmt"
	"strings"
)

const maxKeywordSuggestions = 5

// Recommendations holds resume improvement suggestions.
type Recommendations struct {
	Improvements []string `json:"improvements"`
	Keywords     []string `json:"keywords"`
	ATS          []string `json:"ats"`
}

// GenerateRecommendations builds improvement suggestions from the missing
// skills and the resume content. Every rule is evaluated independently.
func GenerateRecommendations(missingSkills []string, _, resumeText string) Recommendations {
	resume := strings.ToLower(resumeText)
	improvements := make([]string, 0, 6)

	if len(missingSkills) > 0 {
		improvements = append(improvements,
			fmt.Sprintf("Add experience with %s to strengthen your technical profile", strings.Join(firstN(missingSkills, 3), ", ")),
			fmt.Sprintf("Include projects or coursework that demonstrate %s skills", missingSkills[0]),
		)
	}
	if !strings.Contains(resume, "project") {
		improvements = append(improvements, "Add a 'Projects' section to showcase your technical abilities")
	}
	if !strings.Contains(resume, "certification") {
		improvements = append(improvements, "Consider adding relevant certifications to boost your qualifications")
	}
	improvements = append(improvements,
		"Quantify your achievements with specific metrics and numbers",
		"Use action verbs to start each bullet point in your experience section",
	)

	return Recommendations{
		Improvements: improvements,
		Keywords:     firstN(missingSkills, maxKeywordSuggestions),
		ATS:          ATSTips(),
	}
}

// firstN returns a copy of at most n leading items.
func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return append(make([]string, 0, n), items[:n]...)
}
