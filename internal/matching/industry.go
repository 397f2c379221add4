package matching

import (
	"math"
	"strings"
)

const (
	defaultIndustryFit     = 50
	industryFitDescription = "Based on relevant industry keywords and context"
)

// IndustryFit holds the industry keyword overlap score.
type IndustryFit struct {
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// IndustryFitScore returns the share of the job's industry keywords that the
// resume also mentions, as a rounded percentage, or 50 when the job names none.
func IndustryFitScore(jobText, resumeText string) int {
	return industryFitScore(defaultIndustryKeywords, jobText, resumeText)
}

func industryFitScore(keywords []string, jobText, resumeText string) int {
	job := strings.ToLower(jobText)
	resume := strings.ToLower(resumeText)

	inJob, common := 0, 0
	for _, kw := range keywords {
		if !strings.Contains(job, kw) {
			continue
		}
		inJob++
		if strings.Contains(resume, kw) {
			common++
		}
	}
	if inJob == 0 {
		return defaultIndustryFit
	}
	return int(math.Round(float64(common) / float64(inJob) * 100))
}
