package matching

import (
	"math"
	"regexp"
	"strings"
)

const (
	skillWeight     = 70
	bachelorBonus   = 10
	masterBonus     = 15
	maxScore        = 100
	densityMinLen   = 4
	densityMaxBonus = 10
)

var nonWord = regexp.MustCompile(`\W+`)

// ScoreBreakdown exposes the parts that add up to the final score.
type ScoreBreakdown struct {
	SkillComponent    float64 `json:"skillComponent"`
	EducationBonus    int     `json:"educationBonus"`
	ExperienceBonus   int     `json:"experienceBonus"`
	KeywordDensity    int     `json:"keywordDensity"`
	SkillMatchPercent float64 `json:"skillMatchPercent"`
	ExperienceMatch   string  `json:"experienceMatch"`
}

// ComputeScore combines skill coverage with education, experience and
// keyword-density bonuses into a 0..100 score.
func ComputeScore(matchedCount, totalRequired int, resumeText, jobText string) int {
	return finalScore(breakdown(matchedCount, totalRequired, resumeText, jobText))
}

func breakdown(matchedCount, totalRequired int, resumeText, jobText string) ScoreBreakdown {
	var b ScoreBreakdown
	if totalRequired > 0 {
		ratio := float64(matchedCount) / float64(totalRequired)
		b.SkillComponent = ratio * skillWeight
		b.SkillMatchPercent = math.Round(ratio*1000) / 10
	}
	b.EducationBonus = EducationBonus(jobText, resumeText)
	b.ExperienceBonus = ExperienceBonus(jobText, resumeText)
	b.KeywordDensity = KeywordDensity(jobText, resumeText)
	return b
}

func finalScore(b ScoreBreakdown) int {
	total := b.SkillComponent + float64(b.EducationBonus+b.ExperienceBonus+b.KeywordDensity)
	score := int(math.Round(total))
	if score > maxScore {
		return maxScore
	}
	return score
}

// EducationBonus adds 10 when both texts mention a bachelor's degree and 15
// when both mention a master's. Both can apply.
func EducationBonus(jobText, resumeText string) int {
	job := strings.ToLower(jobText)
	resume := strings.ToLower(resumeText)
	bonus := 0
	if strings.Contains(job, "bachelor") && strings.Contains(resume, "bachelor") {
		bonus += bachelorBonus
	}
	if strings.Contains(job, "master") && strings.Contains(resume, "master") {
		bonus += masterBonus
	}
	return bonus
}

// KeywordDensity scores, out of 10, how many significant job-description
// words also appear in the resume. Repeated job words count each time.
func KeywordDensity(jobText, resumeText string) int {
	resumeWords := make(map[string]struct{})
	for _, w := range tokenize(resumeText) {
		resumeWords[w] = struct{}{}
	}

	important, matching := 0, 0
	for _, w := range tokenize(jobText) {
		if len(w) < densityMinLen {
			continue
		}
		if _, stop := densityStopWords[w]; stop {
			continue
		}
		important++
		if _, ok := resumeWords[w]; ok {
			matching++
		}
	}
	if important == 0 {
		return 0
	}
	return int(math.Round(float64(matching) / float64(important) * densityMaxBonus))
}

func tokenize(text string) []string {
	return nonWord.Split(strings.ToLower(text), -1)
}
