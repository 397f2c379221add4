package analyses

import (
	"time"

	"resume-matcher/internal/matching"
)

const (
	additionalSkillsDisplayLimit = 10
	goodKeywordCoverageTip       = "Good keyword coverage detected"
)

// Analysis is the rendered result of one comparison.
type Analysis struct {
	ID                    string                      `json:"id"`
	Score                 int                         `json:"score"`
	Rating                matching.Rating             `json:"rating"`
	MatchedSkills         []string                    `json:"matchedSkills"`
	MissingSkills         []string                    `json:"missingSkills"`
	AdditionalSkills      []string                    `json:"additionalSkills"`
	AdditionalSkillsTotal int                         `json:"additionalSkillsTotal"`
	ExperienceAnalysis    matching.ExperienceAnalysis `json:"experienceAnalysis"`
	Recommendations       Recommendations             `json:"recommendations"`
	ActionItems           []matching.ActionItem       `json:"actionItems"`
	Breakdown             matching.ScoreBreakdown     `json:"breakdown"`
	Contact               matching.Contact            `json:"contact"`
	WordCount             int                         `json:"wordCount"`
	Cached                bool                        `json:"cached"`
	AnalyzedAt            time.Time                   `json:"analyzedAt"`
	// ResumeText is set for uploads so clients can show what was extracted.
	ResumeText string `json:"resumeText,omitempty"`
}

// Recommendations adds display tips to the engine's keyword suggestions.
type Recommendations struct {
	Improvements []string `json:"improvements"`
	Keywords     []string `json:"keywords"`
	KeywordTips  []string `json:"keywordTips"`
	ATS          []string `json:"ats"`
}

func toAnalysis(id string, res matching.Result, cached bool, at time.Time) Analysis {
	additional := res.AdditionalSkills
	if len(additional) > additionalSkillsDisplayLimit {
		additional = additional[:additionalSkillsDisplayLimit]
	}
	return Analysis{
		ID:                    id,
		Score:                 res.Score,
		Rating:                res.Rating,
		MatchedSkills:         nonNil(res.MatchedSkills),
		MissingSkills:         nonNil(res.MissingSkills),
		AdditionalSkills:      nonNil(additional),
		AdditionalSkillsTotal: len(res.AdditionalSkills),
		ExperienceAnalysis:    res.ExperienceAnalysis,
		Recommendations: Recommendations{
			Improvements: nonNil(res.Recommendations.Improvements),
			Keywords:     nonNil(res.Recommendations.Keywords),
			KeywordTips:  keywordTips(res.Recommendations.Keywords),
			ATS:          nonNil(res.Recommendations.ATS),
		},
		ActionItems: res.ActionItems,
		Breakdown:   res.Breakdown,
		Contact:     res.Contact,
		WordCount:   res.WordCount,
		Cached:      cached,
		AnalyzedAt:  at,
	}
}

func keywordTips(keywords []string) []string {
	if len(keywords) == 0 {
		return []string{goodKeywordCoverageTip}
	}
	tips := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		tips = append(tips, `Add "`+kw+`" to relevant sections`)
	}
	return tips
}

// nonNil keeps empty lists rendering as [] after a cache round trip.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
