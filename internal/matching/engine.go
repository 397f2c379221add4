package matching

import "strings"

// ExperienceAnalysis groups the experience, education and industry checks.
type ExperienceAnalysis struct {
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Education       Education       `json:"education"`
	IndustryFit     IndustryFit     `json:"industryFit"`
}

// Result is the outcome of one analysis. Slices are allocated per call.
type Result struct {
	Score              int                `json:"score"`
	Rating             Rating             `json:"rating"`
	MatchedSkills      []string           `json:"matchedSkills"`
	MissingSkills      []string           `json:"missingSkills"`
	AdditionalSkills   []string           `json:"additionalSkills"`
	ExperienceAnalysis ExperienceAnalysis `json:"experienceAnalysis"`
	Recommendations    Recommendations    `json:"recommendations"`
	ActionItems        []ActionItem       `json:"actionItems"`
	Breakdown          ScoreBreakdown     `json:"breakdown"`
	Contact            Contact            `json:"contact"`
	WordCount          int                `json:"wordCount"`
}

// Engine runs analyses against a skill catalog and industry keyword list.
// The zero value is not usable; construct with New.
type Engine struct {
	skills   []string
	industry []string
}

// Option customises an Engine.
type Option func(*Engine)

// WithSkills replaces the skill catalog.
func WithSkills(skills []string) Option {
	return func(e *Engine) { e.skills = append([]string(nil), skills...) }
}

// WithIndustryKeywords replaces the industry keyword list. Keywords are
// matched in lower case.
func WithIndustryKeywords(keywords []string) Option {
	return func(e *Engine) {
		e.industry = make([]string, 0, len(keywords))
		for _, kw := range keywords {
			e.industry = append(e.industry, strings.ToLower(kw))
		}
	}
}

// New builds an Engine over the default catalog, adjusted by opts.
func New(opts ...Option) *Engine {
	e := &Engine{skills: defaultSkills, industry: defaultIndustryKeywords}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Analyze compares a job description with a resume using the built-in catalog.
func Analyze(jobDescription, resumeText string) (Result, error) {
	return defaultEngine.Analyze(jobDescription, resumeText)
}

// Analyze validates both inputs and returns the full compatibility report.
// Inputs are trimmed; a blank input yields an *InvalidInputError.
func (e *Engine) Analyze(jobDescription, resumeText string) (Result, error) {
	job := strings.TrimSpace(jobDescription)
	resume := strings.TrimSpace(resumeText)
	if job == "" {
		return Result{}, &InvalidInputError{Field: FieldJobDescription}
	}
	if resume == "" {
		return Result{}, &InvalidInputError{Field: FieldResumeText}
	}

	jobSkills := extractSkills(e.skills, job)
	resumeSkills := extractSkills(e.skills, resume)
	match := MatchSkills(jobSkills, resumeSkills)

	b := breakdown(len(match.Matched), len(jobSkills), resume, job)
	experience := analyzeExperience(job, resume)
	b.ExperienceMatch = experienceMessage(experience)
	score := finalScore(b)

	return Result{
		Score:            score,
		Rating:           RateScore(score),
		MatchedSkills:    match.Matched,
		MissingSkills:    match.Missing,
		AdditionalSkills: match.Additional,
		ExperienceAnalysis: ExperienceAnalysis{
			ExperienceLevel: experience,
			Education:       analyzeEducation(job, resume),
			IndustryFit: IndustryFit{
				Score:       industryFitScore(e.industry, job, resume),
				Description: industryFitDescription,
			},
		},
		Recommendations: GenerateRecommendations(match.Missing, job, resume),
		ActionItems:     GenerateActionItems(match.Missing, score),
		Breakdown:       b,
		Contact:         ExtractContact(resume),
		WordCount:       WordCount(resume),
	}, nil
}
