package matching

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pythonReactJob    = "We need 3+ years experience with Python and React. Bachelor's degree required."
	pythonReactResume = "5 years Python developer. Bachelor of Science."
)

func TestAnalyzePythonReactScenario(t *testing.T) {
	res, err := Analyze(pythonReactJob, pythonReactResume)
	require.NoError(t, err)

	assert.Contains(t, res.MatchedSkills, "Python")
	// "React" contains the single-letter catalog skill "R", which the resume
	// also contains, so the loose match pulls it into matched.
	assert.Equal(t, []string{"Python", "React", "R"}, res.MatchedSkills)
	assert.Empty(t, res.MissingSkills)
	assert.Empty(t, res.AdditionalSkills)

	exp := res.ExperienceAnalysis
	assert.True(t, exp.ExperienceLevel.Match)
	assert.Equal(t, "3+ years", exp.ExperienceLevel.Required)
	assert.Equal(t, "5 years", exp.ExperienceLevel.Found)
	assert.True(t, exp.Education.Match)
	assert.Equal(t, EducationBachelor, exp.Education.Required)
	assert.Equal(t, 50, exp.IndustryFit.Score)

	// 70 skills + 10 bachelor + 10 experience + round(3/7*10) density
	assert.Equal(t, 94, res.Score)
	assert.Greater(t, res.Score, 70)
	assert.Equal(t, "Excellent Match", res.Rating.Label)
	assert.Equal(t, 4, res.Breakdown.KeywordDensity)
	assert.Equal(t, 100.0, res.Breakdown.SkillMatchPercent)
	assert.Equal(t, "Meets requirement (5 years)", res.Breakdown.ExperienceMatch)
	assert.Equal(t, 7, res.WordCount)
	assert.Len(t, res.ActionItems, 2)
}

func TestAnalyzeRejectsBlankInput(t *testing.T) {
	cases := []struct {
		name, job, resume, field string
	}{
		{"empty job", "", "resume", FieldJobDescription},
		{"blank job", " \n\t", "resume", FieldJobDescription},
		{"empty resume", "job", "", FieldResumeText},
		{"both empty", "", "", FieldJobDescription},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Analyze(tc.job, tc.resume)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			var inv *InvalidInputError
			require.True(t, errors.As(err, &inv))
			assert.Equal(t, tc.field, inv.Field)
			assert.Zero(t, res.Score)
			assert.Nil(t, res.MatchedSkills)
		})
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	first, err := Analyze(pythonReactJob, pythonReactResume)
	require.NoError(t, err)
	second, err := Analyze(pythonReactJob, pythonReactResume)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	first.MatchedSkills[0] = "mutated"
	third, err := Analyze(pythonReactJob, pythonReactResume)
	require.NoError(t, err)
	assert.Equal(t, "Python", third.MatchedSkills[0])
}

func TestAnalyzeInvariants(t *testing.T) {
	inputs := [][2]string{
		{pythonReactJob, pythonReactResume},
		{"Senior Java engineer, Kubernetes, Docker, AWS, Terraform. 8 years.", "Junior JavaScript dev, 2 years, React and CSS."},
		{"Data Scientist: Python, pandas, scikit-learn, TensorFlow, Statistics, SQL. PhD preferred.", "Master of Science. Python, SQL, Tableau."},
		{"Looking for a great teammate", "I like hiking"},
		{"python bachelor master 2 years", "python bachelor master 2 years"},
	}
	catalog := map[string]bool{}
	for _, s := range SkillCatalog() {
		catalog[s] = true
	}

	for _, in := range inputs {
		res, err := Analyze(in[0], in[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 100)

		for _, m := range res.MatchedSkills {
			assert.NotContains(t, res.MissingSkills, m)
		}
		job := strings.ToLower(in[0])
		for _, s := range append(append([]string{}, res.MatchedSkills...), res.MissingSkills...) {
			assert.Contains(t, job, strings.ToLower(s), "skill %q does not occur in the job text", s)
		}
		all := append(append(append([]string{}, res.MatchedSkills...), res.MissingSkills...), res.AdditionalSkills...)
		for _, s := range all {
			assert.True(t, catalog[s], "skill %q is not in the catalog", s)
		}
	}
}

func TestAnalyzeScoreCapsAtHundred(t *testing.T) {
	res, err := Analyze("python bachelor master 2 years", "python bachelor master 2 years")
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 25, res.Breakdown.EducationBonus)
	assert.Equal(t, 10, res.Breakdown.ExperienceBonus)
	assert.Equal(t, 10, res.Breakdown.KeywordDensity)
}

func TestAnalyzeWithoutYears(t *testing.T) {
	res, err := Analyze("Go developer wanted", "I write Go")
	require.NoError(t, err)
	level := res.ExperienceAnalysis.ExperienceLevel
	assert.Equal(t, "Not specified", level.Required)
	assert.Equal(t, "Not clearly specified", level.Found)
	assert.False(t, level.Match)
	assert.Zero(t, res.Breakdown.ExperienceBonus)
	assert.Equal(t, "Unknown", res.Breakdown.ExperienceMatch)
}

func TestAnalyzeNoIndustryKeywords(t *testing.T) {
	res, err := Analyze("Friendly barista needed", "Coffee lover")
	require.NoError(t, err)
	assert.Equal(t, 50, res.ExperienceAnalysis.IndustryFit.Score)
	assert.Equal(t, "Based on relevant industry keywords and context", res.ExperienceAnalysis.IndustryFit.Description)
}

func TestEngineOptions(t *testing.T) {
	e := New(WithSkills([]string{"Go", "Rust"}), WithIndustryKeywords([]string{"Fintech"}))
	res, err := e.Analyze("Fintech team using Go and Rust", "Rust hobbyist")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rust"}, res.MatchedSkills)
	assert.Equal(t, []string{"Go"}, res.MissingSkills)
	assert.Equal(t, 0, res.ExperienceAnalysis.IndustryFit.Score)
	assert.Equal(t, 50.0, res.Breakdown.SkillMatchPercent)
}
