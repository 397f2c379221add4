package matching

import "strings"

// SkillMatch groups the three skill sets produced by MatchSkills.
type SkillMatch struct {
	Matched    []string
	Missing    []string
	Additional []string
}

// ExtractSkills returns the catalog skills found in text, in catalog order.
func ExtractSkills(text string) []string {
	return extractSkills(defaultSkills, text)
}

func extractSkills(catalog []string, text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(catalog))
	for _, skill := range catalog {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// MatchSkills splits job skills into matched and missing, and collects
// resume skills that no job skill relates to.
//
// matched and additional use a bidirectional substring test ("REST APIs"
// relates to "REST API"). missing excludes only skills equal to a matched
// skill. The two predicates differ on purpose and must stay separate.
func MatchSkills(jobSkills, resumeSkills []string) SkillMatch {
	matched := make([]string, 0, len(jobSkills))
	for _, skill := range jobSkills {
		if relatesToAny(skill, resumeSkills) {
			matched = append(matched, skill)
		}
	}

	missing := make([]string, 0, len(jobSkills))
	for _, skill := range jobSkills {
		if !equalsAny(skill, matched) {
			missing = append(missing, skill)
		}
	}

	additional := make([]string, 0, len(resumeSkills))
	for _, skill := range resumeSkills {
		if !relatesToAny(skill, jobSkills) {
			additional = append(additional, skill)
		}
	}

	return SkillMatch{Matched: matched, Missing: missing, Additional: additional}
}

func relatesToAny(skill string, others []string) bool {
	a := strings.ToLower(skill)
	for _, other := range others {
		b := strings.ToLower(other)
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return true
		}
	}
	return false
}

func equalsAny(skill string, others []string) bool {
	a := strings.ToLower(skill)
	for _, other := range others {
		if strings.ToLower(other) == a {
			return true
		}
	}
	return false
}
