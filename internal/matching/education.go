package matching

import "strings"

// EducationLevel is an ordered degree level.
type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationBachelor
	EducationMaster
	EducationPhD
)

// Education compares the degree a job asks for with the one a resume shows.
type Education struct {
	Required EducationLevel `json:"required"`
	Found    EducationLevel `json:"found"`
	Match    bool           `json:"match"`
}

func (l EducationLevel) String() string {
	switch l {
	case EducationBachelor:
		return "Bachelor's Degree"
	case EducationMaster:
		return "Master's Degree"
	case EducationPhD:
		return "PhD"
	default:
		return labelNotSpecified
	}
}

// MarshalText renders the level with its display label.
func (l EducationLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts the display labels produced by MarshalText.
func (l *EducationLevel) UnmarshalText(text []byte) error {
	switch string(text) {
	case "PhD":
		*l = EducationPhD
	case "Master's Degree":
		*l = EducationMaster
	case "Bachelor's Degree":
		*l = EducationBachelor
	default:
		*l = EducationNone
	}
	return nil
}

// ExtractEducationLevel classifies text by the highest-priority degree keyword:
// "phd", then "master", then "bachelor".
func ExtractEducationLevel(text string) EducationLevel {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "phd"):
		return EducationPhD
	case strings.Contains(lower, "master"):
		return EducationMaster
	case strings.Contains(lower, "bachelor"):
		return EducationBachelor
	default:
		return EducationNone
	}
}

// EducationMatches reports whether found ranks at or above required.
func EducationMatches(required, found EducationLevel) bool {
	return found >= required
}

func analyzeEducation(jobText, resumeText string) Education {
	required := ExtractEducationLevel(jobText)
	found := ExtractEducationLevel(resumeText)
	return Education{
		Required: required,
		Found:    found,
		Match:    EducationMatches(required, found),
	}
}
