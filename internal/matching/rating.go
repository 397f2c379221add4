package matching

// Rating is the display band for a score.
type Rating struct {
	Band        string `json:"band"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// RateScore maps a score to its compatibility band.
func RateScore(score int) Rating {
	switch {
	case score >= 80:
		return Rating{Band: "excellent", Label: "Excellent Match", Description: "Your resume is highly compatible with this job role."}
	case score >= 60:
		return Rating{Band: "good", Label: "Good Match", Description: "Your resume shows good compatibility with some areas for improvement."}
	case score >= 40:
		return Rating{Band: "needs-improvement", Label: "Needs Improvement", Description: "Your resume needs significant improvements to match this role."}
	default:
		return Rating{Band: "poor", Label: "Poor Match", Description: "Major changes are needed to align with this job role."}
	}
}
