package matching

import (
	"fmt"
	"strings"
)

// Priority ranks an action item.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// ActionItem is a prioritized next step for the candidate.
type ActionItem struct {
	Priority Priority `json:"priority"`
	Text     string   `json:"text"`
}

// GenerateActionItems derives next steps from the skill gap and the score.
// Conditional items come first, followed by the two that always apply.
func GenerateActionItems(missingSkills []string, score int) []ActionItem {
	items := make([]ActionItem, 0, 5)
	if score < 40 {
		items = append(items, ActionItem{
			Priority: PriorityHigh,
			Text:     "Major resume overhaul needed - consider restructuring entire resume",
		})
	}
	if len(missingSkills) > 5 {
		items = append(items, ActionItem{
			Priority: PriorityHigh,
			Text:     fmt.Sprintf("Add %s skills through projects or training", strings.Join(firstN(missingSkills, 3), ", ")),
		})
	}
	if len(missingSkills) > 2 {
		items = append(items, ActionItem{
			Priority: PriorityMedium,
			Text:     "Include relevant coursework or online certifications",
		})
	}
	items = append(items,
		ActionItem{Priority: PriorityMedium, Text: "Optimize resume formatting for ATS compatibility"},
		ActionItem{Priority: PriorityLow, Text: "Add quantifiable achievements and metrics to experience section"},
	)
	return items
}
