package planner

import "strings"

// SplitCriticOutput separates the critic's single completion into assessment
// text and refined plan using the fixed section marker the critic prompt
// demands. When the marker is absent the whole text is treated as the refined
// plan with an empty critique; the plan body is never validated beyond that.
func SplitCriticOutput(raw string) (critique, refined string) {
	text := strings.TrimSpace(raw)
	before, after, found := strings.Cut(text, refinedPlanMarker)
	if !found {
		return "", text
	}
	critique = strings.TrimSpace(strings.Replace(before, assessmentMarker, "", 1))
	refined = strings.TrimSpace(after)
	return critique, refined
}
