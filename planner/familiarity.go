package planner

// Profile carries the pacing and depth hints for one familiarity tier. Both
// prompt builders embed every field, so the tier steers tone and difficulty
// without any stage-specific logic.
type Profile struct {
	Label        string `json:"label"`
	Audience     string `json:"audience"`
	Day1Approach string `json:"day1_approach"`
	WeekOutcome  string `json:"week_outcome"`
}

// Levels lists the selectable familiarity tiers in menu order. Defined once,
// never mutated.
var Levels = []Profile{
	{
		Label:    "Novice",
		Audience: "Never worked with it before",
		Day1Approach: "Build confidence through pure concepts, with no setup and no code. " +
			"Assume zero prior knowledge of the topic itself, though the learner is a " +
			"competent developer, and briefly define every term introduced.",
		WeekOutcome: "By Friday the learner should feel genuinely ready to contribute to a real codebase.",
	},
	{
		Label:    "A little familiar",
		Audience: "Seen it or done a quick tutorial",
		Day1Approach: "Consolidate and sharpen existing mental models rather than re-explain " +
			"basics, then pick up pace gradually from Day 2 onward, filling gaps and " +
			"building toward production patterns.",
		WeekOutcome: "By Friday the learner should feel confident enough to own a feature in a professional project.",
	},
	{
		Label:    "Quite familiar",
		Audience: "Used it in small projects or prototypes",
		Day1Approach: "Challenge and deepen existing knowledge: focus on mental models, edge " +
			"cases, and common misconceptions rather than re-covering known ground, then " +
			"progress quickly toward advanced patterns, best practices, and production-readiness.",
		WeekOutcome: "By Friday the learner should feel ready to architect and lead work in this area.",
	},
}

// Resolve maps a 1-based menu selection to its Profile.
func Resolve(selection int) (Profile, error) {
	if selection < 1 || selection > len(Levels) {
		return Profile{}, &ValidationError{Reason: "familiarity selection must be between 1 and 3"}
	}
	return Levels[selection-1], nil
}
