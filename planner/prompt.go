package planner

import (
	"fmt"
	"strings"
)

// Prompt represents the message pair sent to the LLM.
type Prompt struct {
	System string
	User   string
}

// Section markers the critic prompt demands. The refined-plan marker is the
// fixed boundary between assessment and rewritten plan in the critic's single
// completion; SplitCriticOutput relies on it.
const (
	assessmentMarker  = "## Assessment"
	refinedPlanMarker = "## Refined Plan"
)

const generatorSystem = "You are an expert learning coach and curriculum designer specialising in " +
	"onboarding experienced developers into new topics. " +
	"Design every plan so difficulty increases slowly and consistently across all five days, " +
	"ending on Friday with a small but realistic exercise that mirrors work found in a " +
	"production codebase. " +
	"Never introduce more than one new concept per day. " +
	"Never make a day feel overwhelming. " +
	"Always explain why each concept matters before showing how it works. " +
	"Be concise but complete: finishing all five days is the top priority. " +
	"Never sacrifice coverage of a day for extra detail on an earlier one."

const criticSystem = "You are an expert learning plan critic. Your job is to rigorously evaluate a " +
	"generated learning plan and produce a meaningfully improved version. " +
	"Assess the plan on four criteria: " +
	"(1) Difficulty progression: does it increase gradually across all five days without sudden spikes? " +
	"(2) Resource credibility: are the resources credible, specific, and genuinely useful rather than vague or generic? " +
	"(3) Exercise practicality: can each exercise realistically be completed in 30-60 minutes " +
	"and does it build real, transferable skill? " +
	"(4) Confidence outcome: will someone who completes this plan feel genuinely ready to work " +
	"professionally with the topic by Friday? " +
	"Be specific and direct in your assessment. Name exactly what is weak and why. " +
	"Then produce a refined plan that concretely fixes every issue you identified. " +
	"The refined plan must use the same day-by-day format as the original."

// BuildGeneratorPrompt builds the first-stage prompt. Pure function of its
// inputs: no network or state access.
func BuildGeneratorPrompt(topic string, profile Profile) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a structured 1-week learning plan for the topic: %q\n\n", topic)
	fmt.Fprintf(&sb, "Learner familiarity: %s (%s).\n", profile.Label, profile.Audience)
	fmt.Fprintf(&sb, "Day 1 approach: %s\n", profile.Day1Approach)
	fmt.Fprintf(&sb, "Week outcome: %s\n\n", profile.WeekOutcome)
	sb.WriteString("Cover Monday through Friday only. For each day provide exactly:\n\n")
	sb.WriteString("**Day: <Day name>**\n")
	fmt.Fprintf(&sb, "- Focus: <one specific aspect of %s to concentrate on that day>\n", topic)
	sb.WriteString("- Resources:\n")
	sb.WriteString("  1. <Resource name> - <one-sentence description and where to find it>\n")
	sb.WriteString("  2. <Resource name> - <one-sentence description and where to find it>\n")
	sb.WriteString("- Exercise: <a small, concrete hands-on activity completable in 30-60 minutes>\n\n")
	sb.WriteString("Build each day on the previous so the plan progresses logically, starting from " +
		"the Day 1 approach above and ending with a production-ready exercise on Friday.\n")
	return Prompt{System: generatorSystem, User: sb.String()}
}

// BuildCriticPrompt builds the second-stage prompt with the full draft
// embedded. Pure function of its inputs.
func BuildCriticPrompt(topic string, profile Profile, draft string) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Below is a 1-week learning plan for the topic %q written for a learner "+
		"at the %q familiarity level.\n\n", topic, profile.Label)
	sb.WriteString("Evaluate it, then produce an improved version. Your response must use this " +
		"exact structure with no text outside it:\n\n")
	fmt.Fprintf(&sb, "%s\n", assessmentMarker)
	sb.WriteString("<Your critique covering difficulty progression, resource credibility, " +
		"exercise practicality, and confidence outcome. Be specific about what is weak and why.>\n\n")
	fmt.Fprintf(&sb, "%s\n", refinedPlanMarker)
	sb.WriteString("<The improved Monday-Friday plan using the same format as the original. " +
		"Fix every issue raised in your assessment.>\n\n")
	sb.WriteString("---\nOriginal plan:\n")
	sb.WriteString(draft)
	sb.WriteString("\n")
	return Prompt{System: criticSystem, User: sb.String()}
}
