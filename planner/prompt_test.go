package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildGeneratorPromptEmbedsTopicAndProfile(t *testing.T) {
	profile, err := Resolve(1)
	require.NoError(t, err)

	prompt := BuildGeneratorPrompt("Apache Kafka", profile)
	require.NotEmpty(t, prompt.System)
	require.Contains(t, prompt.User, `"Apache Kafka"`)
	require.Contains(t, prompt.User, profile.Label)
	require.Contains(t, prompt.User, profile.Audience)
	require.Contains(t, prompt.User, profile.Day1Approach)
	require.Contains(t, prompt.User, profile.WeekOutcome)

	// The structural contract: five weekdays, two resources, one exercise.
	require.Contains(t, prompt.User, "Monday through Friday")
	require.Contains(t, prompt.User, "- Focus:")
	require.Contains(t, prompt.User, "  1. <Resource name>")
	require.Contains(t, prompt.User, "  2. <Resource name>")
	require.Contains(t, prompt.User, "- Exercise:")
}

func TestBuildCriticPromptEmbedsDraftAndCriteria(t *testing.T) {
	profile, err := Resolve(2)
	require.NoError(t, err)
	draft := "**Day: Monday**\n- Focus: fundamentals"

	prompt := BuildCriticPrompt("Docker", profile, draft)
	require.Contains(t, prompt.User, `"Docker"`)
	require.Contains(t, prompt.User, profile.Label)
	require.Contains(t, prompt.User, draft)
	require.Contains(t, prompt.User, assessmentMarker)
	require.Contains(t, prompt.User, refinedPlanMarker)

	for _, criterion := range []string{
		"Difficulty progression",
		"Resource credibility",
		"Exercise practicality",
		"Confidence outcome",
	} {
		require.Contains(t, prompt.System, criterion)
	}
}

func TestPromptBuildersArePure(t *testing.T) {
	profile, err := Resolve(3)
	require.NoError(t, err)

	first := BuildGeneratorPrompt("Redis", profile)
	second := BuildGeneratorPrompt("Redis", profile)
	require.Equal(t, first, second)

	firstCritic := BuildCriticPrompt("Redis", profile, "draft")
	secondCritic := BuildCriticPrompt("Redis", profile, "draft")
	require.Equal(t, firstCritic, secondCritic)
}
