package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockLLMStreamMatchesComplete(t *testing.T) {
	profile, _ := Resolve(1)
	prompt := BuildGeneratorPrompt("Terraform", profile)

	full, err := MockLLM{}.Complete(context.Background(), prompt)
	require.NoError(t, err)

	chunks, err := MockLLM{}.Stream(context.Background(), prompt)
	require.NoError(t, err)
	streamed, err := Aggregate(chunks, nil)
	require.NoError(t, err)

	require.Equal(t, full, streamed)
}

func TestMockLLMAnswersCriticPromptInTwoParts(t *testing.T) {
	profile, _ := Resolve(2)
	raw, err := MockLLM{}.Complete(context.Background(), BuildCriticPrompt("Terraform", profile, "draft"))
	require.NoError(t, err)

	critique, refined := SplitCriticOutput(raw)
	require.NotEmpty(t, critique)
	require.NotEmpty(t, refined)
	require.Contains(t, refined, "**Day: Friday**")
}
