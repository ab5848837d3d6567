package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCriticOutputWithMarker(t *testing.T) {
	raw := "## Assessment\nThe Monday resources are vague.\n\n" +
		"## Refined Plan\n**Day: Monday**\n- Focus: sharper fundamentals\n"

	critique, refined := SplitCriticOutput(raw)
	require.Equal(t, "The Monday resources are vague.", critique)
	require.Equal(t, "**Day: Monday**\n- Focus: sharper fundamentals", refined)
}

func TestSplitCriticOutputWithoutMarker(t *testing.T) {
	// A critic that ignores the format contract still yields a usable plan.
	raw := "  **Day: Monday**\n- Focus: fundamentals\n"

	critique, refined := SplitCriticOutput(raw)
	require.Empty(t, critique)
	require.Equal(t, "**Day: Monday**\n- Focus: fundamentals", refined)
}

func TestSplitCriticOutputEmptyInput(t *testing.T) {
	critique, refined := SplitCriticOutput("   \n  ")
	require.Empty(t, critique)
	require.Empty(t, refined)
}
