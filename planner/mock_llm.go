package planner

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM is a deterministic offline implementation for local debugging and
// tests; it never calls an external model. Critic prompts are recognised by
// the refined-plan marker they carry and answered in the two-part format.
type MockLLM struct{}

var mockDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	if strings.Contains(prompt.User, refinedPlanMarker) {
		var sb strings.Builder
		sb.WriteString(assessmentMarker + "\n")
		sb.WriteString("Progression is steady, resources are generic, exercises fit the time box, " +
			"and the Friday exercise needs a stronger production flavour.\n\n")
		sb.WriteString(refinedPlanMarker + "\n")
		sb.WriteString(mockPlan("refined"))
		return sb.String(), nil
	}
	return mockPlan("draft"), nil
}

// Stream replays the atomic completion as a short chunk sequence.
func (m MockLLM) Stream(ctx context.Context, prompt Prompt) (<-chan Chunk, error) {
	text, err := m.Complete(ctx, prompt)
	out := make(chan Chunk, 8)
	go func() {
		defer close(out)
		if err != nil {
			out <- Chunk{Err: err}
			return
		}
		for _, line := range strings.SplitAfter(text, "\n") {
			if line != "" {
				out <- Chunk{Text: line}
			}
		}
	}()
	return out, nil
}

func mockPlan(variant string) string {
	var sb strings.Builder
	for _, day := range mockDays {
		fmt.Fprintf(&sb, "**Day: %s**\n", day)
		fmt.Fprintf(&sb, "- Focus: %s focus for %s\n", variant, day)
		sb.WriteString("- Resources:\n")
		fmt.Fprintf(&sb, "  1. Official documentation - the canonical reference for %s.\n", day)
		fmt.Fprintf(&sb, "  2. A hands-on tutorial - a walkthrough matched to %s.\n", day)
		fmt.Fprintf(&sb, "- Exercise: a 30-60 minute %s exercise for %s.\n\n", variant, day)
	}
	return strings.TrimSpace(sb.String())
}
