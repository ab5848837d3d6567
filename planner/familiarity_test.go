package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveValidSelections(t *testing.T) {
	seen := map[string]bool{}
	for selection := 1; selection <= 3; selection++ {
		profile, err := Resolve(selection)
		require.NoError(t, err)
		require.NotEmpty(t, profile.Label)
		require.NotEmpty(t, profile.Audience)
		require.NotEmpty(t, profile.Day1Approach)
		require.NotEmpty(t, profile.WeekOutcome)
		require.False(t, seen[profile.Label], "profiles must be distinct")
		seen[profile.Label] = true
	}
}

func TestResolveInvalidSelection(t *testing.T) {
	for _, selection := range []int{0, -1, 4, 99} {
		_, err := Resolve(selection)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "selection %d", selection)
	}
}
