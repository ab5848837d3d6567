// Package report renders completed runs for display and persists the refined
// plan. Rendering is a pure function of the run record; verbosity only
// changes which sections are shown, never their content.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ar0000n/learning-planner/planner"
)

const dividerWidth = 60

// Display labels for the verbose sections.
const (
	LabelGenerator     = "Generator Agent"
	LabelCriticReview  = "Critic Agent — evaluating"
	LabelCriticRefined = "Critic Agent — refined plan"
)

// Section is one display block of a completed run.
type Section struct {
	Label string
	Body  string
}

// Render produces the display sections for a run. Non-verbose is the refined
// plan alone; verbose prepends the draft and the critic's assessment. The
// refined plan body is byte-identical in both modes.
func Render(rec *planner.RunRecord, verbose bool) []Section {
	if !verbose {
		return []Section{{Body: rec.RefinedPlan}}
	}
	return []Section{
		{Label: LabelGenerator, Body: rec.DraftPlan},
		{Label: LabelCriticReview, Body: rec.Critique},
		{Label: LabelCriticRefined, Body: rec.RefinedPlan},
	}
}

// WriteSections prints sections with the fixed-width dividers of the CLI.
// The last section is always the plan itself and is framed by the title line
// and the closing rules.
func WriteSections(w io.Writer, topic string, sections []Section) {
	if len(sections) == 0 {
		return
	}
	for _, s := range sections[:len(sections)-1] {
		WriteHeader(w, s.Label)
		fmt.Fprintln(w, s.Body)
	}
	last := sections[len(sections)-1]
	if last.Label != "" {
		WriteHeader(w, last.Label)
	}
	WritePlan(w, topic, last.Body)
}

// WriteHeader prints a labelled section divider.
func WriteHeader(w io.Writer, label string) {
	rule := strings.Repeat("─", dividerWidth)
	fmt.Fprintf(w, "\n%s\n %s\n%s\n\n", rule, label, rule)
}

// WritePlan prints the plan body bounded by the fixed-width delimiter lines.
func WritePlan(w io.Writer, topic, body string) {
	rule := strings.Repeat("=", dividerWidth)
	fmt.Fprintf(w, "1-Week Learning Plan: %s\n", topic)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, body)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "Plan complete. Good luck with your studies!")
}
