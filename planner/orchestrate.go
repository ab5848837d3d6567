package planner

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Stage identifies a pipeline phase, reported through Orchestrator.OnStage as
// each phase begins.
type Stage string

const (
	StageGenerating Stage = "generating"
	StageCritiquing Stage = "critiquing"
)

// RunRecord is the immutable result of one pipeline invocation. It is only
// produced when both stages completed; a failed run returns no record at all.
type RunRecord struct {
	Topic       string    `json:"topic"`
	Familiarity Profile   `json:"familiarity"`
	DraftPlan   string    `json:"draft_plan"`
	Critique    string    `json:"critique"`
	RefinedPlan string    `json:"refined_plan"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Orchestrator sequences the Generator and Critic stages over one completion
// client. At most one provider call is in flight at any time, and the critic
// is never invoked without a complete draft.
type Orchestrator struct {
	llm CompletionClient

	// Echo receives generator chunks live during streaming runs. Optional.
	Echo func(string)
	// OnStage is notified as each pipeline stage begins. Optional.
	OnStage func(Stage)
}

func NewOrchestrator(llm CompletionClient) (*Orchestrator, error) {
	if llm == nil {
		return nil, errors.New("completion client is required")
	}
	return &Orchestrator{llm: llm}, nil
}

// Run executes the Generator stage followed by the Critic stage and assembles
// the RunRecord. The generator call streams (with live echo) when stream is
// set; the critic call is always a single atomic completion. Any error aborts
// the whole run.
func (o *Orchestrator) Run(ctx context.Context, topic string, profile Profile, stream bool) (*RunRecord, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, &ValidationError{Reason: "topic must not be empty"}
	}

	o.notify(StageGenerating)
	draft, err := o.draft(ctx, topic, profile, stream)
	if err != nil {
		return nil, err
	}

	o.notify(StageCritiquing)
	raw, err := o.llm.Complete(ctx, BuildCriticPrompt(topic, profile, draft))
	if err != nil {
		return nil, err
	}
	critique, refined := SplitCriticOutput(raw)
	if refined == "" {
		return nil, providerErr(KindMalformedResponse, errors.New("critic returned no plan"))
	}

	return &RunRecord{
		Topic:       topic,
		Familiarity: profile,
		DraftPlan:   draft,
		Critique:    critique,
		RefinedPlan: refined,
		GeneratedAt: time.Now(),
	}, nil
}

func (o *Orchestrator) draft(ctx context.Context, topic string, profile Profile, stream bool) (string, error) {
	prompt := BuildGeneratorPrompt(topic, profile)

	var text string
	var err error
	if stream {
		var chunks <-chan Chunk
		chunks, err = o.llm.Stream(ctx, prompt)
		if err == nil {
			text, err = Aggregate(chunks, o.Echo)
		}
	} else {
		text, err = o.llm.Complete(ctx, prompt)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", providerErr(KindMalformedResponse, errors.New("generator returned no plan"))
	}
	return text, nil
}

func (o *Orchestrator) notify(stage Stage) {
	if o.OnStage != nil {
		o.OnStage(stage)
	}
}
