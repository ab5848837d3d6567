package planner

import "strings"

// Aggregate drains a chunk sequence into the full completion text, preserving
// chunk order. The sink, when non-nil, observes every chunk in order for live
// echo; it never affects the returned text. If the sequence terminates with
// an error chunk, the partial text is discarded and the error returned.
func Aggregate(chunks <-chan Chunk, sink func(string)) (string, error) {
	var sb strings.Builder
	for chunk := range chunks {
		if chunk.Err != nil {
			return "", chunk.Err
		}
		if sink != nil {
			sink(chunk.Text)
		}
		sb.WriteString(chunk.Text)
	}
	return sb.String(), nil
}
