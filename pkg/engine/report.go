package engine

import (
	"encoding/json"
	"fmt"
	"io"
)

// EpochReport summarizes one epoch.
type EpochReport struct {
	Epoch         int                `json:"epoch"`
	BestScore     float64            `json:"best_score"`
	AvgScore      float64            `json:"avg_score"`
	BestCandidate string             `json:"best_candidate"`
	PoolSize      int                `json:"pool_size"`
	Deduped       int                `json:"deduped"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
}

// Report summarizes the entire run.
type Report struct {
	RunID         string        `json:"run_id"`
	Config        Config        `json:"config"`
	Epochs        []EpochReport `json:"epochs,omitempty"`
	BestCandidate string        `json:"best_candidate"`
	BestScore     float64       `json:"best_score"`
}

// WriteTextEpoch writes an epoch report in human-readable form.
func WriteTextEpoch(w io.Writer, r EpochReport) {
	fmt.Fprintf(w, "Epoch %4d | Best: %.6g | Avg: %.6g | %s\n",
		r.Epoch, r.BestScore, r.AvgScore, r.BestCandidate)
}

// WriteTextFinal writes the final report in human-readable form.
func WriteTextFinal(w io.Writer, r *Report) {
	fmt.Fprintln(w, "\n========== FINAL RESULT ==========")
	fmt.Fprintf(w, "Run:       %s\n", r.RunID)
	fmt.Fprintf(w, "Direction: %s\n", r.Config.Direction)
	fmt.Fprintf(w, "Epochs:    %d\n", len(r.Epochs))
	fmt.Fprintf(w, "Best:      %s\n", r.BestCandidate)
	fmt.Fprintf(w, "Score:     %.6g\n", r.BestScore)
	fmt.Fprintln(w, "==================================")
}

// WriteJSONFinal writes the final report as indented JSON.
func WriteJSONFinal(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
