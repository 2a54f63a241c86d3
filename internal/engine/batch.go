package engine

import (
	"github.com/sgirard84/airworthy/internal/aircraft"
	"github.com/sgirard84/airworthy/internal/directive"
	"github.com/sgirard84/airworthy/internal/model"
)

// BatchEntry is the outcome of evaluating one directive in a batch. Exactly
// one of Result and Err is set: a configuration error on one directive is
// reported on its entry and never aborts the rest of the batch.
type BatchEntry struct {
	DirectiveID string
	Result      *model.ComplianceResult
	Err         error
}

// EvaluateAll evaluates one aircraft against every directive, one entry per
// directive in directive order. Pure fan-out; no decision logic of its own.
func (e *Evaluator) EvaluateAll(ac *aircraft.Configuration, directives []*directive.Directive) []BatchEntry {
	entries := make([]BatchEntry, 0, len(directives))

	for _, d := range directives {
		entry := BatchEntry{}
		if d != nil {
			entry.DirectiveID = d.ID
		}

		result, err := e.Evaluate(d, ac)
		if err != nil {
			entry.Err = err
			e.log.WithDirective(entry.DirectiveID).Error(err, "directive evaluation failed")
		} else {
			entry.Result = result
		}

		entries = append(entries, entry)
	}

	if ac != nil {
		summary := Summarize(entries)
		e.log.WithAircraft(ac.Model, ac.MSN).WithFields(map[string]any{
			"directives":     summary.Total,
			"applicable":     summary.Applicable,
			"not_affected":   summary.NotAffected,
			"not_applicable": summary.NotApplicable,
			"errors":         summary.Errors,
		}).Info("batch evaluation complete")
	}

	return entries
}

// Summarize aggregates a batch into per-status counts.
func Summarize(entries []BatchEntry) model.Summary {
	var summary model.Summary
	for _, entry := range entries {
		if entry.Err != nil {
			summary.CountError()
			continue
		}
		if entry.Result != nil {
			summary.Count(entry.Result.Status)
		}
	}
	return summary
}
