package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sgirard84/airworthy/internal/aircraft"
	"github.com/sgirard84/airworthy/internal/directive"
	"github.com/sgirard84/airworthy/internal/model"
)

func TestEvaluateFleetPreservesFleetOrder(t *testing.T) {
	t.Parallel()

	// More aircraft than workers so the pool actually schedules out of
	// lockstep; the result slice must still follow fleet order.
	fleet := make([]*aircraft.Configuration, 0, 20)
	for i := 0; i < 20; i++ {
		fleet = append(fleet, &aircraft.Configuration{Model: "MD-11", MSN: 48000 + i})
	}

	directives := []*directive.Directive{faaDirective(), easaDirective()}
	entries := New(nil).EvaluateFleet(fleet, directives)
	require.Len(t, entries, 20)

	for i, entry := range entries {
		require.Same(t, fleet[i], entry.Aircraft, "fleet index %d", i)
		require.Len(t, entry.Entries, 2)
		require.Equal(t, "FAA-2025-23-53", entry.Entries[0].DirectiveID)
		require.Equal(t, "EASA-2025-0254", entry.Entries[1].DirectiveID)
	}
}

func TestEvaluateFleetSummaries(t *testing.T) {
	t.Parallel()

	fleet := []*aircraft.Configuration{
		{Model: "MD-11", MSN: 48123},
		{Model: "A320-214", MSN: 5234},
		{Model: "A320-232", MSN: 6789, Modifications: []string{"mod 24591 (production)"}},
		{Model: "Boeing 737-800", MSN: 30123},
	}
	directives := []*directive.Directive{faaDirective(), easaDirective()}

	entries := New(nil).EvaluateFleet(fleet, directives)
	require.Len(t, entries, 4)

	require.Equal(t, model.Summary{Total: 2, Applicable: 1, NotApplicable: 1}, entries[0].Summary)
	require.Equal(t, model.Summary{Total: 2, Applicable: 1, NotApplicable: 1}, entries[1].Summary)
	require.Equal(t, model.Summary{Total: 2, NotAffected: 1, NotApplicable: 1}, entries[2].Summary)
	require.Equal(t, model.Summary{Total: 2, NotApplicable: 2}, entries[3].Summary)
}

func TestEvaluateFleetEmptyFleet(t *testing.T) {
	t.Parallel()

	entries := New(nil).EvaluateFleet(nil, []*directive.Directive{faaDirective()})
	require.Empty(t, entries)
}

func TestEvaluateFleetMatchesSequentialResults(t *testing.T) {
	t.Parallel()

	fleet := make([]*aircraft.Configuration, 0, 12)
	for i := 0; i < 12; i++ {
		fleet = append(fleet, &aircraft.Configuration{
			Model:         "A320-214",
			MSN:           5000 + i,
			Modifications: []string{fmt.Sprintf("mod %d (production)", 24590+i)},
		})
	}
	directives := []*directive.Directive{faaDirective(), easaDirective()}

	evaluator := New(nil)
	parallel := evaluator.EvaluateFleet(fleet, directives)

	for i, ac := range fleet {
		sequential := evaluator.EvaluateAll(ac, directives)
		require.Equal(t, sequential, parallel[i].Entries, "fleet index %d", i)
	}
}
