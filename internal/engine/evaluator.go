package engine

import (
	"fmt"
	"strings"

	"github.com/sgirard84/airworthy/internal/aircraft"
	"github.com/sgirard84/airworthy/internal/directive"
	"github.com/sgirard84/airworthy/internal/logger"
	"github.com/sgirard84/airworthy/internal/model"
	airworthyerrors "github.com/sgirard84/airworthy/pkg/errors"
)

// Evaluator runs the staged applicability decision procedure. It is
// stateless and side-effect-free per call: evaluations may run concurrently
// without coordination.
type Evaluator struct {
	log *logger.Logger
}

// New creates an evaluator. The logger may be nil.
func New(log *logger.Logger) *Evaluator {
	return &Evaluator{log: log}
}

// Evaluate produces exactly one ComplianceResult for one (directive,
// aircraft) pair via four ordered, short-circuiting stages: model
// membership, serial-number constraint, exclusion list, requirement list.
// The reason trail accumulates one entry per stage actually executed.
//
// A malformed serial-number constraint yields an EvaluationError, never a
// verdict: rules constructed in code can bypass the parser's validation, and
// a bad constraint must not silently pass or fail every aircraft.
func (e *Evaluator) Evaluate(d *directive.Directive, ac *aircraft.Configuration) (*model.ComplianceResult, error) {
	if d == nil {
		return nil, airworthyerrors.NewEvaluationError("", fmt.Errorf("directive is nil"))
	}
	if ac == nil {
		return nil, airworthyerrors.NewEvaluationError(d.ID, fmt.Errorf("aircraft configuration is nil"))
	}

	trail := make([]string, 0, 4)

	// Stage 1: model membership. Cheapest and most discriminating check,
	// so the common out-of-scope case short-circuits before any substring
	// scanning.
	if !containsModel(d.Rules.AircraftModels, ac.Model) {
		trail = append(trail, fmt.Sprintf("model check: aircraft model %q is not in the affected models list", ac.Model))
		return e.finish(d, ac, model.StatusNotApplicable, trail), nil
	}
	trail = append(trail, fmt.Sprintf("model check: aircraft model %q is in the affected models list", ac.Model))

	// Stage 2: serial-number constraint.
	msnOK, err := d.Rules.MSN.Matches(ac.MSN)
	if err != nil {
		return nil, airworthyerrors.NewEvaluationError(d.ID, err)
	}
	if !msnOK {
		trail = append(trail, fmt.Sprintf("MSN check: MSN %d does not meet the constraint (%s)", ac.MSN, d.Rules.MSN.Describe()))
		return e.finish(d, ac, model.StatusNotApplicable, trail), nil
	}
	trail = append(trail, fmt.Sprintf("MSN check: MSN %d meets the constraint (%s)", ac.MSN, d.Rules.MSN.Describe()))

	// Stage 3: exclusions. Checked before requirements: an excluding
	// modification overrides anything a requirement match could say.
	if matched, record, ok := matchAny(d.Rules.ExcludedIfMods, ac.Modifications); ok {
		trail = append(trail, fmt.Sprintf("exclusion check: aircraft has excluding modification %s (matched %q)", matched.ModID, record))
		return e.finish(d, ac, model.StatusNotAffected, trail), nil
	}
	if len(d.Rules.ExcludedIfMods) > 0 {
		trail = append(trail, "exclusion check: aircraft has no excluding modification")
	} else {
		trail = append(trail, "exclusion check: no excluded modifications specified")
	}

	// Stage 4: requirements. At least one must be present when the list is
	// non-empty; an empty list is vacuously satisfied.
	if len(d.Rules.RequiredMods) > 0 {
		matched, record, ok := matchAny(d.Rules.RequiredMods, ac.Modifications)
		if !ok {
			trail = append(trail, "requirement check: aircraft has none of the required modifications")
			return e.finish(d, ac, model.StatusNotAffected, trail), nil
		}
		trail = append(trail, fmt.Sprintf("requirement check: aircraft has required modification %s (matched %q)", matched.ModID, record))
	} else {
		trail = append(trail, "requirement check: no required modifications specified")
	}

	return e.finish(d, ac, model.StatusApplicable, trail), nil
}

func (e *Evaluator) finish(d *directive.Directive, ac *aircraft.Configuration, status model.Status, trail []string) *model.ComplianceResult {
	result := &model.ComplianceResult{
		DirectiveID:   d.ID,
		AircraftModel: ac.Model,
		MSN:           ac.MSN,
		Status:        status,
		IsAffected:    status == model.StatusApplicable,
		Reason:        strings.Join(trail, "; "),
	}

	e.log.WithDirective(d.ID).WithAircraft(ac.Model, ac.MSN).
		WithFields(map[string]any{"status": status.String()}).
		Debug("directive evaluated")

	return result
}

// containsModel is a case-sensitive exact membership test. Unknown model
// strings are not an error; they are legitimately out of scope.
func containsModel(models []string, model string) bool {
	for _, m := range models {
		if m == model {
			return true
		}
	}
	return false
}

// matchAny returns the first constraint satisfied by any of the aircraft's
// modification records, along with the record that satisfied it.
func matchAny(constraints []directive.ModificationConstraint, modifications []string) (directive.ModificationConstraint, string, bool) {
	for _, c := range constraints {
		if record, ok := c.Match(modifications); ok {
			return c, record, true
		}
	}
	return directive.ModificationConstraint{}, "", false
}
