package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("ad_rules.json", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "ad_rules.json", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "ad_rules.json")
}

func TestParseErrorWithoutLineOmitsLineNumber(t *testing.T) {
	t.Parallel()

	err := NewParseError("fleet.yaml", 0, fmt.Errorf("no such file"))
	require.NotContains(t, err.Error(), ":0:")
	require.Contains(t, err.Error(), "fleet.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("directives[1].applicability_rules.aircraft_models", "must not be empty", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "directives[1].applicability_rules.aircraft_models", validationErr.Field)
	require.Contains(t, validationErr.Message, "must not be empty")
	require.Contains(t, err.Error(), "validation error")
}

func TestEvaluationErrorIncludesDirectiveContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("range constraint missing bounds")
	err := NewEvaluationError("EASA-2025-0254", underlying)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	require.Equal(t, "EASA-2025-0254", evalErr.DirectiveID)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "EASA-2025-0254")
}
