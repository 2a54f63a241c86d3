package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sgirard84/airworthy/internal/model"
)

func TestSupportsUnicode_NonFileWriter(t *testing.T) {
	t.Parallel()

	require.False(t, supportsUnicode(&bytes.Buffer{}))
	require.False(t, supportsUnicode(nil))
}

func TestFormatStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     model.Status
		useUnicode bool
		want       string
	}{
		{"applicable unicode", model.StatusApplicable, true, "🔴 yes"},
		{"applicable ascii", model.StatusApplicable, false, "[AD] yes"},
		{"not affected ascii", model.StatusNotAffected, false, "[OK] no"},
		{"not applicable ascii", model.StatusNotApplicable, false, "[--] not_applicable"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, formatStatus(tt.status, tt.useUnicode))
		})
	}
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", truncateString("short", 10))
	require.Equal(t, "exactly-10", truncateString("exactly-10", 10))
	require.Equal(t, "this is...", truncateString("this is far too long", 10))
}
