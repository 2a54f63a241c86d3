package aircraft

import (
	"testing"

	"github.com/stretchr/testify/require"

	airworthyerrors "github.com/sgirard84/airworthy/pkg/errors"
)

func TestNewBuildsValidatedConfiguration(t *testing.T) {
	t.Parallel()

	cfg, err := New("A320-214", 5234, []string{"SB A320-57-1089 Rev 04"})
	require.NoError(t, err)
	require.Equal(t, "A320-214", cfg.Model)
	require.Equal(t, 5234, cfg.MSN)
	require.Equal(t, []string{"SB A320-57-1089 Rev 04"}, cfg.Modifications)
}

func TestNewCopiesModificationSlice(t *testing.T) {
	t.Parallel()

	mods := []string{"mod 24591 (production)"}
	cfg, err := New("A320-232", 6789, mods)
	require.NoError(t, err)

	mods[0] = "mutated"
	require.Equal(t, "mod 24591 (production)", cfg.Modifications[0])
}

func TestValidateRejectsMalformedRecords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		cfg       *Configuration
		wantField string
	}{
		{
			name:      "missing model",
			cfg:       &Configuration{MSN: 48123},
			wantField: "aircraft_model",
		},
		{
			name:      "blank model",
			cfg:       &Configuration{Model: "   ", MSN: 48123},
			wantField: "aircraft_model",
		},
		{
			name:      "zero msn",
			cfg:       &Configuration{Model: "MD-11", MSN: 0},
			wantField: "msn",
		},
		{
			name:      "negative msn",
			cfg:       &Configuration{Model: "MD-11", MSN: -5},
			wantField: "msn",
		},
		{
			name: "non-scalar additional info",
			cfg: &Configuration{
				Model:          "MD-11",
				MSN:            48123,
				AdditionalInfo: map[string]any{"engines": []string{"CF6"}},
			},
			wantField: "additional_info",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.cfg)
			require.Error(t, err)

			var validationErr *airworthyerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, validationErr.Field, tc.wantField)
		})
	}
}

func TestValidateAllowsScalarAdditionalInfo(t *testing.T) {
	t.Parallel()

	cfg := &Configuration{
		Model: "MD-11",
		MSN:   48123,
		AdditionalInfo: map[string]any{
			"flight_hours": 61234.5,
			"operator":     "cargo",
			"leased":       false,
		},
	}
	require.NoError(t, Validate(cfg))
}

func TestValidateNilConfiguration(t *testing.T) {
	t.Parallel()

	err := Validate(nil)
	var validationErr *airworthyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
