package directive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	airworthyerrors "github.com/sgirard84/airworthy/pkg/errors"
)

const sampleRulesJSON = `[
  {
    "directive_id": "FAA-2025-23-53",
    "issuing_authority": "FAA",
    "title": "Fuselage crown inspection",
    "applicability_rules": {
      "aircraft_models": ["MD-11", "MD-11F", "DC-10-30F", "MD-10-10F"],
      "msn_constraint": {"type": "all"}
    }
  },
  {
    "directive_id": "EASA-2025-0254",
    "issuing_authority": "EASA",
    "applicability_rules": {
      "aircraft_models": ["A320-214", "A320-232", "A321-111"],
      "msn_constraint": {"type": "all"},
      "excluded_if_modifications": [
        {"mod_id": "24591"},
        {"mod_id": "24977"},
        {"mod_id": "A320-57-1089"}
      ]
    }
  }
]`

const sampleRulesYAML = `- directive_id: CAA-2025-0012
  issuing_authority: UK CAA
  applicability_rules:
    aircraft_models:
      - A330-243
    msn_constraint:
      type: range
      min: 200
      max: 900
`

func writeRulesFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadRulesJSON(t *testing.T) {
	t.Parallel()

	directives, err := LoadRules(writeRulesFile(t, "ad_rules.json", sampleRulesJSON))
	require.NoError(t, err)
	require.Len(t, directives, 2)
	require.Equal(t, "FAA-2025-23-53", directives[0].ID)
	require.Equal(t, "EASA-2025-0254", directives[1].ID)
	require.Len(t, directives[1].Rules.ExcludedIfMods, 3)
}

func TestLoadRulesYAML(t *testing.T) {
	t.Parallel()

	directives, err := LoadRules(writeRulesFile(t, "ad_rules.yaml", sampleRulesYAML))
	require.NoError(t, err)
	require.Len(t, directives, 1)
	require.Equal(t, ConstraintRange, directives[0].Rules.MSN.Type)
	require.NotNil(t, directives[0].Rules.MSN.Range)
	require.Equal(t, 200, directives[0].Rules.MSN.Range.Min)
}

func TestLoadRulesPreservesFileOrder(t *testing.T) {
	t.Parallel()

	directives, err := LoadRules(writeRulesFile(t, "ad_rules.json", sampleRulesJSON))
	require.NoError(t, err)

	ids := make([]string, 0, len(directives))
	for _, d := range directives {
		ids = append(ids, d.ID)
	}
	require.Equal(t, []string{"FAA-2025-23-53", "EASA-2025-0254"}, ids)
}

func TestLoadRulesUnknownExtensionFallsBackToJSONThenYAML(t *testing.T) {
	t.Parallel()

	directives, err := LoadRules(writeRulesFile(t, "rules.rules", sampleRulesJSON))
	require.NoError(t, err)
	require.Len(t, directives, 2)

	directives, err = LoadRules(writeRulesFile(t, "rules.pack", sampleRulesYAML))
	require.NoError(t, err)
	require.Len(t, directives, 1)
}

func TestLoadRulesErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		want     any
	}{
		{
			name:     "undecodable json yields parse error",
			file:     "broken.json",
			contents: `[{"directive_id": }`,
			want:     new(*airworthyerrors.ParseError),
		},
		{
			name: "missing aircraft models yields validation error",
			file: "rules.json",
			contents: `[{"directive_id": "X-1", "issuing_authority": "FAA",
				"applicability_rules": {"aircraft_models": []}}]`,
			want: new(*airworthyerrors.ValidationError),
		},
		{
			name: "unknown msn constraint type yields validation error",
			file: "rules.json",
			contents: `[{"directive_id": "X-1", "issuing_authority": "FAA",
				"applicability_rules": {"aircraft_models": ["MD-11"], "msn_constraint": {"type": "modulo"}}}]`,
			want: new(*airworthyerrors.ValidationError),
		},
		{
			name: "duplicate directive id yields validation error",
			file: "rules.json",
			contents: `[
				{"directive_id": "X-1", "issuing_authority": "FAA", "applicability_rules": {"aircraft_models": ["MD-11"]}},
				{"directive_id": "X-1", "issuing_authority": "FAA", "applicability_rules": {"aircraft_models": ["MD-11"]}}
			]`,
			want: new(*airworthyerrors.ValidationError),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadRules(writeRulesFile(t, tc.file, tc.contents))
			require.Error(t, err)

			switch target := tc.want.(type) {
			case **airworthyerrors.ParseError:
				require.ErrorAs(t, err, target)
			case **airworthyerrors.ValidationError:
				require.ErrorAs(t, err, target)
			}
		})
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadRules(filepath.Join(t.TempDir(), "absent.json"))
	var parseErr *airworthyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
