package directive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	airworthyerrors "github.com/sgirard84/airworthy/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadRules reads a rules file from disk, decodes the directive records and
// validates each one. The format is chosen by extension: .json decodes as
// JSON, .yaml/.yml as YAML; anything else tries JSON first, then YAML.
func LoadRules(path string) ([]*Directive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, airworthyerrors.NewParseError(path, 0, err)
	}

	records, err := decodeRules(path, data)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(records))
	directives := make([]*Directive, 0, len(records))
	for i := range records {
		d := &records[i]
		if err := Validate(d); err != nil {
			return nil, airworthyerrors.NewValidationError(
				fmt.Sprintf("directives[%d]", i),
				fmt.Sprintf("invalid directive record: %v", err),
				err,
			)
		}
		if prev, exists := seen[d.ID]; exists {
			return nil, airworthyerrors.NewValidationError(
				fmt.Sprintf("directives[%d].directive_id", i),
				fmt.Sprintf("duplicate directive_id %q (first seen at index %d)", d.ID, prev),
				nil,
			)
		}
		seen[d.ID] = i
		directives = append(directives, d)
	}

	return directives, nil
}

func decodeRules(path string, data []byte) ([]Directive, error) {
	var records []Directive

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, airworthyerrors.NewParseError(path, 0, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, airworthyerrors.NewParseError(path, extractLine(err), err)
		}
	default:
		if jsonErr := json.Unmarshal(data, &records); jsonErr != nil {
			if yamlErr := yaml.Unmarshal(data, &records); yamlErr != nil {
				return nil, airworthyerrors.NewParseError(path, 0, jsonErr)
			}
		}
	}

	return records, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
