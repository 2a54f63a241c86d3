package aircraft

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	airworthyerrors "github.com/sgirard84/airworthy/pkg/errors"
)

// LoadFleet reads a fleet file holding an array of aircraft records and
// validates each one. Format dispatch mirrors the rules loader: extension
// first, then JSON with a YAML fallback.
func LoadFleet(path string) ([]*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, airworthyerrors.NewParseError(path, 0, err)
	}

	var records []Configuration
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, airworthyerrors.NewParseError(path, 0, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, airworthyerrors.NewParseError(path, 0, err)
		}
	default:
		if jsonErr := json.Unmarshal(data, &records); jsonErr != nil {
			if yamlErr := yaml.Unmarshal(data, &records); yamlErr != nil {
				return nil, airworthyerrors.NewParseError(path, 0, jsonErr)
			}
		}
	}

	fleet := make([]*Configuration, 0, len(records))
	for i := range records {
		cfg := &records[i]
		if err := Validate(cfg); err != nil {
			return nil, airworthyerrors.NewValidationError(
				fmt.Sprintf("fleet[%d]", i),
				fmt.Sprintf("invalid aircraft record: %v", err),
				err,
			)
		}
		fleet = append(fleet, cfg)
	}

	return fleet, nil
}
