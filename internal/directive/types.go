package directive

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MSN constraint discriminator values accepted in rules files.
const (
	ConstraintAll   = "all"
	ConstraintRange = "range"
	ConstraintList  = "list"
)

// Directive represents one Airworthiness Directive rule set. Instances are
// immutable once loaded; they are owned by the registry and shared read-only
// across evaluations.
type Directive struct {
	ID               string             `json:"directive_id" yaml:"directive_id" validate:"required,min=1"`
	IssuingAuthority string             `json:"issuing_authority" yaml:"issuing_authority" validate:"required,min=1"`
	Title            string             `json:"title,omitempty" yaml:"title,omitempty"`
	EffectiveDate    string             `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`
	Summary          string             `json:"summary,omitempty" yaml:"summary,omitempty"`
	Rules            ApplicabilityRules `json:"applicability_rules" yaml:"applicability_rules"`
}

// ApplicabilityRules is the decision-relevant payload of a directive.
type ApplicabilityRules struct {
	AircraftModels []string                 `json:"aircraft_models" yaml:"aircraft_models" validate:"required,min=1,dive,notblank"`
	MSN            MSNConstraint            `json:"msn_constraint,omitempty" yaml:"msn_constraint,omitempty"`
	ExcludedIfMods []ModificationConstraint `json:"excluded_if_modifications,omitempty" yaml:"excluded_if_modifications,omitempty" validate:"omitempty,dive"`
	// RequiredMods lists modifications of which at least one must be present
	// for the directive to apply. An empty list is vacuously satisfied.
	RequiredMods []ModificationConstraint `json:"required_modifications,omitempty" yaml:"required_modifications,omitempty" validate:"omitempty,dive"`
	// AdditionalConstraints is reserved for future constraint kinds (dates,
	// flight hours, cycles, regions). Values are preserved but never
	// evaluated; unknown keys carry no behavior.
	AdditionalConstraints map[string]any `json:"additional_constraints,omitempty" yaml:"additional_constraints,omitempty"`
}

// MSNRange holds inclusive serial-number bounds. It only exists on a
// constraint when both bounds were present in the source record.
type MSNRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// MSNConstraint is the tagged union over the three serial-number constraint
// variants. Exactly one variant is meaningful at a time, selected by Type:
// "all" carries no payload, "range" carries Range, "list" carries Values.
// An absent constraint decodes to the zero value, which behaves as "all".
type MSNConstraint struct {
	Type   string    `yaml:"-"`
	Range  *MSNRange `yaml:"-"`
	Values []int     `yaml:"-"`
}

// msnEnvelope is the flat wire shape of an MSN constraint. Bounds decode
// into pointers so a half-specified range stays detectable for validation.
type msnEnvelope struct {
	Type   string `json:"type" yaml:"type"`
	Min    *int   `json:"min,omitempty" yaml:"min,omitempty"`
	Max    *int   `json:"max,omitempty" yaml:"max,omitempty"`
	Values []int  `json:"values,omitempty" yaml:"values,omitempty"`
}

func (c *MSNConstraint) fromEnvelope(env msnEnvelope) {
	c.Type = env.Type
	c.Range = nil
	c.Values = nil

	if env.Min != nil && env.Max != nil {
		c.Range = &MSNRange{Min: *env.Min, Max: *env.Max}
	}
	if len(env.Values) > 0 {
		c.Values = append([]int(nil), env.Values...)
	}
}

func (c MSNConstraint) toEnvelope() msnEnvelope {
	env := msnEnvelope{Type: c.kind()}
	if c.Range != nil {
		minCopy, maxCopy := c.Range.Min, c.Range.Max
		env.Min = &minCopy
		env.Max = &maxCopy
	}
	if len(c.Values) > 0 {
		env.Values = append([]int(nil), c.Values...)
	}
	return env
}

// kind normalizes the discriminator: a zero-value constraint (absent in the
// source record) means no serial-number restriction.
func (c MSNConstraint) kind() string {
	if c.Type == "" {
		return ConstraintAll
	}
	return c.Type
}

// UnmarshalJSON decodes the flat {type, min, max, values} envelope.
func (c *MSNConstraint) UnmarshalJSON(data []byte) error {
	var env msnEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	c.fromEnvelope(env)
	return nil
}

// MarshalJSON emits the flat envelope form.
func (c MSNConstraint) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toEnvelope())
}

// UnmarshalYAML decodes the flat envelope from YAML rules files.
func (c *MSNConstraint) UnmarshalYAML(value *yaml.Node) error {
	var env msnEnvelope
	if err := value.Decode(&env); err != nil {
		return err
	}
	c.fromEnvelope(env)
	return nil
}

// MarshalYAML emits the flat envelope form.
func (c MSNConstraint) MarshalYAML() (any, error) {
	return c.toEnvelope(), nil
}

// ModificationConstraint names a production modification or service bulletin
// together with the alternative identifiers considered equivalent to it.
type ModificationConstraint struct {
	ModID       string   `json:"mod_id" yaml:"mod_id" validate:"required,notblank"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty" validate:"omitempty,dive,notblank"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}
