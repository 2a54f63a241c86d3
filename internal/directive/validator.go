package directive

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	airworthyerrors "github.com/sgirard84/airworthy/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		// Report wire field names in validation errors.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation on a single directive record. It is
// the model-construction boundary: the evaluator assumes records that pass
// here are structurally sound and re-checks only the constraint variant.
func Validate(d *Directive) error {
	if d == nil {
		return airworthyerrors.NewValidationError("directive", "directive is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(d); err != nil {
		return convertValidationError(err)
	}

	if err := validateMSNConstraint(d.Rules.MSN); err != nil {
		return err
	}

	if err := validateScalarMap("applicability_rules.additional_constraints", d.Rules.AdditionalConstraints); err != nil {
		return err
	}

	return nil
}

// validateMSNConstraint enforces the tagged-union invariant: a known
// discriminator with its variant payload fully populated.
func validateMSNConstraint(c MSNConstraint) error {
	switch c.kind() {
	case ConstraintAll:
		return nil
	case ConstraintRange:
		if c.Range == nil {
			return airworthyerrors.NewValidationError("msn_constraint", "range constraint requires both min and max bounds", nil)
		}
		if c.Range.Min > c.Range.Max {
			return airworthyerrors.NewValidationError("msn_constraint", fmt.Sprintf("range constraint has min %d greater than max %d", c.Range.Min, c.Range.Max), nil)
		}
		return nil
	case ConstraintList:
		if len(c.Values) == 0 {
			return airworthyerrors.NewValidationError("msn_constraint", "list constraint requires a non-empty values array", nil)
		}
		return nil
	default:
		return airworthyerrors.NewValidationError("msn_constraint", fmt.Sprintf("unknown constraint type %q", c.Type), nil)
	}
}

// validateScalarMap keeps the reserved open mappings within their declared
// shape: string keys with scalar values only.
func validateScalarMap(field string, m map[string]any) error {
	for key, value := range m {
		switch value.(type) {
		case nil, string, bool, int, int64, float64:
		default:
			return airworthyerrors.NewValidationError(field, fmt.Sprintf("key %q has non-scalar value", key), nil)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := wireFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return airworthyerrors.NewValidationError(field, msg, err)
	}

	return airworthyerrors.NewValidationError("directive", err.Error(), err)
}

func wireFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
