package aircraft

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	airworthyerrors "github.com/sgirard84/airworthy/pkg/errors"
)

// Configuration represents one aircraft instance under evaluation. It is a
// caller-owned value object: the engine reads it and never stores it.
type Configuration struct {
	Model         string   `json:"aircraft_model" yaml:"aircraft_model" validate:"required,notblank"`
	MSN           int      `json:"msn" yaml:"msn" validate:"required,gt=0"`
	Modifications []string `json:"modifications,omitempty" yaml:"modifications,omitempty"`
	// AdditionalInfo is reserved for data the current checks do not use
	// (flight hours, cycles, base). Preserved, never interpreted.
	AdditionalInfo map[string]any `json:"additional_info,omitempty" yaml:"additional_info,omitempty"`
}

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

// New constructs a validated aircraft configuration.
func New(model string, msn int, modifications []string) (*Configuration, error) {
	cfg := &Configuration{
		Model:         model,
		MSN:           msn,
		Modifications: append([]string(nil), modifications...),
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate performs shape validation on an aircraft record. The MSN must be
// a positive integer; the model string must be non-blank.
func Validate(cfg *Configuration) error {
	if cfg == nil {
		return airworthyerrors.NewValidationError("aircraft", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for key, value := range cfg.AdditionalInfo {
		switch value.(type) {
		case nil, string, bool, int, int64, float64:
		default:
			return airworthyerrors.NewValidationError("additional_info", fmt.Sprintf("key %q has non-scalar value", key), nil)
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
		parts := strings.Split(ve.Namespace(), ".")
		if len(parts) > 1 {
			parts = parts[1:]
		}
		field := strings.Join(parts, ".")
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return airworthyerrors.NewValidationError(field, msg, err)
	}

	return airworthyerrors.NewValidationError("aircraft", err.Error(), err)
}
