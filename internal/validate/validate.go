package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/config/config.go
//   type Options struct {
//       Region   string `mapstructure:"region" validate:"required,region_filter"`
//       Timezone string `mapstructure:"tz" validate:"omitempty,timezone"`
//       ...
//   }
//
// Custom tags registered here:
//   region        - a region label a country record may carry
//   region_filter - a region offered as a filter, including "All"
//   granularity   - a counter period name such as "hour"

import (
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ensigniasec/mortality/internal/stats"
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Built-in tags include: oneof, gt, timezone, etc.
		mustRegister(validatorInst, "region", func(fl validator.FieldLevel) bool {
			return slices.Contains(stats.RecordRegions(), fl.Field().String())
		})
		mustRegister(validatorInst, "region_filter", func(fl validator.FieldLevel) bool {
			return slices.Contains(stats.Regions(), fl.Field().String())
		})
		mustRegister(validatorInst, "granularity", func(fl validator.FieldLevel) bool {
			_, err := stats.ParseGranularity(fl.Field().String())
			return err == nil
		})
	})
	return validatorInst
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
