package gradient

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gradgen/gradgen/pkg/errors"
)

var validate = newValidator()

// newValidator builds the struct validator with the package's color rule
// registered. The "hexrgb" tag delegates to ParseHex so every entry point
// (struct validation, UpdateStop, the stop PATCH API) accepts exactly the
// same "#rrggbb" form; the stock hexcolor tag also admits "#fff", which
// the sampler cannot parse.
func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("hexrgb", func(fl validator.FieldLevel) bool {
		_, err := ParseHex(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks the whole config against its declared domains and the
// structural invariants (minimum stop count, known type, sorted offsets are
// not required on input — callers get a sorted copy back from Normalize).
// The returned error carries a machine-readable code for the first failing
// field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return convertValidationError(err)
	}
	// Stop IDs must be present and unique; validator tags cannot express this.
	seen := make(map[string]struct{}, len(c.Stops))
	for _, s := range c.Stops {
		if s.ID == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "stop missing id")
		}
		if _, dup := seen[s.ID]; dup {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate stop id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// Normalize validates and returns a sorted copy, filling in missing stop IDs
// and defaulting omitted noise parameters for configs loaded from
// hand-written files.
func (c Config) Normalize() (Config, error) {
	out := c.Clone()
	for i := range out.Stops {
		if out.Stops[i].ID == "" {
			out.Stops[i].ID = NewStopID()
		}
	}
	def := Default().Noise
	if out.Noise.BaseFrequency == 0 {
		out.Noise.BaseFrequency = def.BaseFrequency
	}
	if out.Noise.NumOctaves == 0 {
		out.Noise.NumOctaves = def.NumOctaves
	}
	if err := out.Validate(); err != nil {
		return c, err
	}
	return out.Sorted(), nil
}

// convertValidationError maps validator failures onto coded errors.
func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	ve := ves[0]
	field := strings.ToLower(ve.StructNamespace())
	code := errors.ErrCodeInvalidConfig
	switch {
	case strings.Contains(field, "color"):
		code = errors.ErrCodeInvalidColor
	case strings.Contains(field, "offset"):
		code = errors.ErrCodeInvalidOffset
	case strings.Contains(field, "angle"):
		code = errors.ErrCodeInvalidAngle
	case strings.Contains(field, "noise"):
		code = errors.ErrCodeInvalidNoise
	case strings.HasSuffix(field, ".type"):
		code = errors.ErrCodeInvalidType
	case strings.HasSuffix(field, ".stops") && ve.Tag() == "min":
		code = errors.ErrCodeMinStops
	}
	return errors.Wrap(code, err, "%s failed validation for tag %q", field, ve.Tag())
}
