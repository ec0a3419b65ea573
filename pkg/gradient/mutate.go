package gradient

import (
	"math"

	"github.com/gradgen/gradgen/pkg/errors"
)

// AddStop inserts a new stop at the default offset with a pseudo-random
// color and returns the updated config together with the new stop. Existing
// stops keep their colors and offsets; only the order may change.
func (c Config) AddStop() (Config, Stop) {
	stop := Stop{
		ID:     NewStopID(),
		Color:  RandomColor(),
		Offset: DefaultStopOffset,
	}
	out := c.Clone()
	out.Stops = append(out.Stops, stop)
	return out.Sorted(), stop
}

// RemoveStop removes the stop with the given ID. The removal is a no-op
// when it would leave fewer than two stops or when the ID is unknown; the
// boolean reports whether a stop was actually removed.
func (c Config) RemoveStop(id string) (Config, bool) {
	if len(c.Stops) <= MinStops {
		return c, false
	}
	out := c.Clone()
	for i, s := range out.Stops {
		if s.ID == id {
			out.Stops = append(out.Stops[:i], out.Stops[i+1:]...)
			return out, true
		}
	}
	return c, false
}

// UpdateStop changes the color and offset of the stop with the given ID and
// re-sorts. It fails with a coded error when the stop does not exist or the
// new values fall outside their domains.
func (c Config) UpdateStop(id, color string, offset int) (Config, error) {
	if _, err := ParseHex(color); err != nil {
		return c, err
	}
	if offset < MinOffset || offset > MaxOffset {
		return c, errors.New(errors.ErrCodeInvalidOffset, "offset %d outside [%d,%d]", offset, MinOffset, MaxOffset)
	}
	out := c.Clone()
	for i, s := range out.Stops {
		if s.ID == id {
			out.Stops[i].Color = color
			out.Stops[i].Offset = offset
			return out.Sorted(), nil
		}
	}
	return c, errors.New(errors.ErrCodeStopNotFound, "no stop with id %q", id)
}

// WithType switches the gradient geometry. The angle is kept: it is simply
// ignored while the type is radial and becomes meaningful again on switching
// back to linear.
func (c Config) WithType(t Type) (Config, error) {
	if t != TypeLinear && t != TypeRadial {
		return c, errors.New(errors.ErrCodeInvalidType, "unknown gradient type %q", t)
	}
	out := c.Clone()
	out.Type = t
	return out, nil
}

// WithAngle sets the linear gradient angle in degrees, normalized to [0,360).
func (c Config) WithAngle(deg float64) (Config, error) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return c, errors.New(errors.ErrCodeInvalidAngle, "angle must be finite")
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	out := c.Clone()
	out.AngleDeg = deg
	return out, nil
}

// WithNoise replaces the noise parameters after range-checking them.
func (c Config) WithNoise(n Noise) (Config, error) {
	if n.BaseFrequency < MinBaseFrequency || n.BaseFrequency > MaxBaseFrequency {
		return c, errors.New(errors.ErrCodeInvalidNoise, "base frequency %g outside [%g,%g]", n.BaseFrequency, MinBaseFrequency, MaxBaseFrequency)
	}
	if n.NumOctaves < MinOctaves || n.NumOctaves > MaxOctaves {
		return c, errors.New(errors.ErrCodeInvalidNoise, "octaves %d outside [%d,%d]", n.NumOctaves, MinOctaves, MaxOctaves)
	}
	if n.Scale < MinScale || n.Scale > MaxScale {
		return c, errors.New(errors.ErrCodeInvalidNoise, "scale %g outside [%d,%d]", n.Scale, MinScale, MaxScale)
	}
	out := c.Clone()
	out.Noise = n
	return out, nil
}
