package gradient

import (
	"slices"

	"github.com/google/uuid"
)

// Type selects the gradient geometry.
type Type string

// Supported gradient types.
const (
	TypeLinear Type = "linear"
	TypeRadial Type = "radial"
)

// Domain bounds for configuration fields. The TUI and the preview server
// clamp slider input to these; Validate enforces them on file and API input.
const (
	MinStops = 2

	MinOffset = 0
	MaxOffset = 100

	MinBaseFrequency = 0.001
	MaxBaseFrequency = 0.1

	MinOctaves = 1
	MaxOctaves = 8

	MinScale = 0
	MaxScale = 100

	// DefaultStopOffset is where newly added stops are placed.
	DefaultStopOffset = 50
)

// Stop is a single color stop: a color at a percentage position along the
// gradient axis. The ID is opaque and stable across edits so that targeted
// updates and removals survive re-sorting.
type Stop struct {
	ID     string `json:"id" toml:"id" yaml:"id"`
	Color  string `json:"color" toml:"color" yaml:"color" validate:"required,hexrgb"`
	Offset int    `json:"offset" toml:"offset" yaml:"offset" validate:"min=0,max=100"`
}

// Noise holds the turbulence/displacement filter parameters.
type Noise struct {
	Enabled       bool    `json:"enabled" toml:"enabled" yaml:"enabled"`
	BaseFrequency float64 `json:"base_frequency" toml:"base_frequency" yaml:"base_frequency" validate:"min=0.001,max=0.1"`
	NumOctaves    int     `json:"num_octaves" toml:"num_octaves" yaml:"num_octaves" validate:"min=1,max=8"`
	Scale         float64 `json:"scale" toml:"scale" yaml:"scale" validate:"min=0,max=100"`
}

// Config is a complete gradient configuration.
type Config struct {
	Type     Type    `json:"type" toml:"type" yaml:"type" validate:"oneof=linear radial"`
	AngleDeg float64 `json:"angle" toml:"angle" yaml:"angle" validate:"gte=0,lt=360"`
	Stops    []Stop  `json:"stops" toml:"stops" yaml:"stops" validate:"min=2,dive"`
	Noise    Noise   `json:"noise" toml:"noise" yaml:"noise"`
}

// Default returns the starting configuration: a two-stop purple linear
// gradient at 90° with noise parameters at their usual values but disabled.
func Default() Config {
	return Config{
		Type:     TypeLinear,
		AngleDeg: 90,
		Stops: []Stop{
			{ID: NewStopID(), Color: "#667eea", Offset: 0},
			{ID: NewStopID(), Color: "#764ba2", Offset: 100},
		},
		Noise: Noise{
			Enabled:       false,
			BaseFrequency: 0.01,
			NumOctaves:    3,
			Scale:         30,
		},
	}
}

// NewStopID returns a fresh opaque stop identifier.
func NewStopID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of the config.
func (c Config) Clone() Config {
	out := c
	out.Stops = slices.Clone(c.Stops)
	return out
}

// Sorted returns a copy with stops ordered ascending by offset.
// Sorting is stable so stops at the same offset keep their relative order.
func (c Config) Sorted() Config {
	out := c.Clone()
	slices.SortStableFunc(out.Stops, func(a, b Stop) int {
		return a.Offset - b.Offset
	})
	return out
}

// StopByID returns the stop with the given ID, if present.
func (c Config) StopByID(id string) (Stop, bool) {
	for _, s := range c.Stops {
		if s.ID == id {
			return s, true
		}
	}
	return Stop{}, false
}
