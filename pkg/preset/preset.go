// Package preset provides named, persistent gradient configurations.
//
// A preset is a user-saved snapshot of a gradient config under a chosen
// name. The Store interface has four implementations:
//
//   - MemoryStore: in-memory, for tests
//   - FileStore: JSON files under the user config dir (CLI default)
//   - RedisStore: a Redis hash, for preview servers sharing state
//   - MongoStore: a MongoDB collection, for durable shared deployments
//
// All backends upsert on Save (saving under an existing name replaces the
// stored config) and return a PRESET_NOT_FOUND coded error from Get and
// Delete when the name is unknown.
package preset

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/gradgen/gradgen/pkg/errors"
	"github.com/gradgen/gradgen/pkg/gradient"
)

// Preset is a named gradient configuration.
type Preset struct {
	ID        string          `json:"id" bson:"_id"`
	Name      string          `json:"name" bson:"name"`
	Config    gradient.Config `json:"config" bson:"config"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for preset storage backends.
type Store interface {
	// Save stores a preset, replacing any existing preset with the same name.
	Save(ctx context.Context, p *Preset) error

	// Get retrieves a preset by name.
	Get(ctx context.Context, name string) (*Preset, error)

	// List returns all presets ordered by name.
	List(ctx context.Context) ([]Preset, error)

	// Delete removes a preset by name.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// Preset names double as file names in the FileStore, so the charset is
// restricted uniformly across backends.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidName reports whether name is acceptable as a preset name.
func ValidName(name string) bool {
	return nameRe.MatchString(name)
}

// New builds a preset from a validated config.
func New(name string, cfg gradient.Config) (*Preset, error) {
	if !ValidName(name) {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid preset name %q", name)
	}
	normalized, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Preset{
		ID:        uuid.NewString(),
		Name:      name,
		Config:    normalized,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ErrNotFound builds the coded not-found error all backends share.
func ErrNotFound(name string) error {
	return errors.New(errors.ErrCodePresetNotFound, "no preset named %q", name)
}
