package preset

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory preset store for development and testing.
type MemoryStore struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{presets: make(map[string]Preset)}
}

func (s *MemoryStore) Save(ctx context.Context, p *Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	cp.Config = p.Config.Clone()
	s.presets[p.Name] = cp
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, name string) (*Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.presets[name]
	if !ok {
		return nil, ErrNotFound(name)
	}
	cp := p
	cp.Config = p.Config.Clone()
	return &cp, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		cp := p
		cp.Config = p.Config.Clone()
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.presets[name]; !ok {
		return ErrNotFound(name)
	}
	delete(s.presets, name)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
