package fixture

import (
	"path"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Registry indexes fixtures by name. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	fixtures map[string]*Fixture
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fixtures: make(map[string]*Fixture)}
}

// Add registers a fixture. Names must be unique.
func (r *Registry) Add(f *Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.fixtures[f.Name()]; dup {
		return errors.Wrapf(ErrDuplicateFixture, "fixture %q", f.Name())
	}
	r.fixtures[f.Name()] = f
	klog.V(2).Infof("registered fixture %q (%d examples)", f.Name(), f.NumExamples())
	return nil
}

// Get returns the fixture with the given name.
func (r *Registry) Get(name string) (*Fixture, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fixtures[name]
	return f, ok
}

// Len returns the number of registered fixtures.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fixtures)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fixtures))
	for name := range r.fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fixtures returns every fixture sorted by name.
func (r *Registry) Fixtures() []*Fixture {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Fixture, 0, len(names))
	for _, name := range names {
		if f, ok := r.fixtures[name]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Match returns the fixtures whose names match a path.Match glob, sorted by
// name. An empty pattern matches everything.
func (r *Registry) Match(pattern string) ([]*Fixture, error) {
	if pattern == "" {
		return r.Fixtures(), nil
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, errors.Wrapf(err, "bad fixture pattern %q", pattern)
	}
	var out []*Fixture
	for _, f := range r.Fixtures() {
		if ok, _ := path.Match(pattern, f.Name()); ok {
			out = append(out, f)
		}
	}
	return out, nil
}
