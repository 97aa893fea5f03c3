package styles

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores profiles by name. Lookups for unknown names fall back to
// the default profile rather than failing, so a misspelled profile name
// degrades to unstyled markup instead of a broken page.
type Registry struct {
	mu          sync.RWMutex
	profiles    map[string]Profile
	defaultName string
}

// NewRegistry creates a registry pre-seeded with the shipped presets:
// "default", "bootstrap" (aliased as "bootstrap5"), and "bulma".
func NewRegistry() *Registry {
	r := &Registry{
		profiles:    make(map[string]Profile),
		defaultName: "default",
	}
	r.MustRegister(DefaultProfile())
	r.MustRegister(BootstrapProfile())
	r.MustRegister(BulmaProfile())
	r.mu.Lock()
	r.profiles["bootstrap5"] = r.profiles["bootstrap"]
	r.mu.Unlock()
	return r
}

// Register adds a profile under its name. Duplicate names return an error.
func (r *Registry) Register(profile Profile) error {
	name := strings.ToLower(strings.TrimSpace(profile.Name()))
	if name == "" {
		return fmt.Errorf("styles: profile name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[name]; exists {
		return fmt.Errorf("styles: profile %q already registered", name)
	}
	r.profiles[name] = profile
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(profile Profile) {
	if err := r.Register(profile); err != nil {
		panic(err)
	}
}

// Lookup returns the profile registered under name, falling back to the
// default profile for empty or unknown names.
func (r *Registry) Lookup(name string) Profile {
	key := strings.ToLower(strings.TrimSpace(name))

	r.mu.RLock()
	defer r.mu.RUnlock()

	if profile, ok := r.profiles[key]; ok {
		return profile
	}
	return r.profiles[r.defaultName]
}

// SetDefault changes which registered profile unknown lookups fall back to.
func (r *Registry) SetDefault(name string) error {
	key := strings.ToLower(strings.TrimSpace(name))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[key]; !ok {
		return fmt.Errorf("styles: profile %q not registered", name)
	}
	r.defaultName = key
	return nil
}

// List returns the sorted names of all registered profiles.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
