package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and validates a single theme from a YAML file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme YAML %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadDir loads every *.yaml theme in the directory, keyed by theme name.
// A missing directory yields an empty map, matching the convention that
// absent configuration falls back to the builtins.
func LoadDir(dir string) (map[string]*Theme, error) {
	themes := make(map[string]*Theme)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return themes, nil
		}
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := themes[t.Name]; dup {
			return nil, fmt.Errorf("duplicate theme name %q in %s", t.Name, entry.Name())
		}
		themes[t.Name] = t
	}
	return themes, nil
}

// Library resolves themes by name, checking loaded themes before builtins.
type Library struct {
	loaded map[string]*Theme
}

// NewLibrary wraps a loaded theme map; nil is treated as empty.
func NewLibrary(loaded map[string]*Theme) *Library {
	if loaded == nil {
		loaded = make(map[string]*Theme)
	}
	return &Library{loaded: loaded}
}

// Resolve returns the named theme, preferring loaded definitions over the
// builtin registry.
func (l *Library) Resolve(name string) (*Theme, error) {
	if t, ok := l.loaded[name]; ok {
		return t, nil
	}
	if t := Get(name); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("unknown theme %q", name)
}

// Names returns every resolvable theme name, loaded and builtin, sorted.
func (l *Library) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for name := range l.loaded {
		seen[name] = true
		names = append(names, name)
	}
	for _, name := range Names() {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
