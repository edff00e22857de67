package dialect

import (
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// Get returns a dialect by name or alias.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// Resolve looks up a dialect by name, returning an UnknownDialectError
// when it is not registered. An empty name resolves to the default.
func Resolve(name string) (*Dialect, error) {
	if name == "" {
		name = DefaultName
	}
	if d, ok := Get(name); ok {
		return d, nil
	}
	return nil, &UnknownDialectError{Name: name, Available: List()}
}

// Register registers a dialect and its aliases in the global registry.
// Called by builtin dialect definitions in init().
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
	for _, alias := range d.Aliases {
		dialects[strings.ToLower(alias)] = d
	}
}

// List returns all canonical registered dialect names (sorted).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	seen := make(map[string]bool, len(dialects))
	names := make([]string, 0, len(dialects))
	for _, d := range dialects {
		if !seen[d.Name] {
			seen[d.Name] = true
			names = append(names, d.Name)
		}
	}
	sort.Strings(names)
	return names
}

// QuotePairs returns the distinct identifier quote pairs across all
// registered dialects. Identifier cleaning strips any of these styles so
// that quoted and unquoted forms of a column compare equal regardless of
// which dialect authored the settings.
func QuotePairs() []QuotePair {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	seen := make(map[QuotePair]bool)
	pairs := make([]QuotePair, 0, len(dialects))
	for _, d := range dialects {
		if !seen[d.Quote] {
			seen[d.Quote] = true
			pairs = append(pairs, d.Quote)
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Start < pairs[j].Start })
	return pairs
}
