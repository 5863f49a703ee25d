package console

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.starlark.net/starlark"
)

var (
	// ErrNameConflict is returned when a helper name is already bound in the console scope.
	ErrNameConflict = errors.New("name conflict")

	// ErrInvalidName is returned for names that are not Starlark identifiers.
	ErrInvalidName = errors.New("invalid name")
)

var keywords = map[string]struct{}{
	"and": {}, "break": {}, "continue": {}, "def": {}, "elif": {}, "else": {},
	"for": {}, "if": {}, "in": {}, "lambda": {}, "load": {}, "not": {},
	"or": {}, "pass": {}, "return": {}, "while": {},
}

// Registry is the set of helpers visible to console code.
// A name can be installed once; names of Starlark builtins are never accepted.
type Registry struct {
	mu     sync.RWMutex
	values starlark.StringDict
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		values: make(starlark.StringDict),
	}
}

// Install binds name to v. The value is frozen so console code cannot mutate it.
func (r *Registry) Install(name string, v starlark.Value) error {
	if !isIdentifier(name) {
		return fmt.Errorf("%w: %q is not an identifier", ErrInvalidName, name)
	}
	if v == nil {
		return fmt.Errorf("%w: %q has no value", ErrInvalidName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := starlark.Universe[name]; ok {
		return fmt.Errorf("%w: %q is a builtin", ErrNameConflict, name)
	}
	if _, ok := r.values[name]; ok {
		return fmt.Errorf("%w: %q is already installed", ErrNameConflict, name)
	}

	v.Freeze()
	r.values[name] = v
	return nil
}

// Lookup returns the value installed under name.
func (r *Registry) Lookup(name string) (starlark.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[name]
	return v, ok
}

// Names returns the installed names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.values))
}

// Len returns the number of installed helpers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.values)
}

// Globals returns a copy of the installed helpers, ready to be used as predeclared names.
func (r *Registry) Globals() starlark.StringDict {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.values)
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	if _, ok := keywords[name]; ok {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && '0' <= c && c <= '9':
		default:
			return false
		}
	}
	return true
}
