package engine

import (
	"slices"
	"sync"
)

var (
	mu      sync.RWMutex
	openers = make(map[string]OpenFunc)
)

// Register makes an engine available by name. It is meant to be called
// from init functions and panics if name is empty, open is nil, or the
// name is already taken.
func Register(name string, open OpenFunc) {
	mu.Lock()
	defer mu.Unlock()

	if name == "" {
		panic("engine: Register with empty name")
	}
	if open == nil {
		panic("engine: Register open func is nil for " + name)
	}
	if _, dup := openers[name]; dup {
		panic("engine: Register called twice for " + name)
	}
	openers[name] = open
}

// Lookup returns the open func registered under name.
func Lookup(name string) (OpenFunc, bool) {
	mu.RLock()
	defer mu.RUnlock()

	open, ok := openers[name]
	return open, ok
}

// Names returns the registered engine names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(openers))
	for name := range openers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
