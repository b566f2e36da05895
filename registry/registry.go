// Package registry implements the lazily initialised, append-only tables
// used for biomes, dimension types, and chat types: everything that gets
// serialized into the play-login registries blob.
package registry

import (
	"fmt"
	"sync"

	"github.com/TheLukeGuy/minestodon/text"
)

// entry pairs a registered value with its insertion-order id.
type entry[T any] struct {
	name    text.Identifier
	id      int32
	element T
}

// Registry is a process-wide, name-keyed table with stable, dense numeric
// ids assigned in insertion order. Init must run exactly once before any
// read; Register is append-only and rejects duplicate names.
type Registry[T any] struct {
	mu          sync.RWMutex
	initialized bool
	entries     []entry[T]
	byName      map[text.Identifier]int
}

func (r *Registry[T]) Init() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initialized {
		panic("registry: Init called twice")
	}
	r.initialized = true
	r.byName = make(map[text.Identifier]int)
}

// Register appends a new entry, assigning it the next dense id. It panics if
// the registry hasn't been initialized or the name is already registered.
func (r *Registry[T]) Register(name text.Identifier, element T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.initialized {
		panic("registry: Register called before Init")
	}
	if _, ok := r.byName[name]; ok {
		panic(fmt.Sprintf("registry: duplicate registration for %q", name.String()))
	}
	id := int32(len(r.entries))
	r.byName[name] = len(r.entries)
	r.entries = append(r.entries, entry[T]{name: name, id: id, element: element})
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entry is the JSON/NBT shape of a single registered value: { name, id,
// element }.
type Entry[T any] struct {
	Name    string `nbt:"name" json:"name"`
	ID      int32  `nbt:"id" json:"id"`
	Element T      `nbt:"element" json:"element"`
}

// Entries returns all registered values in insertion order, shaped for
// serialization into the registries NBT compound.
func (r *Registry[T]) Entries() []Entry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry[T], len(r.entries))
	for i, e := range r.entries {
		out[i] = Entry[T]{Name: e.name.String(), ID: e.id, Element: e.element}
	}
	return out
}

// Tagged is the `{type, value}` envelope a registry serializes as within
// the play-login registries compound.
type Tagged[T any] struct {
	Type  string    `nbt:"type" json:"type"`
	Value []Entry[T] `nbt:"value" json:"value"`
}

func (r *Registry[T]) Tagged(typeName string) Tagged[T] {
	return Tagged[T]{Type: typeName, Value: r.Entries()}
}
