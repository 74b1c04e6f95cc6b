// Package registry provides the process-wide catalog of product models.
//
// The registry has a two-phase lifecycle. During startup a Builder accepts
// registrations; Seal then hands out a read-only Catalog and the Builder stops
// accepting definitions. Catalog has no mutating methods, so once serving
// starts nothing can shadow a model's pricing rules.
package registry

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"quotepilot/core/model"
)

// ErrSealed is returned by Register after Seal
var ErrSealed = errors.New("registry is sealed; register models during startup")

// DefaultChecker validates a definition before it is accepted
type DefaultChecker func(def *model.Definition) error

// Builder accepts model registrations during startup
type Builder struct {
	mu      sync.Mutex
	defs    map[string]*model.Definition
	order   []string
	sealed  bool
	checker DefaultChecker
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{
		defs: make(map[string]*model.Definition),
	}
}

// WithDefaultChecker installs a check run after structural validation, used
// to prove a definition's default part number quotes successfully
func (b *Builder) WithDefaultChecker(checker DefaultChecker) *Builder {
	b.checker = checker
	return b
}

// Register validates and adds a definition. Re-registering a name is an
// error; the first registration stays intact.
func (b *Builder) Register(def *model.Definition) error {
	if err := model.Validate(def); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		return ErrSealed
	}
	if _, exists := b.defs[def.Name]; exists {
		return &DuplicateModelError{Model: def.Name}
	}

	stored := def.Clone()
	if b.checker != nil {
		if err := b.checker(stored); err != nil {
			return err
		}
	}

	b.defs[stored.Name] = stored
	b.order = append(b.order, stored.Name)
	return nil
}

// MustRegister registers def or panics
func (b *Builder) MustRegister(def *model.Definition) {
	if err := b.Register(def); err != nil {
		panic(err)
	}
}

// Seal ends the registration phase and returns the read-only catalog.
// Calling Seal again returns an equivalent catalog.
func (b *Builder) Seal() *Catalog {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sealed = true

	defs := make(map[string]*model.Definition, len(b.defs))
	for name, def := range b.defs {
		defs[name] = def
	}
	order := make([]string, len(b.order))
	copy(order, b.order)

	return &Catalog{defs: defs, order: order}
}

// Catalog is the read-only registry handle used while serving.
// It is immutable, so concurrent readers need no locking.
type Catalog struct {
	defs  map[string]*model.Definition
	order []string
}

// Empty returns a catalog with no models
func Empty() *Catalog {
	return NewBuilder().Seal()
}

// Get returns the definition registered under name.
// The returned value is shared and must be treated as read-only.
func (c *Catalog) Get(name string) (*model.Definition, error) {
	def, ok := c.defs[name]
	if !ok {
		return nil, &UnknownModelError{Model: name, Available: c.sortedNames()}
	}
	return def, nil
}

// Lookup finds a model by name ignoring case
func (c *Catalog) Lookup(name string) (*model.Definition, bool) {
	if def, ok := c.defs[name]; ok {
		return def, true
	}
	for _, registered := range c.order {
		if strings.EqualFold(registered, name) {
			return c.defs[registered], true
		}
	}
	return nil, false
}

// ListModels returns model names in registration order
func (c *Catalog) ListModels() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Len returns the number of registered models
func (c *Catalog) Len() int {
	return len(c.order)
}

func (c *Catalog) sortedNames() []string {
	names := c.ListModels()
	sort.Strings(names)
	return names
}
