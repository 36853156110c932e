package interpreter

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/rhino1998/ample/pkg/kinds"
	"github.com/rhino1998/ample/pkg/object"
)

// Environment is the variable store of a run. Every name is registered with
// exactly one kind and owns one reference to a value in the map for that
// kind.
type Environment struct {
	logger *slog.Logger

	types map[string]kinds.Kind
	ints  map[string]*object.Object
	strs  map[string]*object.Object
}

func newEnvironment(logger *slog.Logger) *Environment {
	return &Environment{
		logger: logger,
		types:  make(map[string]kinds.Kind),
		ints:   make(map[string]*object.Object),
		strs:   make(map[string]*object.Object),
	}
}

func (e *Environment) values(kind kinds.Kind) (map[string]*object.Object, error) {
	switch kind {
	case kinds.Int:
		return e.ints, nil
	case kinds.String:
		return e.strs, nil
	default:
		return nil, fmt.Errorf("%w: no value map for kind %s", ErrInconsistentStore, kind)
	}
}

// AssignInteger binds name to val, replacing any previous binding. The
// environment takes over the caller's reference to val unless an error is
// returned.
func (e *Environment) AssignInteger(name string, val *object.Object) error {
	return e.assign(kinds.Int, name, val)
}

// AssignString is AssignInteger for string values.
func (e *Environment) AssignString(name string, val *object.Object) error {
	return e.assign(kinds.String, name, val)
}

func (e *Environment) assign(kind kinds.Kind, name string, val *object.Object) error {
	if val.Kind() != kind {
		return fmt.Errorf("%w: cannot bind %s value to %s variable %s", object.ErrKindMismatch, val.Kind(), kind, name)
	}

	values, err := e.values(kind)
	if err != nil {
		return err
	}

	err = e.eraseIfExists(name)
	if err != nil {
		return err
	}

	values[name] = val
	e.types[name] = kind

	e.logger.Debug("bind", "name", name, "kind", kind, "value", val, "refs", val.Refcount())
	return nil
}

// Duplicate binds dst to the value bound to src. Both names then own a
// reference to the same object.
func (e *Environment) Duplicate(src, dst string) error {
	val, kind, err := e.lookup(src)
	if err != nil {
		return err
	}

	val.Incref()

	err = e.assign(kind, dst, val)
	if err != nil {
		val.Decref()
		return err
	}

	return nil
}

// Erase removes the binding for name and releases its reference. Unlike
// assignment it fails if name is not bound.
func (e *Environment) Erase(name string) error {
	kind, ok := e.types[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
	}

	values, err := e.values(kind)
	if err != nil {
		return err
	}

	val, ok := values[name]
	if !ok {
		return fmt.Errorf("%w: %s is registered as %s but has no value", ErrInconsistentStore, name, kind)
	}

	delete(values, name)
	e.logger.Debug("release", "name", name, "kind", kind, "refs", val.Refcount()-1)
	val.Decref()
	delete(e.types, name)

	return nil
}

func (e *Environment) eraseIfExists(name string) error {
	if _, ok := e.types[name]; !ok {
		return nil
	}

	return e.Erase(name)
}

func (e *Environment) lookup(name string) (*object.Object, kinds.Kind, error) {
	kind, ok := e.types[name]
	if !ok {
		return nil, kinds.Unknown, fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
	}

	values, err := e.values(kind)
	if err != nil {
		return nil, kinds.Unknown, err
	}

	val, ok := values[name]
	if !ok {
		return nil, kinds.Unknown, fmt.Errorf("%w: %s is registered as %s but has no value", ErrInconsistentStore, name, kind)
	}

	return val, kind, nil
}

// Get returns the object bound to name without taking a reference to it.
func (e *Environment) Get(name string) (*object.Object, bool) {
	val, _, err := e.lookup(name)
	if err != nil {
		return nil, false
	}

	return val, true
}

func (e *Environment) Kind(name string) (kinds.Kind, bool) {
	kind, ok := e.types[name]
	return kind, ok
}

func (e *Environment) Len() int {
	return len(e.types)
}

func (e *Environment) Names() []string {
	return slices.Sorted(maps.Keys(e.types))
}

// Validate checks that the type registry and the value maps agree.
func (e *Environment) Validate() error {
	for name := range e.ints {
		if _, ok := e.strs[name]; ok {
			return fmt.Errorf("%w: %s is bound as both int and string", ErrInconsistentStore, name)
		}
	}

	if len(e.types) != len(e.ints)+len(e.strs) {
		return fmt.Errorf("%w: %d registered names, %d values", ErrInconsistentStore, len(e.types), len(e.ints)+len(e.strs))
	}

	for name := range e.types {
		if _, _, err := e.lookup(name); err != nil {
			return err
		}
	}

	return nil
}

// Teardown releases every binding and empties the environment.
func (e *Environment) Teardown() {
	released := len(e.ints) + len(e.strs)

	for _, val := range e.ints {
		val.Decref()
	}

	for _, val := range e.strs {
		val.Decref()
	}

	clear(e.ints)
	clear(e.strs)
	clear(e.types)

	e.logger.Debug("teardown", "released", released)
}
