package interpreter

import (
	"github.com/rhino1998/ample/pkg/kinds"
)

// Binding is a point-in-time copy of one variable.
type Binding struct {
	Name     string     `yaml:"name"`
	Kind     kinds.Kind `yaml:"-"`
	Type     string     `yaml:"type"`
	Value    any        `yaml:"value"`
	Refcount int        `yaml:"refs"`
	ObjectID uint64     `yaml:"object"`
}

// Snapshot copies out all bindings, sorted by name.
func (e *Environment) Snapshot() []Binding {
	bindings := make([]Binding, 0, e.Len())
	for _, name := range e.Names() {
		val, ok := e.Get(name)
		if !ok {
			continue
		}

		bindings = append(bindings, Binding{
			Name:     name,
			Kind:     val.Kind(),
			Type:     val.Kind().String(),
			Value:    val.Raw(),
			Refcount: val.Refcount(),
			ObjectID: val.ID(),
		})
	}

	return bindings
}
