package runtime

import (
	"fmt"
	"sort"
)

// UndefinedVariableError is returned when a lookup or assignment exhausts the
// scope chain.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment provides lexical scoping for runtime values.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Define inserts a binding in the current scope. Redeclaring a name in the
// same scope overwrites the previous value.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign updates an existing binding in the first scope where it appears.
func (e *Environment) Assign(name string, value Value) error {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.values[name]; ok {
			cur.values[name] = value
			return nil
		}
	}
	return &UndefinedVariableError{Name: name}
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, error) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.values[name]; ok {
			return v, nil
		}
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Binding is one name/value pair of a scope.
type Binding struct {
	Name  string
	Value Value
}

// Bindings lists the names declared directly in e, ordered by name. Enclosing
// scopes are not included.
func (e *Environment) Bindings() []Binding {
	out := make([]Binding, 0, len(e.values))
	for name, val := range e.values {
		out = append(out, Binding{Name: name, Value: val})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Extend creates a child scope of e.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
