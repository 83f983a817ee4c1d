package ecs

import (
	"reflect"
	"strings"
)

// ComponentID is the signature bit assigned to a component type at registration
type ComponentID uint8

// ConfigNode is a single component record of a scene description
type ConfigNode interface {
	// Type returns the component name the record was written for
	Type() string
	// Decode fills v from the record fields
	Decode(v any) error
}

// Deserializer is implemented by component pointers that can be built from a ConfigNode
type Deserializer interface {
	Deserialize(node ConfigNode) error
}

// Defaulter is implemented by component pointers that need non-zero defaults
// when created through AddComponent
type Defaulter interface {
	Default()
}

// componentType records everything a Registry knows about a registered type
type componentType struct {
	id    ComponentID
	name  string
	rtype reflect.Type
	store anyStore
	// build creates, deserializes and attaches an instance; nil when the
	// type has no Deserialize method
	build func(id EntityID, node ConfigNode) (any, error)
}

// Type returns the reflect.Type used to name component type T in RegisterSystem
func Type[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
