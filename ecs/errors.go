package ecs

import "github.com/rotisserie/eris"

var (
	ErrDuplicateComponent     = eris.New("component type already registered")
	ErrDuplicateComponentName = eris.New("component name already registered")
	ErrEmptyComponentName     = eris.New("component name is empty")
	ErrTooManyComponents      = eris.New("signature width exhausted")
	ErrUnregisteredComponent  = eris.New("component type is not registered")
	ErrUnknownComponent       = eris.New("no component registered under name")
	ErrNoDeserializer         = eris.New("component type has no deserializer")
	ErrNilSystem              = eris.New("system function is nil")
	ErrEntityNotFound         = eris.New("entity is not alive")
)
