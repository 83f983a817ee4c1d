package ecs

import (
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

// System is invoked once per matching entity per tick. It may read and write
// any component reachable through the registry.
type System func(state *GameState, r *Registry, id EntityID)

// systemRecord pairs a system with the signature it requires
type systemRecord struct {
	name      string
	fn        System
	signature Signature
}

// systemName derives a readable name from the function, e.g. "systems.MovePlayer"
func systemName(fn System) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "anonymous"
	}
	return strings.TrimPrefix(filepath.Base(f.Name()), "main.")
}
