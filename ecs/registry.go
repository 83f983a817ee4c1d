package ecs

import (
	"reflect"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Registry owns all entities, component stores and system registrations
type Registry struct {
	log      zerolog.Logger
	entities *entityPool
	// signatures holds one entry per live entity
	signatures map[EntityID]Signature
	// types is indexed by ComponentID
	types   []*componentType
	byType  map[reflect.Type]*componentType
	byName  map[string]*componentType
	systems []systemRecord
	// Event manager for system communication
	events *EventManager
	frame  uint64
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for registration and lifecycle diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = logger.With().Str("component", "ecs").Logger()
	}
}

// WithoutRecycling makes destroyed entity ids never come back
func WithoutRecycling() Option {
	return func(r *Registry) {
		r.entities.recycle = false
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		log:        zerolog.Nop(),
		entities:   newEntityPool(true),
		signatures: make(map[EntityID]Signature),
		types:      make([]*componentType, 0, MaxComponentTypes),
		byType:     make(map[reflect.Type]*componentType),
		byName:     make(map[string]*componentType),
		systems:    make([]systemRecord, 0),
		events:     NewEventManager(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterComponent assigns the next free signature bit to T and records it
// under name. If *T implements Deserializer, the name can be used to build
// instances from scene records.
func RegisterComponent[T any](r *Registry, name string) error {
	rtype := Type[T]()
	if name == "" {
		return eris.Wrapf(ErrEmptyComponentName, "registering %s", rtype)
	}
	if existing, ok := r.byType[rtype]; ok {
		return eris.Wrapf(ErrDuplicateComponent, "%s (already registered as %q)", rtype, existing.name)
	}
	key := normalizeName(name)
	if existing, ok := r.byName[key]; ok {
		return eris.Wrapf(ErrDuplicateComponentName, "%q is already used by %s", name, existing.rtype)
	}
	if len(r.types) >= MaxComponentTypes {
		return eris.Wrapf(ErrTooManyComponents, "cannot register %s: limit is %d types", rtype, MaxComponentTypes)
	}

	store := NewStore[T]()
	ct := &componentType{
		id:    ComponentID(len(r.types)),
		name:  name,
		rtype: rtype,
		store: store,
	}
	if _, ok := any(new(T)).(Deserializer); ok {
		ct.build = func(id EntityID, node ConfigNode) (any, error) {
			c := new(T)
			if d, ok := any(c).(Defaulter); ok {
				d.Default()
			}
			if err := any(c).(Deserializer).Deserialize(node); err != nil {
				return nil, err
			}
			store.Set(id, c)
			return c, nil
		}
	}

	r.types = append(r.types, ct)
	r.byType[rtype] = ct
	r.byName[key] = ct

	r.log.Debug().
		Str("name", name).
		Uint8("bit", uint8(ct.id)).
		Bool("deserializable", ct.build != nil).
		Msg("component type registered")
	return nil
}

// MustRegisterComponent is RegisterComponent that panics on configuration errors
func MustRegisterComponent[T any](r *Registry, name string) {
	if err := RegisterComponent[T](r, name); err != nil {
		panic(eris.ToString(err, false))
	}
}

// CreateEntity allocates a new or recycled id with an empty signature
func (r *Registry) CreateEntity() EntityID {
	id := r.entities.acquire()
	r.signatures[id] = 0
	return id
}

// DestroyEntity removes every component of id and releases the id.
// Destroying an entity that is not alive is a no-op.
func (r *Registry) DestroyEntity(id EntityID) {
	sig, alive := r.signatures[id]
	if !alive {
		return
	}
	for _, cid := range sig.IDs() {
		r.types[cid].store.removeEntity(id)
	}
	delete(r.signatures, id)
	r.entities.release(id)
}

// Alive checks if id refers to a live entity
func (r *Registry) Alive(id EntityID) bool {
	return r.entities.isAlive(id)
}

// Len returns the number of live entities
func (r *Registry) Len() int {
	return len(r.signatures)
}

// Signature returns the component set of id; empty when id is not alive
func (r *Registry) Signature(id EntityID) Signature {
	return r.signatures[id]
}

// Entities returns a snapshot of the live entity ids in ascending order
func (r *Registry) Entities() []EntityID {
	return r.entities.sorted()
}

// Each calls fn for every live entity in ascending order until fn returns false.
// It iterates a snapshot, so fn may create or destroy entities.
func (r *Registry) Each(fn func(id EntityID) bool) {
	for _, id := range r.entities.sorted() {
		if !r.Alive(id) {
			continue
		}
		if !fn(id) {
			return
		}
	}
}

// Events returns the registry's event manager
func (r *Registry) Events() *EventManager {
	return r.events
}

// EmitEvent is a convenience method to emit an event
func (r *Registry) EmitEvent(event Event) {
	r.events.Emit(event)
}

// Logger returns the registry logger
func (r *Registry) Logger() zerolog.Logger {
	return r.log
}

func lookup[T any](r *Registry) (*componentType, *Store[T]) {
	ct, ok := r.byType[Type[T]()]
	if !ok {
		return nil, nil
	}
	return ct, ct.store.(*Store[T])
}

// AddComponent attaches a default instance of T to id, replacing an existing
// one, and returns it. It returns nil when id is not alive.
// Using a type that was never registered is a programming error and panics.
func AddComponent[T any](r *Registry, id EntityID) *T {
	ct, store := lookup[T](r)
	if ct == nil {
		panic(eris.ToString(eris.Wrapf(ErrUnregisteredComponent, "%s", Type[T]()), false))
	}
	sig, alive := r.signatures[id]
	if !alive {
		return nil
	}
	c := store.Add(id)
	r.signatures[id] = sig.Set(ct.id)
	return c
}

// SetComponent attaches an already built instance of T to id
func SetComponent[T any](r *Registry, id EntityID, c *T) {
	ct, store := lookup[T](r)
	if ct == nil {
		panic(eris.ToString(eris.Wrapf(ErrUnregisteredComponent, "%s", Type[T]()), false))
	}
	sig, alive := r.signatures[id]
	if !alive || c == nil {
		return
	}
	store.Set(id, c)
	r.signatures[id] = sig.Set(ct.id)
}

// GetComponent returns the T attached to id, or nil if there is none
func GetComponent[T any](r *Registry, id EntityID) *T {
	_, store := lookup[T](r)
	if store == nil {
		return nil
	}
	return store.Get(id)
}

// HasComponent checks if id has a T attached
func HasComponent[T any](r *Registry, id EntityID) bool {
	ct, _ := lookup[T](r)
	if ct == nil {
		return false
	}
	return r.signatures[id].Has(ct.id)
}

// RemoveComponent destroys the T attached to id. No-op when absent.
func RemoveComponent[T any](r *Registry, id EntityID) {
	ct, store := lookup[T](r)
	if ct == nil {
		return
	}
	sig, alive := r.signatures[id]
	if !alive {
		return
	}
	store.Remove(id)
	r.signatures[id] = sig.Clear(ct.id)
}

// GetStore returns a read-only view of the store of T. The view is empty if
// T is not registered.
func GetStore[T any](r *Registry) View[T] {
	_, store := lookup[T](r)
	return View[T]{store: store}
}

// ComponentIDOf returns the signature bit assigned to T
func ComponentIDOf[T any](r *Registry) (ComponentID, bool) {
	ct, _ := lookup[T](r)
	if ct == nil {
		return 0, false
	}
	return ct.id, true
}

// ComponentIDByName returns the bit registered under name.
// The lookup is case-insensitive.
func (r *Registry) ComponentIDByName(name string) (ComponentID, bool) {
	ct, ok := r.byName[normalizeName(name)]
	if !ok {
		return 0, false
	}
	return ct.id, true
}

// ComponentName returns the registered name of a component id
func (r *Registry) ComponentName(id ComponentID) string {
	if int(id) >= len(r.types) {
		return ""
	}
	return r.types[id].name
}

// ComponentNames returns the registered names in bit order
func (r *Registry) ComponentNames() []string {
	names := make([]string, len(r.types))
	for i, ct := range r.types {
		names[i] = ct.name
	}
	return names
}

// AddComponentByName builds the component registered under the node's type
// name from the node and attaches it to id. It returns the new instance.
func (r *Registry) AddComponentByName(id EntityID, node ConfigNode) (any, error) {
	name := node.Type()
	ct, ok := r.byName[normalizeName(name)]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownComponent, "%q", name)
	}
	if ct.build == nil {
		return nil, eris.Wrapf(ErrNoDeserializer, "%q", name)
	}
	sig, alive := r.signatures[id]
	if !alive {
		return nil, eris.Wrapf(ErrEntityNotFound, "entity %d", id)
	}
	c, err := ct.build(id, node)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to deserialize %q", name)
	}
	r.signatures[id] = sig.Set(ct.id)
	return c, nil
}

// SignatureOf builds a signature from registered component types
func (r *Registry) SignatureOf(types ...reflect.Type) (Signature, error) {
	var sig Signature
	for _, t := range types {
		ct, ok := r.byType[t]
		if !ok {
			return 0, eris.Wrapf(ErrUnregisteredComponent, "%s", t)
		}
		sig = sig.Set(ct.id)
	}
	return sig, nil
}

// RegisterSystem appends fn to the ordered system list. fn will run for every
// entity that has all of the required component types.
func (r *Registry) RegisterSystem(fn System, required ...reflect.Type) error {
	if fn == nil {
		return eris.Wrap(ErrNilSystem, "registering system")
	}
	return r.RegisterNamedSystem(systemName(fn), fn, required...)
}

// RegisterNamedSystem is RegisterSystem with an explicit name for diagnostics
func (r *Registry) RegisterNamedSystem(name string, fn System, required ...reflect.Type) error {
	if fn == nil {
		return eris.Wrapf(ErrNilSystem, "registering system %q", name)
	}
	sig, err := r.SignatureOf(required...)
	if err != nil {
		return eris.Wrapf(err, "system %q", name)
	}
	r.systems = append(r.systems, systemRecord{name: name, fn: fn, signature: sig})

	r.log.Debug().
		Str("system", name).
		Stringer("signature", sig).
		Int("order", len(r.systems)-1).
		Msg("system registered")
	return nil
}

// MustRegisterSystem is RegisterSystem that panics on configuration errors
func (r *Registry) MustRegisterSystem(fn System, required ...reflect.Type) {
	if err := r.RegisterSystem(fn, required...); err != nil {
		panic(eris.ToString(err, false))
	}
}

// Systems returns the registered system names in execution order
func (r *Registry) Systems() []string {
	names := make([]string, len(r.systems))
	for i, s := range r.systems {
		names[i] = s.name
	}
	return names
}
