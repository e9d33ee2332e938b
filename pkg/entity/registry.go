// pkg/entity/registry.go
package entity

import "github.com/opd-ai/go-starwave/pkg/physics"

// Registry owns the entity handles. Entities refer to each other by ID
// through the registry rather than holding each other directly.
type Registry struct {
	order  []Entity
	byID   map[ID]Entity
	nextID ID
}

// NewRegistry creates an empty registry. The first allocated ID is 1.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[ID]Entity),
		nextID: 1,
	}
}

// NextID allocates a fresh handle.
func (r *Registry) NextID() ID {
	id := r.nextID
	r.nextID++
	return id
}

// Add registers e under its ID. Registration order is update order.
func (r *Registry) Add(e Entity) {
	if _, exists := r.byID[e.GetID()]; exists {
		return
	}
	r.byID[e.GetID()] = e
	r.order = append(r.order, e)
}

// Get returns the entity registered under id.
func (r *Registry) Get(id ID) (Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Locate implements Locator using the entity's top-left corner.
func (r *Registry) Locate(id ID) (physics.Vector2D, bool) {
	e, ok := r.byID[id]
	if !ok {
		return physics.Vector2D{}, false
	}
	b := e.Bounds()
	return physics.Vector2D{X: b.X, Y: b.Y}, true
}

// Entities returns the entities in registration order.
func (r *Registry) Entities() []Entity {
	return r.order
}

func (r *Registry) Len() int {
	return len(r.order)
}
