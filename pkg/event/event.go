// pkg/event/event.go

// Package event is a small synchronous publish/subscribe bus for gameplay
// events. The simulation publishes from its frame loop; telemetry and the
// front ends subscribe.
package event

import (
	"sync"
)

// Type identifies an event kind.
type Type string

const (
	GameStarted       Type = "game_started"
	GameEnded         Type = "game_ended"
	PlayerDestroyed   Type = "player_destroyed"
	PlayerRespawned   Type = "player_respawned"
	EnemySpawned      Type = "enemy_spawned"
	EnemyDestroyed    Type = "enemy_destroyed"
	SpawnDeferred     Type = "spawn_deferred"
	AsteroidDestroyed Type = "asteroid_destroyed"
	WaveAdvanced      Type = "wave_advanced"
)

// Event is implemented by everything published on the bus.
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent carries the type and source shared by all events.
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

func (e *BaseEvent) GetType() Type {
	return e.EventType
}

func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler receives published events.
type Handler func(Event)

// Subscription is returned by Subscribe; Cancel removes the handler.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus dispatches events to handlers synchronously, in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]registration
	nextID   uint64
}

// NewEventBus creates an empty bus.
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers handler for eventType.
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish calls every handler subscribed to the event's type. Handlers run
// on the caller's goroutine and may publish further events.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	regs := append([]registration(nil), b.handlers[e.GetType()]...)
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(e)
	}
}

// WaveEvent reports wave manager progress.
type WaveEvent struct {
	BaseEvent
	Wave  int
	Quota int
	Score int
	Frame uint64
}

// NewWaveEvent creates a WaveEvent.
func NewWaveEvent(eventType Type, source interface{}, wave, quota, score int) *WaveEvent {
	return &WaveEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		Wave:      wave,
		Quota:     quota,
		Score:     score,
	}
}

// EntityEvent reports a lifecycle change of a single entity.
type EntityEvent struct {
	BaseEvent
	EntityID uint64
	X, Y     float64
}

// NewEntityEvent creates an EntityEvent.
func NewEntityEvent(eventType Type, source interface{}, entityID uint64, x, y float64) *EntityEvent {
	return &EntityEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		EntityID:  entityID,
		X:         x,
		Y:         y,
	}
}
