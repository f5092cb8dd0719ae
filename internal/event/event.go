// Package event carries the arena's session signals to whoever drives the
// top-level screens. Signals ride on an rpg-toolkit event bus.
package event

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// EventType identifies a signal.
type EventType string

const (
	WaveStarted  EventType = "wave_started"
	WaveCleared  EventType = "wave_cleared"
	BossSpawned  EventType = "boss_spawned"
	EntityKilled EventType = "entity_killed"
	ShopPrompt   EventType = "shop_prompt"
	GameOver     EventType = "game_over"
	ReturnToMenu EventType = "return_to_menu"
)

// Event is one published signal as subscribers see it.
type Event struct {
	Type EventType
	Wave int
	Data interface{}
}

// arenaSource is the bus-level source of every arena signal.
type arenaSource struct{}

func (arenaSource) GetID() string   { return "arena" }
func (arenaSource) GetType() string { return "wave_director" }

var _ core.Entity = arenaSource{}

// signal is a toolkit game event that also carries the arena payload.
type signal struct {
	events.Event
	wave int
	data interface{}
}

// Bus publishes arena signals. Delivery is synchronous, inside Publish.
type Bus struct {
	bus events.EventBus
}

func NewBus() *Bus {
	return NewBusOn(events.NewBus())
}

// NewBusOn wraps an existing toolkit bus.
func NewBusOn(bus events.EventBus) *Bus {
	return &Bus{bus: bus}
}

func (b *Bus) Publish(ctx context.Context, e Event) error {
	return b.bus.Publish(ctx, &signal{
		Event: events.NewGameEvent(string(e.Type), arenaSource{}, nil),
		wave:  e.Wave,
		data:  e.Data,
	})
}

// Subscribe registers fn for every listed type and returns the subscription
// IDs in the same order.
func (b *Bus) Subscribe(fn func(Event), types ...EventType) []string {
	ids := make([]string, 0, len(types))
	for _, t := range types {
		ids = append(ids, b.bus.SubscribeFunc(string(t), 0, func(_ context.Context, ev events.Event) error {
			fn(decode(ev))
			return nil
		}))
	}
	return ids
}

func (b *Bus) Unsubscribe(ids ...string) error {
	for _, id := range ids {
		if err := b.bus.Unsubscribe(id); err != nil {
			return err
		}
	}
	return nil
}

// decode recovers the arena payload. Events published by other code keep
// only their type.
func decode(ev events.Event) Event {
	if s, ok := ev.(*signal); ok {
		return Event{Type: EventType(s.Type()), Wave: s.wave, Data: s.data}
	}
	return Event{Type: EventType(ev.Type())}
}
