package ports

import "github.com/odex-network/odex-daemon/internal/core/domain"

// PubSub defines the methods of the service broadcasting engine events to
// subscribers. Publishing never blocks the engine: slow subscribers miss
// events rather than stalling settlement.
type PubSub interface {
	// Subscribe registers a subscriber for a topic and returns its id along
	// with the channel events are delivered on. The AnyTopic wildcard
	// subscribes to every event.
	Subscribe(topic string) (string, <-chan domain.Event, error)
	// Unsubscribe removes the subscriber with the given id from a topic and
	// closes its channel.
	Unsubscribe(topic, id string) error
	// Publish delivers an event to all subscribers of its topic.
	Publish(event domain.Event) error
	// Close tears down all subscriptions.
	Close()
}
