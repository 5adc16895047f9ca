// Package inmemory provides an in-process implementation of the PubSub
// port: topic based fan-out over buffered channels.
package inmemory

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/odex-network/odex-daemon/internal/core/domain"
	"github.com/odex-network/odex-daemon/internal/core/ports"
)

const subscriberBuffer = 32

// ErrSubscriptionNotFound ...
var ErrSubscriptionNotFound = errors.New("subscription not found")

type service struct {
	subscribers map[string]map[string]chan domain.Event
	lock        *sync.RWMutex
	closed      bool
}

// NewService returns an in-memory pubsub service.
func NewService() ports.PubSub {
	return &service{
		subscribers: map[string]map[string]chan domain.Event{},
		lock:        &sync.RWMutex{},
	}
}

func (s *service) Subscribe(topic string) (string, <-chan domain.Event, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return "", nil, errors.New("pubsub service is closed")
	}

	id := uuid.New().String()
	ch := make(chan domain.Event, subscriberBuffer)
	if _, ok := s.subscribers[topic]; !ok {
		s.subscribers[topic] = map[string]chan domain.Event{}
	}
	s.subscribers[topic][id] = ch
	return id, ch, nil
}

func (s *service) Unsubscribe(topic, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	subs, ok := s.subscribers[topic]
	if !ok {
		return ErrSubscriptionNotFound
	}
	ch, ok := subs[id]
	if !ok {
		return ErrSubscriptionNotFound
	}
	close(ch)
	delete(subs, id)
	return nil
}

func (s *service) Publish(event domain.Event) error {
	s.lock.RLock()
	defer s.lock.RUnlock()

	for _, topic := range []string{event.Topic(), domain.AnyTopic} {
		for id, ch := range s.subscribers[topic] {
			select {
			case ch <- event:
			default:
				// Slow subscribers miss events rather than stalling the
				// engine.
				log.Warnf("subscriber %s on topic %s is not consuming, event %d dropped", id, topic, event.Seq)
			}
		}
	}
	return nil
}

func (s *service) Close() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return
	}
	for _, subs := range s.subscribers {
		for _, ch := range subs {
			close(ch)
		}
	}
	s.subscribers = map[string]map[string]chan domain.Event{}
	s.closed = true
}
