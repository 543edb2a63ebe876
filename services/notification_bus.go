package services

import (
	"slices"

	"github.com/google/uuid"
)

// Topic names a channel on the notification bus
type Topic string

const TopicReviewSubmitted Topic = "review-submitted"

type Handler func(payload any)

// Subscription identifies one registered handler; pass it to Unsubscribe to remove it
type Subscription struct {
	ID    uuid.UUID
	Topic Topic
}

type subscriber struct {
	id      uuid.UUID
	handler Handler
}

// NotificationBus delivers payloads synchronously to the handlers of a topic, in registration order.
//
// The handler list is copied before dispatch. A handler that publishes again is served
// depth-first before the outer dispatch continues, and handlers added or removed during a
// dispatch only take effect from the next Publish. The bus is not safe for concurrent use.
type NotificationBus struct {
	subscribers map[Topic][]subscriber
}

func NewNotificationBus() *NotificationBus {
	return &NotificationBus{
		subscribers: make(map[Topic][]subscriber),
	}
}

func (nb *NotificationBus) Subscribe(topic Topic, handler Handler) Subscription {
	sub := Subscription{ID: uuid.New(), Topic: topic}
	nb.subscribers[topic] = append(nb.subscribers[topic], subscriber{id: sub.ID, handler: handler})
	return sub
}

// Unsubscribe reports whether the subscription was still registered
func (nb *NotificationBus) Unsubscribe(sub Subscription) bool {
	subs := nb.subscribers[sub.Topic]
	i := slices.IndexFunc(subs, func(s subscriber) bool { return s.id == sub.ID })
	if i < 0 {
		return false
	}

	// Build a new slice so a dispatch in progress keeps its own view
	remaining := make([]subscriber, 0, len(subs)-1)
	remaining = append(remaining, subs[:i]...)
	remaining = append(remaining, subs[i+1:]...)
	if len(remaining) == 0 {
		delete(nb.subscribers, sub.Topic)
	} else {
		nb.subscribers[sub.Topic] = remaining
	}
	return true
}

// Publish returns the number of handlers that received the payload
func (nb *NotificationBus) Publish(topic Topic, payload any) int {
	subs := slices.Clone(nb.subscribers[topic])
	for _, s := range subs {
		s.handler(payload)
	}
	return len(subs)
}

func (nb *NotificationBus) SubscriberCount(topic Topic) int {
	return len(nb.subscribers[topic])
}
