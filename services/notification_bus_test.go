package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationBus_PublishIsSynchronous(t *testing.T) {
	bus := NewNotificationBus()

	var got []any
	bus.Subscribe(TopicReviewSubmitted, func(payload any) {
		got = append(got, payload)
	})

	delivered := bus.Publish(TopicReviewSubmitted, "review")

	assert.Equal(t, 1, delivered)
	assert.Equal(t, []any{"review"}, got, "handler must run exactly once before Publish returns")
}

func TestNotificationBus_RegistrationOrder(t *testing.T) {
	bus := NewNotificationBus()

	var order []string
	bus.Subscribe("t", func(any) { order = append(order, "first") })
	bus.Subscribe("t", func(any) { order = append(order, "second") })
	bus.Subscribe("other", func(any) { order = append(order, "other") })

	bus.Publish("t", nil)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestNotificationBus_NoSubscribers(t *testing.T) {
	bus := NewNotificationBus()
	assert.Equal(t, 0, bus.Publish("nobody", 1))
}

func TestNotificationBus_Unsubscribe(t *testing.T) {
	bus := NewNotificationBus()

	calls := 0
	sub := bus.Subscribe("t", func(any) { calls++ })
	assert.Equal(t, 1, bus.SubscriberCount("t"))

	assert.True(t, bus.Unsubscribe(sub))
	assert.False(t, bus.Unsubscribe(sub))
	assert.Equal(t, 0, bus.SubscriberCount("t"))

	bus.Publish("t", nil)
	assert.Equal(t, 0, calls)
}

func TestNotificationBus_ChangesDuringDispatch(t *testing.T) {
	bus := NewNotificationBus()

	var order []string
	var second Subscription
	bus.Subscribe("t", func(any) {
		order = append(order, "first")
		bus.Unsubscribe(second)
		bus.Subscribe("t", func(any) { order = append(order, "late") })
	})
	second = bus.Subscribe("t", func(any) { order = append(order, "second") })

	bus.Publish("t", nil)
	assert.Equal(t, []string{"first", "second"}, order, "the in-flight dispatch keeps its snapshot")

	order = nil
	bus.Publish("t", nil)
	assert.Equal(t, []string{"first", "late"}, order)
}

func TestNotificationBus_NestedPublishIsDepthFirst(t *testing.T) {
	bus := NewNotificationBus()

	var order []string
	bus.Subscribe("outer", func(any) {
		order = append(order, "outer-1")
		bus.Publish("inner", nil)
	})
	bus.Subscribe("outer", func(any) { order = append(order, "outer-2") })
	bus.Subscribe("inner", func(any) { order = append(order, "inner") })

	bus.Publish("outer", nil)

	assert.Equal(t, []string{"outer-1", "inner", "outer-2"}, order)
}
