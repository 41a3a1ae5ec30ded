package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToSubscribers(t *testing.T) {
	bus := NewBus()

	var got []Event
	bus.Subscribe(ProductUpdated, func(evt Event) {
		got = append(got, evt)
	})

	bus.Publish(Event{Name: ProductUpdated, EntityID: "p1", Fields: map[string]interface{}{"featured": true}})

	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].EntityID)
	assert.Equal(t, true, got[0].Fields["featured"])
}

func TestBus_NameIsolation(t *testing.T) {
	bus := NewBus()

	var updated, added int
	bus.Subscribe(ProductUpdated, func(Event) { updated++ })
	bus.Subscribe(ProductAdded, func(Event) { added++ })

	bus.Publish(Event{Name: ProductAdded, EntityID: "p1"})

	assert.Zero(t, updated)
	assert.Equal(t, 1, added)
}

func TestBus_LateSubscriberMissesEarlierEvents(t *testing.T) {
	bus := NewBus()
	bus.Publish(Event{Name: ProductRemoved, EntityID: "p1"})

	var got int
	bus.Subscribe(ProductRemoved, func(Event) { got++ })

	assert.Zero(t, got, "no replay for late subscribers")
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	var got int
	unsubscribe := bus.Subscribe(CategoryUpdated, func(Event) { got++ })

	bus.Publish(Event{Name: CategoryUpdated})
	unsubscribe()
	bus.Publish(Event{Name: CategoryUpdated})
	// Unsubscribing twice is a no-op.
	unsubscribe()

	assert.Equal(t, 1, got)
}

func TestBus_EachSubscriberInvokedOncePerPublish(t *testing.T) {
	bus := NewBus()

	counts := make([]int, 3)
	for i := range counts {
		i := i
		bus.Subscribe(RefreshCategories, func(Event) { counts[i]++ })
	}

	bus.Publish(Event{Name: RefreshCategories})

	for i, n := range counts {
		assert.Equalf(t, 1, n, "subscriber %d", i)
	}
}

func TestBus_HandlerMaySubscribeDuringDispatch(t *testing.T) {
	bus := NewBus()

	var nested bool
	bus.Subscribe(ProductAdded, func(Event) {
		bus.Subscribe(ProductUpdated, func(Event) { nested = true })
	})

	bus.Publish(Event{Name: ProductAdded})
	bus.Publish(Event{Name: ProductUpdated})

	assert.True(t, nested)
}
