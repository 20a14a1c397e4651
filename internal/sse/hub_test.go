package sse

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	assert.Zero(t, hub.ClientCount())

	hub.Register("c1")
	hub.Register("c2")
	assert.Equal(t, 2, hub.ClientCount())

	hub.Unregister("c1")
	assert.Equal(t, 1, hub.ClientCount())

	// Unregistering twice is harmless.
	hub.Unregister("c1")
	assert.Equal(t, 1, hub.ClientCount())
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	c1 := hub.Register("c1")
	c2 := hub.Register("c2")

	hub.Broadcast(&ChangeEvent{Event: EventUpdate, Schema: "public", Table: "products"})

	for _, c := range []*Client{c1, c2} {
		select {
		case raw := <-c.Events:
			var event ChangeEvent
			require.NoError(t, json.Unmarshal(raw, &event))
			assert.Equal(t, EventUpdate, event.Event)
			assert.Equal(t, "products", event.Table)
		default:
			t.Fatalf("client %s received no event", c.ID)
		}
	}
}

func TestHubBroadcastDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	c := hub.Register("slow")

	// Fill the buffer past capacity; Broadcast must not block.
	for i := 0; i < cap(c.Events)+10; i++ {
		hub.Broadcast(&ChangeEvent{Event: EventInsert, Schema: "public", Table: "products"})
	}

	assert.Len(t, c.Events, cap(c.Events))
}

func TestNotifierSkipsBroadcastWithoutClients(t *testing.T) {
	hub := NewHub()
	n := NewHubNotifier(hub)

	// No clients: both notifications are no-ops and must not panic.
	n.NotifyChange(EventInsert, "products")
	n.NotifyCatalogFilter("martillo")

	c := hub.Register("c1")
	n.NotifyChange(EventDelete, "brands")

	select {
	case raw := <-c.Events:
		var event ChangeEvent
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, EventDelete, event.Event)
		assert.Equal(t, "brands", event.Table)
	default:
		t.Fatal("expected an event after a client connected")
	}
}
