package sse

import "time"

// ChangeNotifier is the interface handlers use to announce row changes and
// catalog filter requests.
type ChangeNotifier interface {
	NotifyChange(event EventType, table string)
	NotifyCatalogFilter(searchTerm string)
}

// HubNotifier implements ChangeNotifier using the SSE Hub.
type HubNotifier struct {
	hub *Hub
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyChange(event EventType, table string) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(&ChangeEvent{
		Event:     event,
		Schema:    "public",
		Table:     table,
		Timestamp: time.Now(),
	})
}

func (n *HubNotifier) NotifyCatalogFilter(searchTerm string) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(&ChangeEvent{
		Event:      EventCatalogFilter,
		Schema:     "public",
		SearchTerm: searchTerm,
		Timestamp:  time.Now(),
	})
}

// NopNotifier is a no-op implementation for when SSE is not needed.
type NopNotifier struct{}

func (n *NopNotifier) NotifyChange(event EventType, table string) {}
func (n *NopNotifier) NotifyCatalogFilter(searchTerm string)      {}
