package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type pipelineEvent struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp string         `json:"timestamp"`
}

// HubNotifier adapts the hub to the usecase Notifier contract.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyUser(userID uuid.UUID, eventType string, payload map[string]any) {
	if n == nil || n.hub == nil {
		return
	}

	evt := pipelineEvent{
		Type:      eventType,
		Data:      payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Send(userID, b)
}
