package queue

import "encoding/json"

// Event type discriminators carried in the envelope.
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// QueueName is the durable queue both booking events flow through.
const QueueName = "booking.events"

// Envelope wraps a typed event payload so a single queue can carry both
// booking event kinds.  Consumers switch on Type and unmarshal Payload
// into the matching struct.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Wrap marshals the payload and returns an Envelope carrying it under the
// given type.
func Wrap(eventType string, payload any) (Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: eventType, Payload: body}, nil
}
