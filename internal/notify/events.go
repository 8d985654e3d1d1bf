package notify

import (
	"context"
	"time"

	"jumatrek/pkg/kafka"
	"jumatrek/pkg/model"
)

const (
	EventInquiryCreated = "inquiry.created"
	eventSchemaVersion  = "1"
	eventSource         = "jumatrek-api"
)

// Publisher is satisfied by *kafka.Producer.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type InquiryCreatedEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Inquiry    *model.Inquiry `json:"inquiry"`
}

func newInquiryCreatedMessage(inq *model.Inquiry, correlationID string) (kafka.Message, error) {
	return kafka.NewMessage().
		WithKey(inq.ID).
		WithValue(InquiryCreatedEvent{
			Type:       EventInquiryCreated,
			OccurredAt: time.Now().UTC(),
			Inquiry:    inq,
		}).
		WithEventID("").
		WithEventType(EventInquiryCreated).
		WithSchemaVersion(eventSchemaVersion).
		WithSource(eventSource).
		WithCorrelationID(correlationID).
		Build()
}
