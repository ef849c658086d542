package parcel_status

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// statusChangedEvent is the wire shape of parcel.status.changed messages.
type statusChangedEvent struct {
	ParcelID       int64     `json:"parcelId"`
	TrackingNumber string    `json:"trackingNumber"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Publisher announces parcel status transitions to Kafka. Publishing is
// advisory for the caller; failures are logged here and returned for tests.
type Publisher struct {
	log    publisherLogger
	sender sender
	topic  string
}

func New(log publisherLogger, sender sender, topic string) *Publisher {
	return &Publisher{
		log:    log.With(logger.NewField("topic", topic)),
		sender: sender,
		topic:  topic,
	}
}

func (p *Publisher) PublishStatusChanged(_ context.Context, event entities.ParcelStatusChanged) error {
	payload, err := json.Marshal(statusChangedEvent{
		ParcelID:       event.ParcelID,
		TrackingNumber: event.TrackingNumber,
		From:           event.From.String(),
		To:             event.To.String(),
		OccurredAt:     event.OccurredAt,
	})
	if err != nil {
		p.log.With(
			logger.NewField("error", err),
			logger.NewField("parcel", event.ParcelID),
		).Error("marshal parcel.status.changed event")
		return fmt.Errorf("marshal event: %w", err)
	}

	// Keying by parcel id keeps one parcel's transitions in order.
	key := strconv.FormatInt(event.ParcelID, 10)

	err = p.sender.Send(p.topic, []byte(key), payload)
	if err != nil {
		p.log.With(
			logger.NewField("error", err),
			logger.NewField("parcel", event.ParcelID),
			logger.NewField("to", event.To.String()),
		).Error("publish parcel.status.changed event")
		return fmt.Errorf("publish event: %w", err)
	}

	p.log.With(
		logger.NewField("parcel", event.ParcelID),
		logger.NewField("from", event.From.String()),
		logger.NewField("to", event.To.String()),
	).Info("parcel.status.changed published")
	return nil
}
