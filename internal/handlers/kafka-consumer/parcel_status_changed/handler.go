package parcel_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	parcelservice "dispatch/internal/service/parcel"
	"dispatch/pkg/logger"
)

type statusChangedEvent struct {
	ParcelID       int64     `json:"parcelId"`
	TrackingNumber string    `json:"trackingNumber"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Handler audits parcel.status.changed events against the store. The event
// stream is advisory, so a mismatch is logged rather than acted on.
type Handler struct {
	parcelService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, parcelService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		parcelService:            parcelService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("parcel.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("parcel.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. Returns true when ConsumeClaim
// should stop (context cancelled, message left unmarked for reprocessing).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("parcel.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("parcel", event.ParcelID),
		logger.NewField("tracking", event.TrackingNumber),
		logger.NewField("to", event.To),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("parcel.status.changed processing")

	parcel, err := h.parcelService.GetParcel(ctx, event.ParcelID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, parcelservice.ErrParcelNotFound):
			msgLog.Warn("parcel.status.changed handler event references unknown parcel")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler failed to load parcel")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// The store may already be ahead of this event. Anything else is a
	// divergence worth flagging.
	eventStatus := entities.ParcelStatusType(event.To)
	storeAhead := eventStatus.CanTransitionTo(parcel.Status)
	if parcel.Status != eventStatus && !storeAhead {
		msgLog.With(
			logger.NewField("current_status", parcel.Status.String()),
		).Warn("parcel.status.changed: store status diverges from event")
	} else {
		msgLog.With(
			logger.NewField("current_status", parcel.Status.String()),
		).Info("parcel.status.changed: processed")
	}

	sess.MarkMessage(message, "")
	return false
}
