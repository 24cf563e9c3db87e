package service

import (
	"context"
	"strconv"

	"tavolo/pkg/kafka"
	"tavolo/pkg/model"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationUpdated   = "reservation.updated"
	EventReservationCancelled = "reservation.cancelled"

	eventSource = "reservations"
)

// EventPublisher is satisfied by kafka.Producer. A nil publisher disables
// events entirely.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type reservationEvent struct {
	RestaurantID string         `json:"restaurant_id"`
	BookingID    int            `json:"booking_id"`
	Booking      *model.Booking `json:"booking,omitempty"`
}

// publishEvent emits a reservation lifecycle event. Publishing is best
// effort: the mutation already happened on the platform, so a broker
// failure must not fail the request.
func (s *reservationService) publishEvent(ctx context.Context, eventType, restaurantID string, bookingID int, booking *model.Booking) {
	if s.events == nil {
		return
	}

	msg, err := kafka.NewMessage().
		WithKey(strconv.Itoa(bookingID)).
		WithValue(reservationEvent{
			RestaurantID: restaurantID,
			BookingID:    bookingID,
			Booking:      booking,
		}).
		WithEventType(eventType).
		WithSource(eventSource).
		Build()
	if err != nil {
		s.cfg.Log.Warn("Failed to build reservation event",
			"event_type", eventType,
			"booking_id", bookingID,
			"error", err,
		)
		return
	}

	if err := s.events.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish reservation event",
			"event_type", eventType,
			"booking_id", bookingID,
			"error", err,
		)
	}
}
