package service

import (
	"context"
	"errors"
	"time"

	resvalidator "tavolo/internal/reservations/validator"
	"tavolo/internal/zenchef"
	"tavolo/pkg/config"
	apperrors "tavolo/pkg/errors"
	"tavolo/pkg/model"
	"tavolo/pkg/sanitizer"
)

// BookingAPI is the slice of the platform client the reservation flows
// need. Satisfied by zenchef.Client.
type BookingAPI interface {
	SearchBookings(ctx context.Context, creds model.ZenchefCredentials, f model.BookingFilters) ([]model.Booking, error)
	GetBooking(ctx context.Context, creds model.ZenchefCredentials, bookingID int) (*model.Booking, error)
	CreateBooking(ctx context.Context, creds model.ZenchefCredentials, p zenchef.BookingPayload) (*model.Booking, error)
	UpdateBooking(ctx context.Context, creds model.ZenchefCredentials, bookingID int, p zenchef.BookingPayload) (*model.Booking, error)
	ChangeBookingTime(ctx context.Context, creds model.ZenchefCredentials, bookingID int, day, slot string) error
	ChangeBookingStatus(ctx context.Context, creds model.ZenchefCredentials, bookingID int, bookingStatus string) error
}

type ReservationService interface {
	Search(ctx context.Context, rc model.RestaurantContext, filters model.BookingFilters) ([]model.Booking, error)
	Get(ctx context.Context, rc model.RestaurantContext, bookingID int) (*model.Booking, error)
	Create(ctx context.Context, rc model.RestaurantContext, req model.ReservationRequest) (*model.Booking, error)
	Update(ctx context.Context, rc model.RestaurantContext, bookingID int, update model.ReservationUpdate) (*model.Booking, error)
	Cancel(ctx context.Context, rc model.RestaurantContext, bookingID int) error
}

type reservationService struct {
	api       BookingAPI
	validator *resvalidator.ReservationValidator
	events    EventPublisher
	cfg       *config.Config
	now       func() time.Time
}

func NewReservationService(api BookingAPI, validator *resvalidator.ReservationValidator, events EventPublisher, cfg *config.Config) ReservationService {
	return &reservationService{
		api:       api,
		validator: validator,
		events:    events,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *reservationService) Search(ctx context.Context, rc model.RestaurantContext, filters model.BookingFilters) ([]model.Booking, error) {
	creds, err := s.credentials(rc)
	if err != nil {
		return nil, err
	}

	// Exact-match filters are pushed down to the platform; the name filter
	// is fuzzy and applied after fetch.
	filters.Phone = sanitizer.NormalizePhone(filters.Phone)
	filters.Email = sanitizer.NormalizeEmail(filters.Email)

	bookings, err := s.api.SearchBookings(ctx, creds, filters)
	if err != nil {
		s.cfg.Log.Error("Reservation search failed",
			"restaurant_id", rc.Restaurant.ID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to search reservations", err)
	}

	return RankBookings(bookings, filters, s.now()), nil
}

func (s *reservationService) Get(ctx context.Context, rc model.RestaurantContext, bookingID int) (*model.Booking, error) {
	creds, err := s.credentials(rc)
	if err != nil {
		return nil, err
	}

	booking, err := s.api.GetBooking(ctx, creds, bookingID)
	if err != nil {
		return nil, s.platformError(err, "Failed to load reservation")
	}
	return booking, nil
}

func (s *reservationService) Create(ctx context.Context, rc model.RestaurantContext, req model.ReservationRequest) (*model.Booking, error) {
	creds, err := s.credentials(rc)
	if err != nil {
		return nil, err
	}

	// Validate the raw input first: sanitizing an undialable phone number
	// yields an empty string, which would slip past the validator.
	if err := s.validator.Validate(&req); err != nil {
		return nil, s.validationError(err)
	}
	s.sanitizeRequest(&req)

	payload := PlanCreate(req, rc.SeatingAreas)

	booking, err := s.api.CreateBooking(ctx, creds, payload)
	if err != nil {
		return nil, s.platformError(err, "Failed to create reservation")
	}

	s.cfg.Log.Info("Reservation created",
		"restaurant_id", rc.Restaurant.ID,
		"booking_id", booking.ID,
		"day", booking.Day,
		"time", booking.Time,
		"guests", booking.GuestCount,
	)
	s.publishEvent(ctx, EventReservationCreated, rc.Restaurant.ID, booking.ID, booking)

	return booking, nil
}

func (s *reservationService) Update(ctx context.Context, rc model.RestaurantContext, bookingID int, update model.ReservationUpdate) (*model.Booking, error) {
	creds, err := s.credentials(rc)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateUpdate(&update); err != nil {
		return nil, s.validationError(err)
	}
	s.sanitizeUpdate(&update)

	current, err := s.api.GetBooking(ctx, creds, bookingID)
	if err != nil {
		return nil, s.platformError(err, "Failed to load reservation")
	}

	plan := PlanUpdate(*current, update, rc.SeatingAreas)

	var updated *model.Booking
	switch plan.Mode {
	case MutationTimeOnly:
		if err := s.api.ChangeBookingTime(ctx, creds, bookingID, plan.Day, plan.Time); err != nil {
			return nil, s.platformError(err, "Failed to move reservation")
		}
		moved := *current
		moved.Time = plan.Time
		updated = &moved
	default:
		updated, err = s.api.UpdateBooking(ctx, creds, bookingID, plan.Payload)
		if err != nil {
			return nil, s.platformError(err, "Failed to update reservation")
		}
	}

	s.cfg.Log.Info("Reservation updated",
		"restaurant_id", rc.Restaurant.ID,
		"booking_id", bookingID,
		"mode", plan.Mode,
	)
	s.publishEvent(ctx, EventReservationUpdated, rc.Restaurant.ID, bookingID, updated)

	return updated, nil
}

func (s *reservationService) Cancel(ctx context.Context, rc model.RestaurantContext, bookingID int) error {
	creds, err := s.credentials(rc)
	if err != nil {
		return err
	}

	if err := s.api.ChangeBookingStatus(ctx, creds, bookingID, model.BookingStatusCanceled); err != nil {
		return s.platformError(err, "Failed to cancel reservation")
	}

	s.cfg.Log.Info("Reservation cancelled",
		"restaurant_id", rc.Restaurant.ID,
		"booking_id", bookingID,
	)
	s.publishEvent(ctx, EventReservationCancelled, rc.Restaurant.ID, bookingID, nil)

	return nil
}

func (s *reservationService) credentials(rc model.RestaurantContext) (model.ZenchefCredentials, error) {
	if rc.Restaurant.Zenchef == nil {
		return model.ZenchefCredentials{}, apperrors.NotConfigured("restaurant is not linked to the booking platform")
	}
	return *rc.Restaurant.Zenchef, nil
}

// platformError translates client sentinels into the error taxonomy. A slot
// race becomes a distinct condition so callers re-run availability instead
// of showing a generic failure.
func (s *reservationService) platformError(err error, message string) error {
	switch {
	case errors.Is(err, zenchef.ErrSlotTaken):
		return apperrors.SlotUnavailable(err)
	case errors.Is(err, zenchef.ErrBookingNotFound):
		return apperrors.NotFound("reservation")
	default:
		return apperrors.Internal(message, err)
	}
}

func (s *reservationService) sanitizeRequest(req *model.ReservationRequest) {
	req.GuestName = sanitizer.NormalizeName(req.GuestName)
	req.Phone = sanitizer.NormalizePhone(req.Phone)
	req.Email = sanitizer.NormalizeEmail(req.Email)
	req.Comments = sanitizer.TrimAndNormalize(req.Comments)
	req.Allergies = sanitizer.TrimAndNormalize(req.Allergies)
}

func (s *reservationService) sanitizeUpdate(update *model.ReservationUpdate) {
	if update.GuestName != nil {
		*update.GuestName = sanitizer.NormalizeName(*update.GuestName)
	}
	if update.Phone != nil {
		*update.Phone = sanitizer.NormalizePhone(*update.Phone)
	}
	if update.Email != nil {
		*update.Email = sanitizer.NormalizeEmail(*update.Email)
	}
	if update.Comments != nil {
		*update.Comments = sanitizer.TrimAndNormalize(*update.Comments)
	}
	if update.Allergies != nil {
		*update.Allergies = sanitizer.TrimAndNormalize(*update.Allergies)
	}
}

func (s *reservationService) validationError(err error) error {
	var verrs resvalidator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]any, len(verrs))
		for _, ve := range verrs {
			details[ve.Field] = ve.Message
		}
		return apperrors.Validation("reservation validation failed", details)
	}
	return apperrors.Validation(err.Error(), nil)
}
