package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tavolo/internal/availability"
	resservice "tavolo/internal/reservations/service"
	restservice "tavolo/internal/restaurants/service"
	apperrors "tavolo/pkg/errors"
	"tavolo/pkg/httputil"
	"tavolo/pkg/logger"
	"tavolo/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const dateLayout = "2006-01-02"

type ReservationHandler struct {
	restaurants  restservice.RestaurantService
	availability availability.Service
	reservations resservice.ReservationService
	log          *logger.Logger
}

func NewReservationHandler(
	restaurants restservice.RestaurantService,
	availabilitySvc availability.Service,
	reservations resservice.ReservationService,
	log *logger.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		restaurants:  restaurants,
		availability: availabilitySvc,
		reservations: reservations,
		log:          log,
	}
}

func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	query := r.URL.Query()

	date, err := time.Parse(dateLayout, query.Get("date"))
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid date parameter: %s", query.Get("date"))))
		return
	}

	partySize, err := strconv.Atoi(query.Get("party_size"))
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid party_size parameter: %s", query.Get("party_size"))))
		return
	}

	requestedTime := query.Get("time")
	if requestedTime != "" {
		if _, err := time.Parse("15:04", requestedTime); err != nil {
			httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid time parameter: %s", requestedTime)))
			return
		}
	}

	rc, err := h.restaurants.Context(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.availability.CheckAvailability(r.Context(), rc, date, partySize, requestedTime)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, result)
}

func (h *ReservationHandler) Search(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	query := r.URL.Query()

	filters := model.BookingFilters{
		Phone: query.Get("phone"),
		Email: query.Get("email"),
		Date:  query.Get("date"),
		Name:  query.Get("name"),
	}
	if filters.Date != "" {
		if _, err := time.Parse(dateLayout, filters.Date); err != nil {
			httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid date parameter: %s", filters.Date)))
			return
		}
	}

	rc, err := h.restaurants.Context(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	bookings, err := h.reservations.Search(r.Context(), rc, filters)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, bookings)
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	rc, err := h.restaurants.Context(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	booking, err := h.reservations.Create(r.Context(), rc, req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, booking)
}

func (h *ReservationHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID, ok := h.bookingID(w, ps)
	if !ok {
		return
	}

	rc, err := h.restaurants.Context(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	booking, err := h.reservations.Get(r.Context(), rc, bookingID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID, ok := h.bookingID(w, ps)
	if !ok {
		return
	}

	var update model.ReservationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	rc, err := h.restaurants.Context(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	booking, err := h.reservations.Update(r.Context(), rc, bookingID, update)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID, ok := h.bookingID(w, ps)
	if !ok {
		return
	}

	rc, err := h.restaurants.Context(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.reservations.Cancel(r.Context(), rc, bookingID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ReservationHandler) bookingID(w http.ResponseWriter, ps httprouter.Params) (int, bool) {
	id, err := strconv.Atoi(ps.ByName("bookingId"))
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid booking id: %s", ps.ByName("bookingId"))))
		return 0, false
	}
	return id, true
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/restaurants/:id/availability", h.CheckAvailability)
	router.GET("/api/v1/restaurants/:id/reservations", h.Search)
	router.POST("/api/v1/restaurants/:id/reservations", h.Create)
	router.GET("/api/v1/restaurants/:id/reservations/:bookingId", h.GetByID)
	router.PATCH("/api/v1/restaurants/:id/reservations/:bookingId", h.Update)
	router.DELETE("/api/v1/restaurants/:id/reservations/:bookingId", h.Cancel)
}
