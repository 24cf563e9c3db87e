package zenchef

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tavolo/pkg/logger"
	"tavolo/pkg/model"
)

const dateLayout = "2006-01-02"

var (
	// ErrSlotTaken marks a mutation the platform rejected because the slot
	// or offer is no longer valid. The slot was taken between the
	// availability check and the write.
	ErrSlotTaken = errors.New("slot no longer available")

	ErrBookingNotFound = errors.New("booking not found")
)

// Client is an HTTP client for the Zenchef booking platform. Credentials
// are passed per call; one client serves every restaurant.
type Client struct {
	baseURL string
	hc      *http.Client
	log     *logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Availabilities fetches the raw feed for an inclusive date range and
// decodes it at the boundary.
func (c *Client) Availabilities(ctx context.Context, creds model.ZenchefCredentials, from, to time.Time) ([]model.DayAvailability, error) {
	query := url.Values{}
	query.Set("date_begin", from.Format(dateLayout))
	query.Set("date_end", to.Format(dateLayout))
	query.Set("with", "shifts,shiftSlots,offers")

	status, body, err := c.do(ctx, creds, http.MethodGet, "/availabilities", query, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("availability feed returned status %d", status)
	}

	var days []feedDay
	if err := json.Unmarshal(body, &days); err != nil {
		return nil, fmt.Errorf("failed to decode availability feed: %w", err)
	}
	return decodeDays(days), nil
}

// SearchBookings fetches bookings matching the exact-match filters. The
// fuzzy name filter is not pushed down; callers apply it after fetch.
func (c *Client) SearchBookings(ctx context.Context, creds model.ZenchefCredentials, f model.BookingFilters) ([]model.Booking, error) {
	query := url.Values{}
	if f.Phone != "" {
		query.Set("filters[phone]", f.Phone)
	}
	if f.Email != "" {
		query.Set("filters[email]", f.Email)
	}
	if f.Date != "" {
		query.Set("filters[day]", f.Date)
	}

	status, body, err := c.do(ctx, creds, http.MethodGet, "/bookings", query, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("booking search returned status %d", status)
	}

	var resp bookingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return decodeBookings(resp.Data), nil
}

func (c *Client) GetBooking(ctx context.Context, creds model.ZenchefCredentials, bookingID int) (*model.Booking, error) {
	status, body, err := c.do(ctx, creds, http.MethodGet, "/bookings/"+strconv.Itoa(bookingID), nil, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrBookingNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("get booking returned status %d", status)
	}

	var record bookingRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to decode booking: %w", err)
	}
	booking := decodeBooking(record)
	return &booking, nil
}

func (c *Client) CreateBooking(ctx context.Context, creds model.ZenchefCredentials, p BookingPayload) (*model.Booking, error) {
	return c.writeBooking(ctx, creds, http.MethodPost, "/bookings", p)
}

func (c *Client) UpdateBooking(ctx context.Context, creds model.ZenchefCredentials, bookingID int, p BookingPayload) (*model.Booking, error) {
	return c.writeBooking(ctx, creds, http.MethodPut, "/bookings/"+strconv.Itoa(bookingID), p)
}

func (c *Client) ChangeBookingTime(ctx context.Context, creds model.ZenchefCredentials, bookingID int, day, slot string) error {
	path := "/bookings/" + strconv.Itoa(bookingID) + "/changeTime"
	status, _, err := c.do(ctx, creds, http.MethodPatch, path, nil, changeTimeRequest{Day: day, Time: slot})
	if err != nil {
		return err
	}
	return mutationStatusError(status)
}

func (c *Client) ChangeBookingStatus(ctx context.Context, creds model.ZenchefCredentials, bookingID int, bookingStatus string) error {
	path := "/bookings/" + strconv.Itoa(bookingID) + "/changeStatus"
	status, _, err := c.do(ctx, creds, http.MethodPatch, path, nil, changeStatusRequest{Status: bookingStatus})
	if err != nil {
		return err
	}
	return mutationStatusError(status)
}

func (c *Client) writeBooking(ctx context.Context, creds model.ZenchefCredentials, method, path string, p BookingPayload) (*model.Booking, error) {
	status, body, err := c.do(ctx, creds, method, path, nil, p)
	if err != nil {
		return nil, err
	}
	if err := mutationStatusError(status); err != nil {
		return nil, err
	}

	var record bookingRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to decode booking: %w", err)
	}
	booking := decodeBooking(record)
	return &booking, nil
}

// mutationStatusError maps mutation rejections: 400/409-class responses mean
// the slot or offer was taken since the availability check.
func mutationStatusError(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return ErrBookingNotFound
	case status == http.StatusBadRequest || status == http.StatusConflict:
		return ErrSlotTaken
	default:
		return fmt.Errorf("booking mutation returned status %d", status)
	}
}

func (c *Client) do(ctx context.Context, creds model.ZenchefCredentials, method, path string, query url.Values, body any) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+creds.APIToken)
	req.Header.Set("restaurantId", creds.RestaurantID)
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, respBody, nil
}
