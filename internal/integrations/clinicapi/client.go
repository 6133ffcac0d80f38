package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

const metricTarget = "clinicapi"

// Client talks to the clinic backend: schedule availability lookups and
// booking creation. It performs no caching and no retries; every
// doctor/date change triggers a fresh fetch by design.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient creates a clinic API client. The metrics collector may be nil.
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

func (c *Client) observe(operation, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveUpstreamRequest(metricTarget, operation, outcome, time.Since(start))
}

// GetAvailableSlots fetches the slot list for a doctor on a date.
// Transport and server failures surface as ErrUpstreamUnavailable so
// the caller can render an explicit empty/error state.
func (c *Client) GetAvailableSlots(ctx context.Context, doctorID string, date time.Time) ([]domain.Slot, error) {
	start := time.Now()

	endpoint := fmt.Sprintf("%s/docs/schedule/available-slots/%s?date=%s",
		c.baseURL, url.PathEscape(doctorID), date.Format(domain.DateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.observe("get_available_slots", "error", start)
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("get_available_slots", "unavailable", start)
		c.log.Error("GetAvailableSlots: transport failure for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Continue decoding.
	case resp.StatusCode == http.StatusNotFound:
		c.observe("get_available_slots", "not_found", start)
		return nil, ErrDoctorNotFound
	case resp.StatusCode >= 500:
		c.observe("get_available_slots", "unavailable", start)
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("GetAvailableSlots: upstream %d for doctor=%s: %s", resp.StatusCode, doctorID, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	default:
		c.observe("get_available_slots", "error", start)
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload availableSlotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.observe("get_available_slots", "error", start)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !payload.Success {
		c.observe("get_available_slots", "error", start)
		return nil, fmt.Errorf("%w: upstream reported failure: %s", ErrInvalidResponse, payload.Message)
	}

	slots := make([]domain.Slot, len(payload.Data))
	for i, p := range payload.Data {
		slots[i] = p.toDomain()
	}

	c.observe("get_available_slots", "ok", start)
	return slots, nil
}

// GetNextAvailable fetches the soonest bookable day for a doctor.
// Returns nil when the upstream reports no availability within its
// search window; the caller falls back to today with a notice.
func (c *Client) GetNextAvailable(ctx context.Context, doctorID string) (*NextAvailable, error) {
	start := time.Now()

	endpoint := fmt.Sprintf("%s/docs/schedule/next-available/%s", c.baseURL, url.PathEscape(doctorID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.observe("get_next_available", "error", start)
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("get_next_available", "unavailable", start)
		c.log.Error("GetNextAvailable: transport failure for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Continue decoding.
	case resp.StatusCode == http.StatusNotFound:
		c.observe("get_next_available", "not_found", start)
		return nil, ErrDoctorNotFound
	case resp.StatusCode >= 500:
		c.observe("get_next_available", "unavailable", start)
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	default:
		c.observe("get_next_available", "error", start)
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload nextAvailableResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.observe("get_next_available", "error", start)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// data: null means no availability within the upstream search window.
	if payload.Data == nil {
		c.observe("get_next_available", "none", start)
		c.log.Info("GetNextAvailable: no availability within window for doctor=%s", doctorID)
		return nil, nil
	}

	date, err := time.Parse(domain.DateFormat, payload.Data.NextAvailableDate)
	if err != nil {
		c.observe("get_next_available", "error", start)
		return nil, fmt.Errorf("%w: bad nextAvailableDate %q: %v", ErrInvalidResponse, payload.Data.NextAvailableDate, err)
	}

	slots := make([]domain.Slot, len(payload.Data.AvailableSlots))
	for i, p := range payload.Data.AvailableSlots {
		slots[i] = p.toDomain()
	}

	c.observe("get_next_available", "ok", start)
	return &NextAvailable{Date: date, Slots: slots}, nil
}

// BookAppointment issues the single booking-creation call. Structured
// upstream rejections map to sentinels; the caller decides whether the
// failure re-arms the visible challenge. Never retries.
func (c *Client) BookAppointment(ctx context.Context, payload BookingPayload) (*BookingConfirmation, error) {
	start := time.Now()

	body, err := json.Marshal(payload)
	if err != nil {
		c.observe("book_appointment", "error", start)
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	endpoint := c.baseURL + "/appointments/book"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		c.observe("book_appointment", "error", start)
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("book_appointment", "unavailable", start)
		c.log.Error("BookAppointment: transport failure for doctor=%s: %v", payload.Doctor, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		c.observe("book_appointment", "unavailable", start)
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var result bookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.observe("book_appointment", "error", start)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Success {
		c.observe("book_appointment", "ok", start)
		c.log.Info("BookAppointment: confirmed doctor=%s date=%s time=%s ref=%s",
			payload.Doctor, payload.Date, payload.Time, result.Reference)
		return &BookingConfirmation{Reference: result.Reference}, nil
	}

	c.log.Warn("BookAppointment: upstream rejected booking doctor=%s code=%s: %s",
		payload.Doctor, result.Code, result.Message)

	switch result.Code {
	case codeSlotTaken:
		c.observe("book_appointment", "slot_taken", start)
		return nil, ErrSlotTaken
	case codeRecaptchaFailed, codeLowTrust:
		c.observe("book_appointment", "token_rejected", start)
		return nil, ErrTokenRejected
	case codeValidation:
		c.observe("book_appointment", "validation", start)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamValidation, result.Message)
	default:
		c.observe("book_appointment", "error", start)
		return nil, fmt.Errorf("%w: code=%s message=%s", ErrUpstreamValidation, result.Code, result.Message)
	}
}
