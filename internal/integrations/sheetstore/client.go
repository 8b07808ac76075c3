// Package sheetstore is the appointment store backed by the salon's Google
// Sheets web endpoint. The endpoint is a dumb row store: it appends, lists
// and deletes rows and performs no availability checks of its own.
package sheetstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/pkg/types"
)

// Client talks to the spreadsheet endpoint. With an empty base URL the
// client runs in simulation mode: reads return nothing and writes pretend
// to succeed, so the widget stays demoable before the sheet is wired up.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates the sheet-backed appointment store client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Configured reports whether a spreadsheet endpoint URL is set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// ListAppointments fetches every appointment row and filters it locally. The
// endpoint has no query support beyond the action selector.
func (c *Client) ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	if !c.Configured() {
		c.log.Warn("sheetstore: endpoint URL not set, returning no appointments")
		return []*domain.Appointment{}, nil
	}

	records, err := c.fetchAppointments(ctx)
	if err != nil {
		return nil, err
	}

	appointments := make([]*domain.Appointment, 0, len(records))
	for _, rec := range records {
		if filter.Date != nil && rec.Date != *filter.Date {
			continue
		}
		if filter.UserName != nil && rec.UserName != *filter.UserName {
			continue
		}
		appointments = append(appointments, &domain.Appointment{
			ID:              rec.ID,
			ServiceID:       rec.ServiceID,
			StylistID:       rec.StylistID,
			Date:            rec.Date,
			StartTime:       types.TimeString(rec.Time),
			DurationMinutes: rec.DurationMinutes,
			UserName:        rec.UserName,
		})
	}
	return appointments, nil
}

// ListLeaves fetches leave rows for the given date.
func (c *Client) ListLeaves(ctx context.Context, date string) ([]domain.Leave, error) {
	if !c.Configured() {
		return []domain.Leave{}, nil
	}

	url := c.baseURL + "?action=getLeaves"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrRemoteUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	var records []leaveRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode leaves: %v", ErrInvalidResponse, err)
	}

	leaves := make([]domain.Leave, 0, len(records))
	for _, rec := range records {
		if rec.Date != date {
			continue
		}
		leaves = append(leaves, domain.Leave{StylistID: rec.StylistID, Date: rec.Date})
	}
	return leaves, nil
}

// CreateAppointment appends an appointment row. The endpoint answers ok=false
// when it refuses the row; that is surfaced as ErrCreateRejected so the
// caller can route the client back to time selection.
func (c *Client) CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if !c.Configured() {
		c.log.Warn("sheetstore: endpoint URL not set, simulating create for appointment %s", appt.ID)
		appt.CreatedAt = time.Now()
		return appt, nil
	}

	body := createRequest{
		Action: "create",
		Data: appointmentRecord{
			ID:              appt.ID,
			ServiceID:       appt.ServiceID,
			StylistID:       appt.StylistID,
			Date:            appt.Date,
			Time:            appt.StartTime.String(),
			DurationMinutes: appt.DurationMinutes,
			UserName:        appt.UserName,
		},
	}

	result, err := c.postMutation(ctx, body)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, fmt.Errorf("%w: %s", ErrCreateRejected, result.Message)
	}

	appt.CreatedAt = time.Now()
	return appt, nil
}

// CancelAppointment removes the appointment row with the given id.
func (c *Client) CancelAppointment(ctx context.Context, id string) error {
	if !c.Configured() {
		c.log.Warn("sheetstore: endpoint URL not set, simulating cancel for appointment %s", id)
		return nil
	}

	result, err := c.postMutation(ctx, cancelRequest{Action: "cancel", ID: id})
	if err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("%w: %s", ErrAppointmentNotFound, result.Message)
	}
	return nil
}

func (c *Client) fetchAppointments(ctx context.Context) ([]appointmentRecord, error) {
	url := c.baseURL + "?action=getAppointments"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrRemoteUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	var records []appointmentRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode appointments: %v", ErrInvalidResponse, err)
	}
	return records, nil
}

func (c *Client) postMutation(ctx context.Context, body any) (*mutationResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInvalidResponse, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrRemoteUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	var result mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return &result, nil
}
