package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

const maxErrorBody = 4 << 10

// AppointmentAPIRepository talks to the remote appointment API. Every call
// is sent once; there are no retries.
type AppointmentAPIRepository struct {
	baseURL string
	client  *http.Client
}

// NewAppointmentAPIRepository returns a repository for baseURL. A nil
// transport uses http.DefaultTransport; a zero timeout disables the client
// deadline and leaves cancellation to the request context.
func NewAppointmentAPIRepository(
	baseURL string,
	timeout time.Duration,
	transport http.RoundTripper,
) *AppointmentAPIRepository {
	return &AppointmentAPIRepository{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *AppointmentAPIRepository) Lookup(
	ctx context.Context,
	phone string,
) (*models.LookupResult, error) {

	body, err := r.do(ctx, "lookup", http.MethodGet, phonePath(phone), nil)
	if err != nil {
		return nil, err
	}

	var res models.LookupResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("lookup: decode response: %w", err)
	}
	return &res, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AppointmentAPIRepository) Create(
	ctx context.Context,
	ap models.Appointment,
) error {
	return r.write(ctx, "create", http.MethodPost, "/appointments", ap)
}

func (r *AppointmentAPIRepository) Update(
	ctx context.Context,
	phone string,
	ap models.Appointment,
) error {
	ap.Phone = ""
	return r.write(ctx, "update", http.MethodPut, phonePath(phone), ap)
}

func (r *AppointmentAPIRepository) Delete(
	ctx context.Context,
	phone string,
) error {
	_, err := r.do(ctx, "delete", http.MethodDelete, phonePath(phone), nil)
	return err
}

func (r *AppointmentAPIRepository) write(
	ctx context.Context,
	op, method, path string,
	ap models.Appointment,
) error {

	payload, err := json.Marshal(ap)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", op, err)
	}

	body, err := r.do(ctx, op, method, path, payload)
	if err != nil {
		return err
	}

	var res models.WriteResult
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &res); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	if res.Message != "" {
		return &Rejection{Op: op, Message: res.Message}
	}
	return nil
}

// --------------------------------------------------
// Transport
// --------------------------------------------------

func (r *AppointmentAPIRepository) do(
	ctx context.Context,
	op, method, path string,
	payload []byte,
) ([]byte, error) {

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	zerolog.Ctx(ctx).Debug().
		Str("op", op).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("appointment api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Op: op, Status: resp.StatusCode, Body: string(b)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return body, nil
}

func phonePath(phone string) string {
	return "/appointments/" + url.PathEscape(phone)
}
