// Package client is the consumer side of the property API: a typed HTTP
// client plus the state machines the dashboard runs on top of it (poller,
// KPI aggregator, edit session).
//
// The client speaks the same error taxonomy as the server — response bodies
// of the form {"error","message"} are decoded back into apperror values, so
// callers can errors.Is() against ErrNotFound or ErrValidation exactly as
// server-side code does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sakif/property-board/internal/apperror"
	"github.com/sakif/property-board/internal/model"
)

// Client issues requests against a property-board server.
//
// No timeout is configured on the underlying http.Client: a hung request
// blocks only its own caller, and the poller's loop keeps running regardless.
// Per-call deadlines belong to the ctx the caller passes in.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given server base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// List fetches the full current collection.
func (c *Client) List(ctx context.Context) ([]model.Property, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/properties", nil)
	if err != nil {
		return nil, fmt.Errorf("building list request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.StoreFailure("listing properties", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, decodeError(res)
	}

	var properties []model.Property
	if err := json.NewDecoder(res.Body).Decode(&properties); err != nil {
		return nil, fmt.Errorf("decoding property list: %w", err)
	}
	return properties, nil
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, id string) (*model.Property, error) {
	return c.doRecord(ctx, http.MethodGet, "/api/properties/"+id, nil, http.StatusOK)
}

// Create submits a draft and returns the stored record.
func (c *Client) Create(ctx context.Context, draft model.PropertyDraft) (*model.Property, error) {
	return c.doRecord(ctx, http.MethodPost, "/api/properties", &draft, http.StatusCreated)
}

// Update submits a full-replace draft for an existing record.
func (c *Client) Update(ctx context.Context, id string, draft model.PropertyDraft) (*model.Property, error) {
	return c.doRecord(ctx, http.MethodPut, "/api/properties/"+id, &draft, http.StatusOK)
}

// Delete removes a record by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/properties/"+id, nil)
	if err != nil {
		return fmt.Errorf("building delete request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return apperror.StoreFailure("deleting property", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return decodeError(res)
	}
	return nil
}

// doRecord is the shared request path for operations that return one record.
func (c *Client) doRecord(ctx context.Context, method, path string, draft *model.PropertyDraft, wantStatus int) (*model.Property, error) {
	var body io.Reader = http.NoBody
	if draft != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(draft); err != nil {
			return nil, fmt.Errorf("encoding draft: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", method, err)
	}
	if draft != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.StoreFailure("calling property API", err)
	}
	defer res.Body.Close()

	if res.StatusCode != wantStatus {
		return nil, decodeError(res)
	}

	var property model.Property
	if err := json.NewDecoder(res.Body).Decode(&property); err != nil {
		return nil, fmt.Errorf("decoding property: %w", err)
	}
	return &property, nil
}

// decodeError turns an {error, message} response body back into the matching
// apperror value, keyed by the machine-readable error type.
func decodeError(res *http.Response) error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("server returned status %d", res.StatusCode)
	}

	var sentinel error
	switch body.Error {
	case "validation_error":
		sentinel = apperror.ErrValidation
	case "invalid_id":
		sentinel = apperror.ErrInvalidID
	case "not_found":
		sentinel = apperror.ErrNotFound
	case "store_error":
		sentinel = apperror.ErrStore
	default:
		return fmt.Errorf("server error (%d): %s", res.StatusCode, body.Message)
	}

	return &apperror.AppError{Err: sentinel, Message: body.Message}
}
