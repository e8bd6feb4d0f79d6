// Package gateway holds the HTTP clients for the remote cinema backend.
// Every data source of the wizard is one of these collaborators; the
// service owns no storage of its own. All calls are context-aware and
// bounded by the shared client timeout.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotFound - the backend has no resource with that id.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict - the backend rejected the request because of a
	// conflicting concurrent change (e.g. a seat taken mid-booking).
	ErrConflict = errors.New("conflicting remote state")
	// ErrUnauthenticated - the backend did not accept the token.
	ErrUnauthenticated = errors.New("unauthenticated")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Gateway groups all collaborator clients, the way the data layer is
// injected everywhere as one handle.
type Gateway struct {
	Movies    MovieCatalog
	Cinemas   CinemaDirectory
	Showtimes ShowtimeDirectory
	Seats     SeatInventory
	Bookings  BookingLedger
	Identity  Identity
}

func New(cfg Config, log *zap.Logger) *Gateway {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	c := &client{
		base: cfg.BaseURL,
		http: &http.Client{Timeout: cfg.Timeout},
	}

	return &Gateway{
		Movies:    &movieCatalog{c: c, log: log.With(zap.String("gateway", "movies"))},
		Cinemas:   &cinemaDirectory{c: c, log: log.With(zap.String("gateway", "cinemas"))},
		Showtimes: &showtimeDirectory{c: c, log: log.With(zap.String("gateway", "showtimes"))},
		Seats:     &seatInventory{c: c, log: log.With(zap.String("gateway", "seats"))},
		Bookings:  &bookingLedger{c: c, log: log.With(zap.String("gateway", "bookings"))},
		Identity:  &identityClient{c: c, log: log.With(zap.String("gateway", "identity"))},
	}
}

// client is the shared transport for all gateways.
type client struct {
	base string
	http *http.Client
}

func (c *client) getJSON(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, "", nil, out)
}

// send performs one request and decodes the JSON response into out (when
// out is non-nil). Status codes are mapped onto the package's error
// sentinels; anything else unexpected becomes a plain error.
func (c *client) send(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthenticated
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("backend %s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
