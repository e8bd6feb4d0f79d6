package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cinema-wizard/internal/data/entity"

	"go.uber.org/zap"
)

// SeatMarkResult is the outcome of a batch availability update. Marking
// seats after a booking is a sequence of independent remote updates with
// no rollback; callers reconcile from the two id lists.
type SeatMarkResult struct {
	Succeeded []string `json:"succeeded"`
	Failed    []string `json:"failed"`
}

func (r *SeatMarkResult) AllSucceeded() bool { return len(r.Failed) == 0 }

type SeatInventory interface {
	GetByShowtimeID(ctx context.Context, showtimeID string) ([]*entity.Seat, error)
	MarkUnavailable(ctx context.Context, seatID string) error
	MarkUnavailableBatch(ctx context.Context, seatIDs []string) *SeatMarkResult
}

type seatInventory struct {
	c   *client
	log *zap.Logger
}

func (g *seatInventory) GetByShowtimeID(ctx context.Context, showtimeID string) ([]*entity.Seat, error) {
	var seats []*entity.Seat
	path := "/seats?showTimeId=" + url.QueryEscape(showtimeID)
	if err := g.c.getJSON(ctx, path, &seats); err != nil {
		g.log.Error("Failed to list seats", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("list seats for showtime %s: %w", showtimeID, err)
	}
	return seats, nil
}

func (g *seatInventory) MarkUnavailable(ctx context.Context, seatID string) error {
	body := map[string]bool{"isAvailable": false}
	path := "/seats/" + url.PathEscape(seatID)
	if err := g.c.send(ctx, http.MethodPatch, path, "", body, nil); err != nil {
		g.log.Error("Failed to mark seat unavailable", zap.Error(err), zap.String("seat_id", seatID))
		return fmt.Errorf("mark seat %s unavailable: %w", seatID, err)
	}
	return nil
}

// MarkUnavailableBatch marks each seat in turn. There is no rollback of
// already-marked seats on a partial failure; the booking stays the
// source of truth and the failed ids are reported for out-of-band
// reconciliation.
func (g *seatInventory) MarkUnavailableBatch(ctx context.Context, seatIDs []string) *SeatMarkResult {
	result := &SeatMarkResult{}
	for _, seatID := range seatIDs {
		if err := g.MarkUnavailable(ctx, seatID); err != nil {
			result.Failed = append(result.Failed, seatID)
			continue
		}
		result.Succeeded = append(result.Succeeded, seatID)
	}

	if !result.AllSucceeded() {
		g.log.Warn("Partial seat mark failure",
			zap.Strings("succeeded", result.Succeeded),
			zap.Strings("failed", result.Failed),
		)
	}
	return result
}
