package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cinema-wizard/internal/data/entity"
	"cinema-wizard/pkg/utils"

	"go.uber.org/zap"
)

// BookingLedger calls act on behalf of the logged-in user, so both
// forward the caller's bearer token from the request context.
type BookingLedger interface {
	Create(ctx context.Context, req *entity.BookingRequest) (*entity.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]*entity.Booking, error)
}

type bookingLedger struct {
	c   *client
	log *zap.Logger
}

func (g *bookingLedger) Create(ctx context.Context, req *entity.BookingRequest) (*entity.Booking, error) {
	token, _ := utils.GetTokenFromContext(ctx)

	var booking entity.Booking
	if err := g.c.send(ctx, http.MethodPost, "/bookings", token, req, &booking); err != nil {
		g.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.String("showtime_id", req.ShowtimeID),
			zap.Strings("seat_ids", req.SeatIDs),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	g.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", booking.UserID),
		zap.Float64("total_price", booking.TotalPrice),
	)
	return &booking, nil
}

func (g *bookingLedger) GetByUserID(ctx context.Context, userID string) ([]*entity.Booking, error) {
	token, _ := utils.GetTokenFromContext(ctx)

	var bookings []*entity.Booking
	path := "/bookings?userId=" + url.QueryEscape(userID)
	if err := g.c.send(ctx, http.MethodGet, path, token, nil, &bookings); err != nil {
		g.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}
