package usecase

import (
	"context"

	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/internal/dto/request"
	"cinema-wizard/internal/dto/response"

	"go.uber.org/zap"
)

// BookingService serves the booking history page.
type BookingService interface {
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	gw  *gateway.Gateway
	log *zap.Logger
}

func NewBookingService(gw *gateway.Gateway, log *zap.Logger) BookingService {
	return &bookingService{
		gw:  gw,
		log: log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	// the ledger has no paging of its own; page locally
	bookings, err := s.gw.Bookings.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, collaboratorErr(err)
	}

	total := int64(len(bookings))
	page := pageSlice(bookings, req.Offset(), req.Limit())

	s.log.Info("User bookings retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(page)),
		zap.Int64("total", total),
	)
	return response.NewPaginatedResponse(response.BookingsToResponse(page), req.Page, req.Limit(), total), nil
}
