package get_booking_slip

import "context"

type BookingService interface {
	Slip(ctx context.Context, bookingID int64) ([]byte, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
