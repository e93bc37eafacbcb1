package list_bookings

import (
	"net/url"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SpaBookingService/internal/service/bookings/models"
)

// ToServiceRequest конвертирует query параметры в запрос к сервису
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	limit, err := handlers.QueryInt(query, "limit")
	if err != nil {
		return nil, err
	}
	offset, err := handlers.QueryInt(query, "offset")
	if err != nil {
		return nil, err
	}

	return &models.ListBookingsRequest{
		Status: handlers.QueryString(query, "status"),
		Date:   handlers.QueryString(query, "date"),
		Limit:  limit,
		Offset: offset,
	}, nil
}
