package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/infra"
	"parking-portal/internal/infra/apiclient/dto"
)

// CreateReservation goes out on the public channel; the parking API accepts
// anonymous bookings.
func (c *Client) CreateReservation(ctx context.Context, req reservation.Request) (reservation.Reservation, error) {
	var created dto.Reservation
	if err := c.do(ctx, public, http.MethodPost, "/reservations", c.conv.ReservationRequest(req), &created); err != nil {
		return reservation.Reservation{}, err
	}
	out, err := c.conv.Reservation(created)
	if err != nil {
		return reservation.Reservation{}, infra.NewAPIError(http.StatusOK, "malformed response")
	}
	return out, nil
}

func (c *Client) ListUserReservations(ctx context.Context, email string) ([]reservation.Reservation, error) {
	var list []dto.Reservation
	if err := c.do(ctx, private, http.MethodGet, "/reservations/user/"+url.PathEscape(email), nil, &list); err != nil {
		return nil, err
	}
	out, err := c.conv.Reservations(list)
	if err != nil {
		return nil, infra.NewAPIError(http.StatusOK, "malformed response")
	}
	return out, nil
}

func (c *Client) CancelReservation(ctx context.Context, reservationID int64) error {
	return c.do(ctx, private, http.MethodPost, "/reservations/"+pathID(reservationID), nil, nil)
}
