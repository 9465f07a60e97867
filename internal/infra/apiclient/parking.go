package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/infra"
	"parking-portal/internal/infra/apiclient/dto"
)

func (c *Client) ListLots(ctx context.Context) ([]parking.Lot, error) {
	var lots []dto.Lot
	if err := c.do(ctx, public, http.MethodGet, "/parking/lots", nil, &lots); err != nil {
		return nil, err
	}
	out, err := c.conv.Lots(lots)
	if err != nil {
		return nil, infra.NewAPIError(http.StatusOK, "malformed response")
	}
	return out, nil
}

// GetLot returns the lot with its spots.
func (c *Client) GetLot(ctx context.Context, lotID int64) (parking.Lot, error) {
	var lot dto.Lot
	if err := c.do(ctx, public, http.MethodGet, "/parking/"+pathID(lotID), nil, &lot); err != nil {
		return parking.Lot{}, err
	}
	out, err := c.conv.Lot(lot)
	if err != nil {
		return parking.Lot{}, infra.NewAPIError(http.StatusOK, "malformed response")
	}

	raw := lot.RawSpots
	if len(raw) == 0 || string(raw) == "null" {
		raw = lot.RawParkingSpot
	}
	out.Spots = decodeSpots(raw, c.conv, c.logger)
	return out, nil
}

func (c *Client) ListSpots(ctx context.Context, lotID int64) ([]parking.Spot, error) {
	var raw json.RawMessage
	if err := c.do(ctx, public, http.MethodGet, fmt.Sprintf("/parking/%s/spots", pathID(lotID)), nil, &raw); err != nil {
		return nil, err
	}
	return decodeSpots(raw, c.conv, c.logger), nil
}

func pathID(id int64) string {
	return url.PathEscape(strconv.FormatInt(id, 10))
}
