package apiclient

import (
	"context"
	"net/http"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/infra/apiclient/dto"
)

func (c *Client) CreateLot(ctx context.Context, lot parking.NewLot) error {
	return c.doCommand(ctx, http.MethodPost, "/admin/addParking", c.conv.LotRequest(lot))
}

func (c *Client) SimulateEnter(ctx context.Context, spotID int64) error {
	return c.doCommand(ctx, http.MethodPost, "/admin/simulate/enter/"+pathID(spotID), nil)
}

func (c *Client) SimulateExit(ctx context.Context, spotID int64) error {
	return c.doCommand(ctx, http.MethodPost, "/admin/simulate/exit/"+pathID(spotID), nil)
}

func (c *Client) LotStats(ctx context.Context, lotID int64) (parking.Stats, error) {
	var stats dto.Stats
	if err := c.do(ctx, private, http.MethodGet, "/admin/stats/parking/"+pathID(lotID), nil, &stats); err != nil {
		return parking.Stats{}, err
	}
	return c.conv.Stats(stats), nil
}
