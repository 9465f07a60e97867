package request

import (
	"time"

	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/usecase"
)

type OpenFlowRequest struct {
	LotID  int64 `json:"lotId" binding:"required,gt=0"`
	SpotID int64 `json:"spotId" binding:"required,gt=0"`
}

// EditFlowRequest only carries the fields the user touched.
type EditFlowRequest struct {
	UserName      *string `json:"userName"`
	UserEmail     *string `json:"userEmail"`
	UserPhone     *string `json:"userPhone"`
	LicensePlate  *string `json:"licensePlate"`
	StartTime     *string `json:"startTime"`
	DurationHours *int    `json:"durationHours"`
}

// ToPatch reads startTime in loc unless it carries its own offset.
func (r *EditFlowRequest) ToPatch(loc *time.Location) (usecase.FormPatch, error) {
	p := usecase.FormPatch{
		UserName:      r.UserName,
		UserEmail:     r.UserEmail,
		UserPhone:     r.UserPhone,
		LicensePlate:  r.LicensePlate,
		DurationHours: r.DurationHours,
	}
	if r.StartTime != nil {
		start, err := reservation.ParseWire(*r.StartTime, loc)
		if err != nil {
			return usecase.FormPatch{}, err
		}
		p.StartTime = &start
	}
	return p, nil
}
