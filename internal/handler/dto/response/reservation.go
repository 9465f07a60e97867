package response

import (
	"time"

	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/usecase"
)

type ReservationResponse struct {
	ID               int64    `json:"id"`
	LotID            int64    `json:"parkingLotId"`
	LotName          string   `json:"parkingName,omitempty"`
	SpotID           int64    `json:"parkingSpotId"`
	SpotLabel        string   `json:"spotNumber,omitempty"`
	UserName         string   `json:"userName"`
	UserEmail        string   `json:"userEmail"`
	UserPhone        string   `json:"userPhone,omitempty"`
	LicensePlate     string   `json:"licensePlate"`
	StartTime        string   `json:"startTime"`
	EndTime          string   `json:"endTime"`
	DurationHours    int      `json:"durationHours"`
	Duration         string   `json:"duration"`
	Status           string   `json:"status"`
	Cancellable      bool     `json:"cancellable"`
	Expired          bool     `json:"expired"`
	RemainingMinutes int      `json:"remainingMinutes"`
	TotalAmount      *float64 `json:"totalAmount"`
	PaymentStatus    string   `json:"paymentStatus,omitempty"`
}

func FromReservation(r reservation.Reservation, now time.Time) ReservationResponse {
	return ReservationResponse{
		ID:               r.ID,
		LotID:            r.LotID,
		LotName:          r.LotName,
		SpotID:           r.SpotID,
		SpotLabel:        r.SpotLabel,
		UserName:         r.UserName,
		UserEmail:        r.UserEmail,
		UserPhone:        r.UserPhone,
		LicensePlate:     r.LicensePlate,
		StartTime:        formatTime(r.StartTime),
		EndTime:          formatTime(r.EndTime),
		DurationHours:    r.DurationHours,
		Duration:         reservation.FormatDuration(float64(r.DurationHours)),
		Status:           r.Status.String(),
		Cancellable:      r.IsCancellable(),
		Expired:          r.HasExpired(now),
		RemainingMinutes: int(r.TimeRemaining(now) / time.Minute),
		TotalAmount:      r.TotalAmount,
		PaymentStatus:    r.PaymentStatus,
	}
}

func FromReservations(list []reservation.Reservation, now time.Time) []ReservationResponse {
	res := make([]ReservationResponse, len(list))
	for i, r := range list {
		res[i] = FromReservation(r, now)
	}
	return res
}

type FlowFormResponse struct {
	UserName      string `json:"userName"`
	UserEmail     string `json:"userEmail"`
	UserPhone     string `json:"userPhone"`
	LicensePlate  string `json:"licensePlate"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`
}

type FlowResponse struct {
	ID          string               `json:"id"`
	State       string               `json:"state"`
	LotID       int64                `json:"parkingLotId"`
	LotName     string               `json:"parkingName"`
	SpotID      int64                `json:"parkingSpotId"`
	SpotLabel   string               `json:"spotNumber"`
	Form        FlowFormResponse     `json:"form"`
	EndTime     string               `json:"endTime,omitempty"`
	FieldErrors map[string]string    `json:"fieldErrors,omitempty"`
	FormError   string               `json:"formError,omitempty"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

func FromFlowView(v usecase.FlowView, now time.Time) FlowResponse {
	res := FlowResponse{
		ID:        v.ID.String(),
		State:     string(v.State),
		LotID:     v.Target.LotID,
		LotName:   v.Target.LotName,
		SpotID:    v.Target.SpotID,
		SpotLabel: v.Target.SpotLabel,
		Form: FlowFormResponse{
			UserName:      v.Form.UserName,
			UserEmail:     v.Form.UserEmail,
			UserPhone:     v.Form.UserPhone,
			LicensePlate:  v.Form.LicensePlate,
			StartTime:     formatTime(v.Form.StartTime),
			DurationHours: v.Form.DurationHours,
		},
		EndTime:   formatTime(v.EndTime),
		FormError: v.FormError,
	}
	if len(v.FieldErrors) > 0 {
		res.FieldErrors = make(map[string]string, len(v.FieldErrors))
		for field, msg := range v.FieldErrors {
			res.FieldErrors[string(field)] = msg
		}
	}
	if v.Created != nil {
		created := FromReservation(*v.Created, now)
		res.Reservation = &created
	}
	return res
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(reservation.WireLayout)
}
