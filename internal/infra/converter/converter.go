package converter

import (
	"time"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/infra/apiclient/dto"
	"parking-portal/internal/pkg/errs"
	"parking-portal/internal/pkg/ptr"

	"github.com/jinzhu/copier"
)

var spotNames = copier.FieldNameMapping{
	SrcType: dto.Spot{},
	DstType: parking.Spot{},
	Mapping: map[string]string{
		"SpotNumber":         "Label",
		"ParkingLotID":       "LotID",
		"IsAccessible":       "Accessible",
		"IsCovered":          "Covered",
		"IsElectricCharging": "ElectricCharging",
	},
}

var reservationNames = copier.FieldNameMapping{
	SrcType: dto.Reservation{},
	DstType: reservation.Reservation{},
	Mapping: map[string]string{
		"ParkingLotID":  "LotID",
		"ParkingSpotID": "SpotID",
		"SpotNumber":    "SpotLabel",
		"ParkingName":   "LotName",
	},
}

var statusConverters = []copier.TypeConverter{
	{
		SrcType: "",
		DstType: parking.SpotStatus(""),
		Fn: func(src any) (any, error) {
			return parking.ParseSpotStatus(src.(string)), nil
		},
	},
	{
		SrcType: "",
		DstType: reservation.Status(""),
		Fn: func(src any) (any, error) {
			return reservation.ParseStatus(src.(string)), nil
		},
	},
}

// Converter maps parking API payloads to domain values. Zone-less times are
// read in loc.
type Converter struct {
	loc *time.Location
}

func New(loc *time.Location) *Converter {
	if loc == nil {
		loc = time.UTC
	}
	return &Converter{loc: loc}
}

func (c *Converter) option() copier.Option {
	converters := append([]copier.TypeConverter{}, statusConverters...)
	converters = append(converters, copier.TypeConverter{
		SrcType: "",
		DstType: time.Time{},
		Fn: func(src any) (any, error) {
			return reservation.ParseWire(src.(string), c.loc)
		},
	})
	return copier.Option{
		Converters:       converters,
		FieldNameMapping: []copier.FieldNameMapping{spotNames, reservationNames},
	}
}

func (c *Converter) Spot(in dto.Spot) (parking.Spot, error) {
	var out parking.Spot
	if err := copier.CopyWithOption(&out, &in, c.option()); err != nil {
		return parking.Spot{}, errs.Wrap(err, "converting spot")
	}
	return out, nil
}

func (c *Converter) Spots(in []dto.Spot) ([]parking.Spot, error) {
	out := make([]parking.Spot, 0, len(in))
	for _, s := range in {
		spot, err := c.Spot(s)
		if err != nil {
			return nil, err
		}
		out = append(out, spot)
	}
	return out, nil
}

// Lot leaves Spots empty; spot collections go through the spot decoder.
func (c *Converter) Lot(in dto.Lot) (parking.Lot, error) {
	var out parking.Lot
	if err := copier.CopyWithOption(&out, &in, c.option()); err != nil {
		return parking.Lot{}, errs.Wrap(err, "converting parking lot")
	}
	out.Spots = nil
	return out, nil
}

func (c *Converter) Lots(in []dto.Lot) ([]parking.Lot, error) {
	out := make([]parking.Lot, 0, len(in))
	for _, l := range in {
		lot, err := c.Lot(l)
		if err != nil {
			return nil, err
		}
		out = append(out, lot)
	}
	return out, nil
}

func (c *Converter) Reservation(in dto.Reservation) (reservation.Reservation, error) {
	var out reservation.Reservation
	if err := copier.CopyWithOption(&out, &in, c.option()); err != nil {
		return reservation.Reservation{}, errs.Wrapf(err, "converting reservation %d", in.ID)
	}
	if out.EndTime.IsZero() && !out.StartTime.IsZero() && out.DurationHours > 0 {
		out.EndTime = reservation.CalculateEndTime(out.StartTime, out.DurationHours)
	}
	return out, nil
}

func (c *Converter) Reservations(in []dto.Reservation) ([]reservation.Reservation, error) {
	out := make([]reservation.Reservation, 0, len(in))
	for _, r := range in {
		res, err := c.Reservation(r)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (c *Converter) Stats(in dto.Stats) parking.Stats {
	var out parking.Stats
	_ = copier.Copy(&out, &in)
	return out
}

func (c *Converter) ReservationRequest(in reservation.Request) dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		ParkingLotID:  in.LotID,
		ParkingSpotID: in.SpotID,
		UserName:      in.UserName,
		UserEmail:     in.UserEmail,
		UserPhone:     in.UserPhone,
		LicensePlate:  in.LicensePlate,
		StartTime:     reservation.FormatWire(in.StartTime, c.loc),
		EndTime:       reservation.FormatWire(in.EndTime, c.loc),
		DurationHours: in.DurationHours,
		SpotNumber:    in.SpotLabel,
		ParkingName:   in.LotName,
	}
}

// LotRequest expects a validated lot; missing coordinates are sent as 0.
func (c *Converter) LotRequest(in parking.NewLot) dto.CreateLotRequest {
	var out dto.CreateLotRequest
	_ = copier.Copy(&out, &in)
	out.Latitude = ptr.Value(in.Latitude)
	out.Longitude = ptr.Value(in.Longitude)
	return out
}
