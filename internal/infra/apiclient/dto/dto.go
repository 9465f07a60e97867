// Package dto holds the parking API's JSON payloads.
package dto

import "encoding/json"

type Lot struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	TotalSpots     int     `json:"totalSpots"`
	AvailableSpots int     `json:"availableSpots"`
	HourlyRate     float64 `json:"hourlyRate"`
	OpeningTime    string  `json:"openingTime"`
	ClosingTime    string  `json:"closingTime"`
	Status         string  `json:"status"`

	// The lot detail carries its spots under either key.
	RawSpots       json.RawMessage `json:"spots,omitempty"`
	RawParkingSpot json.RawMessage `json:"parkingSpot,omitempty"`
}

type Spot struct {
	ID                 int64  `json:"id"`
	SpotNumber         string `json:"spotNumber"`
	Status             string `json:"status"`
	SpotType           string `json:"spotType"`
	FloorNumber        int    `json:"floorNumber"`
	Section            string `json:"section"`
	IsAccessible       bool   `json:"isAccessible"`
	IsCovered          bool   `json:"isCovered"`
	IsElectricCharging bool   `json:"isElectricCharging"`
	ParkingLotID       int64  `json:"parkingLotId"`
}

// SpotPage is the paginated envelope some spot endpoints answer with.
type SpotPage struct {
	Content []Spot `json:"content"`
}

type Reservation struct {
	ID            int64    `json:"id"`
	UserName      string   `json:"userName"`
	UserEmail     string   `json:"userEmail"`
	UserPhone     string   `json:"userPhone"`
	LicensePlate  string   `json:"licensePlate"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	DurationHours int      `json:"durationHours"`
	Status        string   `json:"status"`
	TotalAmount   *float64 `json:"totalAmount"`
	PaymentStatus string   `json:"paymentStatus"`
	ParkingLotID  int64    `json:"parkingLotId"`
	ParkingSpotID int64    `json:"parkingSpotId"`
	SpotNumber    string   `json:"spotNumber"`
	ParkingName   string   `json:"parkingName"`
}

type CreateReservationRequest struct {
	ParkingLotID  int64  `json:"parkingLotId"`
	ParkingSpotID int64  `json:"parkingSpotId"`
	UserName      string `json:"userName"`
	UserEmail     string `json:"userEmail"`
	UserPhone     string `json:"userPhone"`
	LicensePlate  string `json:"licensePlate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	DurationHours int    `json:"durationHours"`
	SpotNumber    string `json:"spotNumber"`
	ParkingName   string `json:"parkingName"`
}

type AuthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type AuthUser struct {
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Role      string `json:"role"`
}

type AuthResponse struct {
	Token string    `json:"token"`
	User  *AuthUser `json:"user"`
}

type CreateLotRequest struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	TotalSpots  int     `json:"totalSpots"`
	HourlyRate  float64 `json:"hourlyRate"`
	OpeningTime string  `json:"openingTime"`
	ClosingTime string  `json:"closingTime"`
}

type Stats struct {
	ParkingLotID   int64   `json:"parkingLotId"`
	AvailableSpots int     `json:"availableSpots"`
	OccupiedSpots  int     `json:"occupiedSpots"`
	OccupancyRate  float64 `json:"occupancyRate"`
	TotalRevenue   float64 `json:"totalRevenue"`
}
