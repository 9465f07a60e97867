//go:build unit || e2e

// Package fakeapi is an in-memory stand-in for the parking REST API.
package fakeapi

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"parking-portal/internal/domain/user"
	"parking-portal/internal/infra/apiclient/dto"
	"parking-portal/tests/common/authtest"

	"github.com/gin-gonic/gin"
)

type account struct {
	password  string
	firstname string
	role      user.Role
}

// Call is one request the fake received.
type Call struct {
	Method        string
	Path          string
	Authorization string
}

type Server struct {
	t      *testing.T
	srv    *httptest.Server
	issuer *authtest.TokenIssuer

	mu           sync.Mutex
	lots         []dto.Lot
	spots        map[int64][]dto.Spot
	accounts     map[string]account
	reservations []dto.Reservation
	created      []dto.CreateReservationRequest
	calls        []Call
	nextID       int64
}

// New starts the fake and stops it when the test ends.
func New(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		t:        t,
		issuer:   authtest.NewTokenIssuer("fake-api-secret"),
		spots:    make(map[int64][]dto.Spot),
		accounts: make(map[string]account),
		nextID:   1000,
	}

	engine := gin.New()
	engine.Use(s.record)
	api := engine.Group("/api")
	api.GET("/parking/lots", s.listLots)
	api.GET("/parking/:id", s.getLot)
	api.GET("/parking/:id/spots", s.listSpots)
	api.POST("/reservations", s.createReservation)
	api.GET("/reservations/user/:email", s.userReservations)
	api.POST("/reservations/:id", s.cancelReservation)
	api.POST("/auth/authenticate", s.authenticate)
	api.POST("/auth/register", s.register)
	admin := api.Group("/admin", s.requireBearer)
	admin.POST("/addParking", s.addParking)
	admin.POST("/simulate/:action/:spotId", s.simulate)
	admin.GET("/stats/parking/:id", s.stats)

	s.srv = httptest.NewServer(engine)
	t.Cleanup(s.srv.Close)
	return s
}

// BaseURL is what the portal's API_BASE_URL should be set to.
func (s *Server) BaseURL() string {
	return s.srv.URL + "/api"
}

func (s *Server) AddAccount(email, password, firstname string, role user.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[email] = account{password: password, firstname: firstname, role: role}
}

// AddLot registers a lot with spots labelled A1..An.
func (s *Server) AddLot(lot dto.Lot, statuses ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	spots := make([]dto.Spot, len(statuses))
	for i, st := range statuses {
		spots[i] = dto.Spot{
			ID:           lot.ID*100 + int64(i+1),
			SpotNumber:   "A" + strconv.Itoa(i+1),
			Status:       st,
			SpotType:     "STANDARD",
			ParkingLotID: lot.ID,
		}
	}
	s.lots = append(s.lots, lot)
	s.spots[lot.ID] = spots
}

// Created returns the reservation bodies the fake accepted.
func (s *Server) Created() []dto.CreateReservationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dto.CreateReservationRequest(nil), s.created...)
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Server) Lots() []dto.Lot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dto.Lot(nil), s.lots...)
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method:        c.Request.Method,
		Path:          c.Request.URL.Path,
		Authorization: c.GetHeader("Authorization"),
	})
	s.mu.Unlock()
	c.Next()
}

func (s *Server) requireBearer(c *gin.Context) {
	if !strings.HasPrefix(c.GetHeader("Authorization"), "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	c.Next()
}

func (s *Server) listLots(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lots := make([]dto.Lot, len(s.lots))
	for i, l := range s.lots {
		lots[i] = s.withAvailabilityLocked(l)
	}
	c.JSON(http.StatusOK, lots)
}

func (s *Server) getLot(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lot, ok := s.findLotLocked(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Parking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":             lot.ID,
		"name":           lot.Name,
		"address":        lot.Address,
		"city":           lot.City,
		"totalSpots":     lot.TotalSpots,
		"availableSpots": s.withAvailabilityLocked(lot).AvailableSpots,
		"hourlyRate":     lot.HourlyRate,
		"parkingSpot":    s.spots[lot.ID],
	})
}

func (s *Server) listSpots(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lot, ok := s.findLotLocked(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Parking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": s.spots[lot.ID]})
}

func (s *Server) createReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid reservation"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.created = append(s.created, req)
	res := dto.Reservation{
		ID:            s.nextID,
		UserName:      req.UserName,
		UserEmail:     req.UserEmail,
		UserPhone:     req.UserPhone,
		LicensePlate:  req.LicensePlate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DurationHours: req.DurationHours,
		Status:        "CONFIRMED",
		ParkingLotID:  req.ParkingLotID,
		ParkingSpotID: req.ParkingSpotID,
		SpotNumber:    req.SpotNumber,
		ParkingName:   req.ParkingName,
	}
	s.reservations = append(s.reservations, res)
	s.setSpotStatusLocked(req.ParkingSpotID, "RESERVED")
	c.JSON(http.StatusCreated, res)
}

func (s *Server) userReservations(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]dto.Reservation, 0)
	for _, r := range s.reservations {
		if strings.EqualFold(r.UserEmail, c.Param("email")) {
			list = append(list, r)
		}
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) cancelReservation(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			s.reservations[i].Status = "CANCELLED"
			c.Status(http.StatusOK)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Reservation not found"})
}

func (s *Server) authenticate(c *gin.Context) {
	var req dto.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	s.mu.Lock()
	acc, ok := s.accounts[req.Email]
	s.mu.Unlock()
	if !ok || acc.password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Bad credentials"})
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: s.issuer.GenerateToken(s.t, req.Email, acc.role, time.Hour),
		User:  &dto.AuthUser{Email: req.Email, Firstname: acc.firstname},
	})
}

func (s *Server) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	s.mu.Lock()
	if _, exists := s.accounts[req.Email]; exists {
		s.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"message": "Email already used"})
		return
	}
	s.accounts[req.Email] = account{password: req.Password, firstname: req.Firstname, role: user.RoleUser}
	s.mu.Unlock()
	c.JSON(http.StatusOK, dto.AuthResponse{Token: s.issuer.GenerateToken(s.t, req.Email, user.RoleUser, time.Hour)})
}

// addParking answers in plain text like the real backend.
func (s *Server) addParking(c *gin.Context) {
	var req dto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusOK, "error")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.lots = append(s.lots, dto.Lot{
		ID:          s.nextID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		TotalSpots:  req.TotalSpots,
		HourlyRate:  req.HourlyRate,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	})
	c.String(http.StatusOK, "parking created")
}

func (s *Server) simulate(c *gin.Context) {
	spotID, _ := strconv.ParseInt(c.Param("spotId"), 10, 64)
	next := map[string]string{"enter": "OCCUPIED", "exit": "AVAILABLE"}[c.Param("action")]

	s.mu.Lock()
	defer s.mu.Unlock()
	if next == "" || !s.setSpotStatusLocked(spotID, next) {
		c.String(http.StatusOK, "error")
		return
	}
	c.String(http.StatusOK, "car "+c.Param("action"))
}

func (s *Server) stats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lot, ok := s.findLotLocked(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Parking not found"})
		return
	}
	st := dto.Stats{ParkingLotID: lot.ID}
	for _, sp := range s.spots[lot.ID] {
		if sp.Status == "AVAILABLE" {
			st.AvailableSpots++
		} else {
			st.OccupiedSpots++
		}
	}
	if total := st.AvailableSpots + st.OccupiedSpots; total > 0 {
		st.OccupancyRate = float64(st.OccupiedSpots) * 100 / float64(total)
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) findLotLocked(rawID string) (dto.Lot, bool) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return dto.Lot{}, false
	}
	for _, l := range s.lots {
		if l.ID == id {
			return l, true
		}
	}
	return dto.Lot{}, false
}

func (s *Server) withAvailabilityLocked(l dto.Lot) dto.Lot {
	spots, ok := s.spots[l.ID]
	if !ok {
		return l
	}
	l.AvailableSpots = 0
	for _, sp := range spots {
		if sp.Status == "AVAILABLE" {
			l.AvailableSpots++
		}
	}
	return l
}

func (s *Server) setSpotStatusLocked(spotID int64, status string) bool {
	for lotID, spots := range s.spots {
		for i := range spots {
			if spots[i].ID == spotID {
				s.spots[lotID][i].Status = status
				return true
			}
		}
	}
	return false
}
