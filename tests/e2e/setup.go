//go:build e2e

package e2e

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"parking-portal/cmd/bootstrap"
	"parking-portal/cmd/bootstrap/components"
	"parking-portal/internal/domain/user"
	"parking-portal/internal/infra/apiclient/dto"
	"parking-portal/internal/pkg/config"
	"parking-portal/tests/common/fakeapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const (
	UserEmail     = "amina@example.com"
	UserPassword  = "secret1"
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"

	AgdalLotID  int64 = 1
	GuelizLotID int64 = 2
)

// SharedSuite boots the whole portal against a fresh fake parking API and an
// on-disk session store for every test method.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
	API    *fakeapi.Server

	app *fx.App
}

func (s *SharedSuite) SetupTest() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	s.API = fakeapi.New(t)
	seedFakeAPI(s.API)

	cfg := config.NewTestConfig()
	cfg.API.BaseURL = s.API.BaseURL()
	cfg.Session = config.SessionConfig{
		Backend: "sqlite",
		DBPath:  filepath.Join(t.TempDir(), "session.db"),
	}
	s.Config = cfg

	s.start()
}

func (s *SharedSuite) TearDownTest() {
	s.stop()
}

// Restart stops the portal and boots a new one on the same session file.
func (s *SharedSuite) Restart() {
	s.stop()
	s.start()
}

func (s *SharedSuite) start() {
	router, app := buildE2EApp(s.T(), s.Config)
	s.Router = router
	s.app = app
}

func (s *SharedSuite) stop() {
	if s.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		s.T().Logf("failed to stop fx app: %v", err)
	}
	s.app = nil
}

func buildE2EApp(t *testing.T, cfg config.Config) (*gin.Engine, *fx.App) {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Module("testconfig",
			fx.Provide(func() config.Config { return cfg }),
		),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.SessionModule,
		bootstrap.APIClientModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not built")

	return router, app
}

func seedFakeAPI(api *fakeapi.Server) {
	api.AddAccount(UserEmail, UserPassword, "Amina", user.RoleUser)
	api.AddAccount(AdminEmail, AdminPassword, "Youssef", user.RoleAdmin)

	api.AddLot(dto.Lot{
		ID:          AgdalLotID,
		Name:        "Parking Agdal",
		Address:     "Avenue Fal Ould Oumeir",
		City:        "Rabat",
		TotalSpots:  3,
		HourlyRate:  10,
		OpeningTime: "06:00",
		ClosingTime: "23:00",
		Status:      "OPEN",
	}, "AVAILABLE", "OCCUPIED", "AVAILABLE")

	api.AddLot(dto.Lot{
		ID:          GuelizLotID,
		Name:        "Parking Gueliz",
		Address:     "Rue de la Liberté",
		City:        "Marrakech",
		TotalSpots:  2,
		HourlyRate:  8,
		OpeningTime: "07:00",
		ClosingTime: "22:00",
		Status:      "OPEN",
	}, "RESERVED", "AVAILABLE")
}
