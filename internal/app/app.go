// Package app assembles repositories, services and handlers into the HTTP
// router served by cmd/api.
package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkwash/internal/config"
	"parkwash/internal/database"
	"parkwash/internal/domain/agreement"
	"parkwash/internal/domain/billing"
	"parkwash/internal/domain/board"
	"parkwash/internal/domain/dashboard"
	"parkwash/internal/domain/employee"
	"parkwash/internal/domain/parking"
	"parkwash/internal/domain/rate"
	"parkwash/internal/domain/shift"
	"parkwash/internal/domain/subscription"
	"parkwash/internal/domain/washing"
	"parkwash/internal/middleware"
	jwtsvc "parkwash/internal/pkg/jwt"
)

// Models lists every persisted type in migration order.
func Models() []any {
	return []any{
		&employee.Employee{},
		&rate.Rate{},
		&agreement.Agreement{},
		&agreement.EnrolledVehicle{},
		&subscription.Subscription{},
		&shift.Shift{},
		&shift.RevenueLine{},
		&shift.Expense{},
		&parking.Session{},
		&washing.Job{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Services is the wired service graph. cmd/parkctl reuses it for seeding.
type Services struct {
	JWT           *jwtsvc.Service
	Employees     *employee.Service
	Rates         *rate.Service
	Agreements    *agreement.Service
	Subscriptions *subscription.Service
	Shifts        *shift.Service
	Quoter        *billing.Quoter
	Parking       *parking.Service
	Washing       *washing.Service
	Dashboard     *dashboard.Service
	Board         *board.Hub
}

func NewServices(cfg *config.Config, db *gorm.DB) (*Services, error) {
	reports, err := database.SQLX(db)
	if err != nil {
		return nil, fmt.Errorf("open reporting handle: %w", err)
	}

	s := &Services{
		JWT:   jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL),
		Board: board.NewHub(),
	}

	s.Employees = employee.NewService(employee.NewRepository(db), s.JWT)
	s.Rates = rate.NewService(rate.NewRepository(db))
	s.Agreements = agreement.NewService(agreement.NewRepository(db))
	s.Subscriptions = subscription.NewService(subscription.NewRepository(db), cfg.Location, cfg.ExpiringWindowDays)
	s.Shifts = shift.NewService(db)
	s.Quoter = billing.NewQuoter(s.Rates, s.Agreements, s.Subscriptions, rate.Type(cfg.DefaultRateType))
	s.Parking = parking.NewService(db, parking.NewRepository(db), s.Shifts, s.Quoter)
	s.Washing = washing.NewService(db, washing.NewRepository(db), s.Shifts, s.Employees, s.Quoter, s.Parking, s.Board)
	s.Dashboard = dashboard.NewService(dashboard.NewRepository(reports), cfg.Location, cfg.ExpiringWindowDays)

	return s, nil
}

func NewRouter(cfg *config.Config, s *Services) *gin.Engine {
	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	employeeHandler := employee.NewHandler(s.Employees)

	v1 := r.Group("/api/v1")
	employeeHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(s.JWT))
	{
		employeeHandler.RegisterProtectedRoutes(protected)
		rate.RegisterRoutes(protected, rate.NewHandler(s.Rates))
		agreement.RegisterRoutes(protected, agreement.NewHandler(s.Agreements))
		subscription.RegisterRoutes(protected, subscription.NewHandler(s.Subscriptions))
		shift.RegisterRoutes(protected, shift.NewHandler(s.Shifts))
		parking.RegisterRoutes(protected, parking.NewHandler(s.Parking))
		washing.RegisterRoutes(protected, washing.NewHandler(s.Washing))
		board.RegisterRoutes(protected, board.NewHandler(s.Board, cfg.CORSAllowedOrigins))
		dashboard.RegisterRoutes(protected, dashboard.NewHandler(s.Dashboard))
	}

	return r
}
