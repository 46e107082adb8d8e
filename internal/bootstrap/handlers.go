package bootstrap

import (
	"log/slog"
	"os"

	"github.com/foodbridge/backend/internal/auth"
	"github.com/foodbridge/backend/internal/cluster"
	"github.com/foodbridge/backend/internal/donation"
	"github.com/foodbridge/backend/internal/health"
	"github.com/foodbridge/backend/internal/lifecycle"
	"github.com/foodbridge/backend/internal/matching"
	"github.com/foodbridge/backend/internal/user"
	"github.com/foodbridge/backend/internal/volunteer"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvideJWTValidator(cfg *Config) *auth.JWTValidator {
	return auth.NewJWTValidator(cfg.HMACKey)
}

func ProvideJWTMiddleware(validator *auth.JWTValidator, userStore *user.Store) *auth.Middleware {
	return auth.NewMiddleware(validator, userStore)
}

func ProvideMatchingEngine(volunteerStore *volunteer.Store) *matching.Engine {
	return matching.NewEngine(volunteerStore)
}

func ProvideLifecycleService(db *gorm.DB, donationStore *donation.Store, volunteerStore *volunteer.Store, engine *matching.Engine, logger *slog.Logger) *lifecycle.Service {
	return lifecycle.NewService(db, donationStore, volunteerStore, engine, logger.With("component", "lifecycle"))
}

func ProvideUserHandler(store *user.Store, volunteerStore *volunteer.Store, logger *slog.Logger) *user.Handler {
	return user.NewHandler(store, volunteerStore, logger.With("handler", "user"))
}

func ProvideVolunteerHandler(store *volunteer.Store, donationStore *donation.Store, logger *slog.Logger) *volunteer.Handler {
	return volunteer.NewHandler(store, donationStore, logger.With("handler", "volunteer"))
}

func ProvideDonationHandler(store *donation.Store, logger *slog.Logger) *donation.Handler {
	return donation.NewHandler(store, logger.With("handler", "donation"))
}

func ProvideLifecycleHandler(service *lifecycle.Service, logger *slog.Logger) *lifecycle.Handler {
	return lifecycle.NewHandler(service, logger.With("handler", "lifecycle"))
}

func ProvideClusterHandler(store *cluster.Store, logger *slog.Logger) *cluster.Handler {
	return cluster.NewHandler(store, logger.With("handler", "cluster"))
}

type HandlerParams struct {
	fx.In

	UserHandler      *user.Handler
	VolunteerHandler *volunteer.Handler
	DonationHandler  *donation.Handler
	LifecycleHandler *lifecycle.Handler
	ClusterHandler   *cluster.Handler
	HealthHandler    *health.Handler
	JWTMiddleware    *auth.Middleware
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	api := e.Group("/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(params.JWTMiddleware.Authenticate)
	params.UserHandler.RegisterRoutes(authGroup)

	volunteersGroup := api.Group("/volunteers")
	volunteersGroup.Use(params.JWTMiddleware.Authenticate)
	params.VolunteerHandler.RegisterRoutes(volunteersGroup)

	donationsGroup := api.Group("/donations")
	donationsGroup.Use(params.JWTMiddleware.Authenticate)
	params.DonationHandler.RegisterRoutes(donationsGroup)
	params.LifecycleHandler.RegisterRoutes(donationsGroup)

	clustersGroup := api.Group("/clusters")
	clustersGroup.Use(params.JWTMiddleware.Authenticate)
	params.ClusterHandler.RegisterRoutes(clustersGroup)

	params.HealthHandler.RegisterRoutes(e)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvideJWTValidator,
		ProvideJWTMiddleware,
		ProvideMatchingEngine,
		ProvideLifecycleService,
		ProvideUserHandler,
		ProvideVolunteerHandler,
		ProvideDonationHandler,
		ProvideLifecycleHandler,
		ProvideClusterHandler,
		health.NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
