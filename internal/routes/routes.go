package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bank-dashboard/internal/controllers"
	"bank-dashboard/internal/integrations"
	"bank-dashboard/internal/repositories"
	"bank-dashboard/internal/services"
	"bank-dashboard/pkg/config"
	"bank-dashboard/pkg/metrics"
	"bank-dashboard/pkg/middleware"
	"bank-dashboard/pkg/service"
	"bank-dashboard/pkg/validation"
)

type Loggers struct {
	Main     *zap.Logger
	Auth     *zap.Logger
	Crud     *zap.Logger
	Geocoder *zap.Logger
}

// Dependencies - всё, что InitRouter получает из main. Redis может быть nil.
type Dependencies struct {
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Geocoders integrations.RegistryInterface
	JWT       service.JWTService
	Metrics   *metrics.Metrics
	Validator *validation.CustomValidator
	Config    *config.Config
}

type handlers struct {
	views     *controllers.ViewController
	tables    *controllers.TableController
	dashboard *controllers.DashboardController
	auth      *controllers.AuthController
}

func InitRouter(e *echo.Echo, deps Dependencies, loggers *Loggers) error {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")
	cfg := deps.Config

	// --- 1. РЕПОЗИТОРИИ ---
	tableRepo := repositories.NewTableRepository(deps.DB, loggers.Crud)
	dashboardRepo := repositories.NewDashboardRepository(deps.DB, loggers.Main)
	locationRepo := repositories.NewBranchLocationRepository(deps.DB, loggers.Main)

	var cacheRepo repositories.CacheRepositoryInterface
	if deps.Redis != nil {
		cacheRepo = repositories.NewRedisCacheRepository(deps.Redis, "bankdash:")
	}

	geocoder, err := deps.Geocoders.GetActive()
	if err != nil {
		return err
	}

	// --- 2. СЕРВИСЫ ---
	tableService := services.NewTableService(tableRepo, deps.Validator, deps.Metrics, loggers.Crud)
	dashboardService := services.NewDashboardService(dashboardRepo, deps.Metrics, loggers.Main)
	branchMapService := services.NewBranchMapService(locationRepo, geocoder, cacheRepo, cfg.Geocoder.CacheTTL, deps.Metrics, loggers.Geocoder)
	authService := services.NewAuthService(cfg.Auth, deps.JWT, loggers.Auth)
	if !authService.Enabled() {
		loggers.Auth.Warn("ADMIN_PASSWORD_HASH не задан: авторизация отключена")
	}

	// --- 3. КОНТРОЛЛЕРЫ ---
	h := handlers{
		views:     controllers.NewViewController(deps.DB, loggers.Main),
		tables:    controllers.NewTableController(tableService, cfg.Server.RequestTimeout, loggers.Crud),
		dashboard: controllers.NewDashboardController(dashboardService, branchMapService, cfg.Server.RequestTimeout, loggers.Main),
		auth:      controllers.NewAuthController(authService, loggers.Auth),
	}
	authMW := middleware.NewAuthMiddleware(deps.JWT, authService.Enabled(), loggers.Auth)

	registerRoutes(e, h, authMW, deps.Metrics)
	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено", zap.Duration("request_timeout", cfg.Server.RequestTimeout))
	return nil
}

func registerRoutes(e *echo.Echo, h handlers, authMW *middleware.AuthMiddleware, m *metrics.Metrics) {
	e.GET("/health", h.views.Health)
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	api := e.Group("/api")
	api.GET("/views", h.views.Views)
	runAuthRouter(api, h.auth)

	secureGroup := api.Group("", authMW.Auth)
	runCrudRouter(secureGroup, h.tables)
	runVisualizationRouter(secureGroup, h.dashboard)
}
