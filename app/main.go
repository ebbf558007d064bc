package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"bank-dashboard/internal/integrations"
	"bank-dashboard/internal/integrations/mock"
	"bank-dashboard/internal/integrations/nominatim"
	"bank-dashboard/internal/routes"
	"bank-dashboard/internal/schema"
	"bank-dashboard/migrations"
	"bank-dashboard/pkg/config"
	"bank-dashboard/pkg/database/postgresql"
	apperrors "bank-dashboard/pkg/errors"
	applogger "bank-dashboard/pkg/logger"
	"bank-dashboard/pkg/metrics"
	"bank-dashboard/pkg/middleware"
	"bank-dashboard/pkg/service"
	"bank-dashboard/pkg/utils"
	"bank-dashboard/pkg/validation"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. База данных
	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		logger.Fatal("не удалось подключиться к PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()

	if cfg.Postgres.AutoMigrate {
		if err := migrations.UpFromPool(ctx, dbConn, logger.Named("migrations")); err != nil {
			logger.Fatal("ошибка применения миграций", zap.Error(err))
		}
	}

	missing, err := schema.Verify(ctx, dbConn)
	if err != nil {
		logger.Warn("не удалось сверить схему БД", zap.Error(err))
	}
	for _, col := range missing {
		logger.Warn("колонка из дескриптора отсутствует в БД", zap.String("column", col))
	}

	// 3. Redis - только кеш геокодинга, без него сервер работает
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logger.Warn("Redis недоступен, кеш геокодинга отключён", zap.Error(err), zap.String("address", cfg.Redis.Address))
			_ = redisClient.Close()
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// 4. Геокодеры
	geocoders := integrations.NewRegistry()
	offline := mock.NewMockProvider()
	offline.Synthetic = true
	for _, g := range []integrations.Geocoder{nominatim.New(cfg.Geocoder, logger), offline} {
		if err := geocoders.Register(g); err != nil {
			logger.Fatal("ошибка регистрации геокодера", zap.Error(err))
		}
	}
	if err := geocoders.SetActive(cfg.Geocoder.Provider); err != nil {
		logger.Fatal("неизвестный GEOCODER_PROVIDER", zap.Error(err))
	}

	// 5. Echo
	m := metrics.New()
	e := echo.New()
	e.HideBanner = true
	v := validation.New()
	e.Validator = v

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(logger.Named("http"), m))
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))

	// 6. Маршруты
	loggers := &routes.Loggers{
		Main:     logger,
		Auth:     logger.Named("auth"),
		Crud:     logger.Named("crud"),
		Geocoder: logger.Named("geocoder"),
	}
	deps := routes.Dependencies{
		DB:        dbConn,
		Redis:     redisClient,
		Geocoders: geocoders,
		JWT:       service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL),
		Metrics:   m,
		Validator: v,
		Config:    cfg,
	}
	if err := routes.InitRouter(e, deps, loggers); err != nil {
		logger.Fatal("ошибка инициализации маршрутов", zap.Error(err))
	}

	// 7. Запуск
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("ошибка остановки сервера", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
}
