package infra

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bizsuite/loyalty/docs"
	"github.com/bizsuite/loyalty/internal/cache"
	"github.com/bizsuite/loyalty/internal/config"
	"github.com/bizsuite/loyalty/internal/domain/loyalty"
	apperrors "github.com/bizsuite/loyalty/internal/errors"
	"github.com/bizsuite/loyalty/internal/handlers"
	"github.com/bizsuite/loyalty/internal/middleware"
	"github.com/bizsuite/loyalty/internal/repository"
	"github.com/bizsuite/loyalty/internal/service"
	"github.com/bizsuite/loyalty/internal/validation"
	"github.com/bizsuite/loyalty/pkg/db/transactor"
)

// Router wires repositories, services and handlers into echo application
func Router(ctx context.Context, pgPool *pgxpool.Pool, mongoClient *mongo.Client, redisClient *redis.Client, cfg config.Config) (*echo.Echo, error) {
	e := echo.New()

	e.HTTPErrorHandler = httpErrorHandler(e)
	e.Use(middleware.RequestLogging())

	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to build echo validator because of missing en translations")
	}
	e.Validator = validation.Echo(validator.New(), trans)

	// Transactor
	trx := transactor.NewPgxTransactor(pgPool)

	// Repositories
	customerRepo := repository.NewPostgresCustomerRepository(trx)
	rewardRepo := repository.NewPostgresRewardRepository(trx)
	settingsRepo := repository.NewPostgresSettingsRepository(trx)
	eventRepo := repository.NewMongoEventRepository(mongoClient, cfg.MongoCfg.Database)

	// Cache
	customerCache := cache.NewRedisCustomerCache(redisClient)

	// Domain helpers
	cardIssuer := loyalty.NewCardIssuer(cfg.ProgramCfg.CardPrefix)
	seed, err := loyalty.NewSettings(cfg.ProgramCfg.PointsPerCurrencyUnit, cfg.ProgramCfg.MinimumRedeemPoints, loyalty.DefaultTierTable())
	if err != nil {
		return nil, err
	}

	// Services
	settingsSvc := service.NewSettingsService(settingsRepo, seed)
	if err := settingsSvc.Init(ctx); err != nil {
		return nil, err
	}

	loyaltySvc := service.NewLoyaltyService(trx, customerRepo, rewardRepo, eventRepo, customerCache, settingsSvc, cardIssuer)
	rewardSvc := service.NewRewardService(rewardRepo)
	reportSvc := service.NewReportService(trx, customerRepo, rewardRepo, eventRepo, settingsSvc,
		cfg.ProgramCfg.ReportTopCustomers, int64(cfg.ProgramCfg.ActivityFeedSize))

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(loyaltySvc)
	rewardHandler := handlers.NewRewardHTTPHandler(rewardSvc)
	reportHandler := handlers.NewReportHTTPHandler(reportSvc)
	settingsHandler := handlers.NewSettingsHTTPHandler(settingsSvc, loyaltySvc)

	// API routes
	api := e.Group("/api/v1")

	customersAPI := api.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.DELETE("/:id", customerHandler.DeleteByID)
	customersAPI.POST("/:id/purchases", customerHandler.Purchase)
	customersAPI.POST("/:id/points", customerHandler.Adjust)
	customersAPI.POST("/:id/redemptions", customerHandler.Redeem)

	rewardsAPI := api.Group("/rewards")
	rewardsAPI.GET("", rewardHandler.GetAll)
	rewardsAPI.GET("/:id", rewardHandler.Get)
	rewardsAPI.POST("", rewardHandler.Post)
	rewardsAPI.PUT("/:id", rewardHandler.Put)
	rewardsAPI.DELETE("/:id", rewardHandler.DeleteByID)

	api.GET("/report", reportHandler.Get)

	settingsAPI := api.Group("/settings")
	settingsAPI.GET("", settingsHandler.Get)
	settingsAPI.PUT("", settingsHandler.Put)
	settingsAPI.POST("/recompute-levels", settingsHandler.RecomputeLevels)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// httpErrorHandler maps engine error taxonomy to HTTP status codes
func httpErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			validationErr   *apperrors.ValidationErr
			payloadErr      *validation.PayloadError
			notFoundErr     *apperrors.EntryNotFoundErr
			insufficientErr *apperrors.InsufficientPointsErr
			ineligibleErr   *apperrors.IneligibleRedemptionErr
		)

		switch {
		case errors.As(err, &validationErr):
			err = echo.NewHTTPError(http.StatusBadRequest, validationErr)
		case errors.As(err, &payloadErr):
			err = echo.NewHTTPError(http.StatusBadRequest, payloadErr)
		case errors.As(err, &notFoundErr):
			err = echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
		case errors.As(err, &insufficientErr):
			err = echo.NewHTTPError(http.StatusUnprocessableEntity, insufficientErr.Error())
		case errors.As(err, &ineligibleErr):
			err = echo.NewHTTPError(http.StatusUnprocessableEntity, ineligibleErr.Error())
		}

		logrus.Errorf("error occurred on request processing - %v", err)
		e.DefaultHTTPErrorHandler(err, c)
	}
}
