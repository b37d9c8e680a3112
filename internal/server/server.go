package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/handlers"
	"alfredoptarigan/resume-matcher/internal/middleware"
	"alfredoptarigan/resume-matcher/internal/observability"
	"alfredoptarigan/resume-matcher/internal/services"
)

// New builds the HTTP application with its middleware and routes.
func New(
	cfg *config.Config,
	logger *zap.Logger,
	storageService services.StorageService,
	metrics *observability.Metrics,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Resume Matcher API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.BodyLimit(),
		// Multipart errors are classified by the upload handler.
		DisablePreParseMultipartForm: true,
		ErrorHandler:                 customErrorHandler,
		DisableStartupMessage:        !cfg.IsDevelopment(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.RequestMetrics(metrics))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	statusHandler := handlers.NewStatusHandler()
	uploadHandler := handlers.NewUploadHandler(
		storageService,
		metrics,
		logger,
		cfg.Storage.MaxFileSize,
		cfg.Storage.WriteTimeout,
	)

	// Routes
	app.Get("/", statusHandler.HandleRoot)
	app.Get("/health", statusHandler.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Post("/upload", uploadHandler.HandleUpload)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
		"code":  code,
	})
}
