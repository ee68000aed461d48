package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/landslide-dashboard/internal/config"
	"github.com/landslide-dashboard/internal/delivery/http/handler"
	"github.com/landslide-dashboard/internal/delivery/http/middleware"
	"github.com/landslide-dashboard/internal/observability"
	"github.com/landslide-dashboard/internal/pkg/errors"
	"github.com/landslide-dashboard/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Handlers - набор HTTP обработчиков сервера
type Handlers struct {
	Region  *handler.RegionHandler
	Dataset *handler.DatasetHandler
	Session *handler.SessionHandler
	Stats   *handler.StatsHandler
	Render  *handler.RenderHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	metrics  *observability.Collector
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Collector,
	handlers Handlers,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Landslide Risk Dashboard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		metrics:  metrics,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App возвращает fiber.App (для app.Test в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	if s.metrics != nil {
		s.app.Use(s.metrics.Middleware())
	}
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	if s.metrics != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
	}

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	h := s.handlers

	// Regions. Статические пути регистрируются раньше /regions/:id
	api.Get("/regions", h.Region.ListRegions)
	api.Get("/regions/bounds", h.Region.OverallBounds)
	api.Get("/regions/:id", h.Region.GetRegion)
	api.Get("/regions/:id/focus", h.Region.FocusBounds)

	// Analytics
	api.Get("/regions/:id/datasets/factors", h.Dataset.FactorDataset)
	api.Get("/regions/:id/datasets/historical", h.Dataset.HistoricalDataset)
	api.Get("/regions/:id/summary", h.Dataset.Summary)

	// Map layer
	api.Get("/overlay", h.Region.Overlay)
	api.Get("/risk-levels", h.Region.RiskLevels)
	api.Get("/hotspots", h.Region.Hotspots)

	// SVG previews
	api.Get("/regions/:id/overlay.svg", h.Render.RegionOverlay)
	api.Get("/regions/:id/charts/factors.svg", h.Render.FactorChart)
	api.Get("/regions/:id/charts/historical.svg", h.Render.HistoricalChart)

	// Sessions
	sessions := api.Group("/sessions")
	sessions.Post("/", h.Session.CreateSession)
	sessions.Get("/:id", h.Session.GetSession)
	sessions.Delete("/:id", h.Session.DeleteSession)
	sessions.Put("/:id/view", h.Session.SelectView)
	sessions.Put("/:id/region", h.Session.SelectRegion)
	sessions.Put("/:id/legend", h.Session.SetLegend)
	sessions.Put("/:id/filter", h.Session.SetRiskFilter)
	sessions.Put("/:id/layer", h.Session.SetBaseLayer)
	sessions.Post("/:id/analyses", h.Session.GenerateAnalysis)
	sessions.Get("/:id/analyses", h.Session.ListAnalyses)

	// Stats
	api.Get("/stats", h.Stats.GetStatistics)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Int("status", fe.Code), zap.Error(err))
			}
			return c.Status(fe.Code).JSON(utils.ErrorResponse{
				Error: errors.New(httpErrorCode(fe.Code), fe.Message, fe.Code),
			})
		}

		appErr := errors.FromDomain(err)
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", appErr.StatusCode),
				zap.Error(err),
			)
		}
		return utils.SendError(c, appErr)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "INVALID_REQUEST"
	default:
		if status >= fiber.StatusInternalServerError {
			return errors.ErrInternalServer.Code
		}
		return "HTTP_ERROR"
	}
}
