package handler

import (
	"log/slog"
	"net/http"

	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	roomHandler *api.RoomHandler,
	reservationHandler *api.ReservationHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, roomHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	slogger := logger.GetSlogLogger()

	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, roomHandler *api.RoomHandler, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// static segments are registered before /:id
		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodGet, Path: "", Handler: roomHandler.List},
			{Method: http.MethodGet, Path: "/categories", Handler: roomHandler.Categories},
			{Method: http.MethodGet, Path: "/available", Handler: roomHandler.Available},
			{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.Get},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.Book},
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Cancel},
		})
	}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Handle(r.Method, r.Path, r.Handler)
		}
	}
}

// NewEngine returns a bare engine; middleware is attached by NewRouter.
func NewEngine(logger *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	logger.Debug("gin engine created", "mode", gin.Mode())
	return engine
}
