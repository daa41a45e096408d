package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/handler/api"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, reservationHandler *api.ReservationHandler, directoryHandler *api.DirectoryHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, reservationHandler, directoryHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reservationHandler *api.ReservationHandler, directoryHandler *api.DirectoryHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	managerOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOperator)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/locations"), []route{
			{Method: http.MethodGet, Path: "", Handler: directoryHandler.ListLocations},
			{Method: http.MethodGet, Path: "/:id", Handler: directoryHandler.GetLocation},
			{Method: http.MethodPost, Path: "", Handler: directoryHandler.CreateLocation, Mw: managerOnly},
			{Method: http.MethodPut, Path: "/:id", Handler: directoryHandler.UpdateLocation, Mw: managerOnly},
		})

		addRoutes(apiGroup.Group("/materials"), []route{
			{Method: http.MethodGet, Path: "", Handler: directoryHandler.ListMaterials},
			{Method: http.MethodGet, Path: "/:id", Handler: directoryHandler.GetMaterial},
			{Method: http.MethodPost, Path: "", Handler: directoryHandler.CreateMaterial, Mw: managerOnly},
			{Method: http.MethodPut, Path: "/:id", Handler: directoryHandler.UpdateMaterial, Mw: managerOnly},
			{Method: http.MethodPost, Path: "/:id/restock", Handler: directoryHandler.Restock, Mw: managerOnly},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Delete},
			{Method: http.MethodGet, Path: "/:id/materials", Handler: reservationHandler.ListMaterials},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: reservationHandler.Approve, Mw: managerOnly},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: reservationHandler.Reject, Mw: managerOnly},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
