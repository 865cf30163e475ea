package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hisitter/internal/handler/api"
	"hisitter/internal/handler/middleware"
	"hisitter/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	babysitterHandler *api.BabysitterHandler,
	serviceHandler *api.ServiceHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, babysitterHandler, serviceHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	babysitterHandler *api.BabysitterHandler,
	serviceHandler *api.ServiceHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
				{Method: http.MethodPost, Path: "/verify", Handler: authHandler.Verify},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		babysitters := apiGroup.Group("/babysitters")
		{
			addRoutes(babysitters, []route{
				{Method: http.MethodGet, Path: "", Handler: babysitterHandler.ListAvailable},
				{Method: http.MethodGet, Path: "/:id", Handler: babysitterHandler.Get},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListByBabysitter},
			})

			schedule := babysitters.Group("")
			schedule.Use(authMiddleware.RequireAuth())
			addRoutes(schedule, []route{
				{Method: http.MethodPut, Path: "/me/schedule", Handler: babysitterHandler.UpdateSchedule},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth())
		{
			addRoutes(services, []route{
				{Method: http.MethodPost, Path: "", Handler: serviceHandler.Book},
				{Method: http.MethodGet, Path: "", Handler: serviceHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: serviceHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: serviceHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/on-my-way", Handler: serviceHandler.OnMyWay},
				{Method: http.MethodPost, Path: "/:id/start", Handler: serviceHandler.Start},
				{Method: http.MethodPost, Path: "/:id/end", Handler: serviceHandler.End},
				{Method: http.MethodGet, Path: "/:id/review", Handler: reviewHandler.GetByService},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: reviewHandler.Create},
			})
		}
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
