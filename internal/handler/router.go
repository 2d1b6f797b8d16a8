package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"paylane/internal/handler/api"
	"paylane/internal/handler/middleware"
	"paylane/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, merchantHandler *api.MerchantHandler, resourceHandler *api.ResourceHandler, sessionHandler *api.SessionHandler, analyticsHandler *api.AnalyticsHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, merchantHandler, resourceHandler, sessionHandler, analyticsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, merchantHandler *api.MerchantHandler, resourceHandler *api.ResourceHandler, sessionHandler *api.SessionHandler, analyticsHandler *api.AnalyticsHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/merchants", Handler: merchantHandler.Register},
		})

		keyed := apiGroup.Group("")
		keyed.Use(middleware.RequireAPIKey())
		addRoutes(keyed, []route{
			{Method: http.MethodPost, Path: "/resources", Handler: resourceHandler.Create},
			{Method: http.MethodGet, Path: "/resources", Handler: resourceHandler.List},
			{Method: http.MethodPost, Path: "/sessions", Handler: sessionHandler.Open},
			{Method: http.MethodGet, Path: "/analytics", Handler: analyticsHandler.Get},
		})

		// Payer-facing: only the session id is presented, never the
		// merchant key (status polling and the paid transition).
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/sessions", Handler: sessionHandler.ListAll},
			{Method: http.MethodGet, Path: "/sessions/:id", Handler: sessionHandler.GetStatus},
			{Method: http.MethodPost, Path: "/sessions/:id/paid", Handler: sessionHandler.MarkPaid},
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
