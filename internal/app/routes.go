package app

import (
	"net/http"

	_ "Todolists/docs"
	"Todolists/internal/config"
	"Todolists/internal/handlers"
	"Todolists/internal/metrics"
	"Todolists/internal/service"
	"Todolists/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, store session.Store, m *metrics.Metrics, reg prometheus.Registerer) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", metricsHandler(reg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	cookies := session.NewCookieStore(cfg.Session.Secret, cfg.Session.TTL.Duration(), cfg.App.Env == config.EnvProduction)
	sessions := session.NewManager(store, cookies, cfg.Session.CookieName, m.SessionCreated)
	limit := newRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, nil)
	site := r.Group("", limit, sessions.Middleware())

	svc := service.NewListService(m)
	registerListRoutes(site, handlers.NewListHandler(svc))
	registerTodoRoutes(site, handlers.NewTodoHandler(svc))
}

func registerListRoutes(g *gin.RouterGroup, h *handlers.ListHandler) {
	g.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/lists") })
	g.GET("/lists", h.Index)
	g.GET("/lists/new", h.New)
	g.POST("/lists", h.Create)
	g.GET("/lists/:id", h.Show)
	g.GET("/lists/:id/edit", h.Edit)
	g.POST("/lists/:id", h.Update)
	g.POST("/lists/:id/delete", h.Delete)
}

// The list segment is :id on every route; the router allows one wildcard
// name per segment.
func registerTodoRoutes(g *gin.RouterGroup, h *handlers.TodoHandler) {
	g.POST("/lists/:id/todos", h.Create)
	g.POST("/lists/:id/todos/:todo_id/delete", h.Delete)
	g.POST("/lists/:id/todos/:todo_id", h.Update)
	g.POST("/lists/:id/complete_all", h.CompleteAll)
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func metricsHandler(reg prometheus.Registerer) gin.HandlerFunc {
	g, ok := reg.(prometheus.Gatherer)
	if !ok {
		g = prometheus.DefaultGatherer
	}
	return gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}
