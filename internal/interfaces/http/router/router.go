// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news-article-ai-api/internal/config"
	"news-article-ai-api/internal/interfaces/http/dto"
	"news-article-ai-api/internal/interfaces/http/handler"
	"news-article-ai-api/internal/interfaces/http/middleware"
	"news-article-ai-api/pkg/errors"
)

// Handlers 路由依赖的处理器集合
type Handlers struct {
	Article   *handler.ArticleHandler
	Health    *handler.HealthHandler
	Dashboard *handler.DashboardHandler
}

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers Handlers
}

// New 创建新的路由器
func New(cfg *config.Config, handlers Handlers) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:   gin.New(),
		cfg:      cfg,
		handlers: handlers,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	r.engine.Use(middleware.AccessLog(middleware.AccessLogConfig{
		SkipPaths: []string{"/live", "/ready", r.cfg.Observability.Metrics.Path},
	}))

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	RegisterSystemRoutes(r.engine, r.handlers.Health)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	RegisterArticleRoutes(r.engine, r.handlers.Article)

	if r.handlers.Dashboard != nil {
		RegisterDashboardRoutes(r.engine, r.handlers.Dashboard)
	}

	r.engine.NoRoute(notFound)
}

// notFound 未匹配路由同样返回 {"detail": ...}
func notFound(c *gin.Context) {
	dto.Error(c, errors.ErrNotFound.HTTPStatus, errors.ErrNotFound.Message)
}
