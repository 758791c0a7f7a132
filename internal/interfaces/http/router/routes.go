package router

import (
	"github.com/gin-gonic/gin"

	"news-article-ai-api/internal/interfaces/http/handler"
)

// RegisterSystemRoutes 注册探针路由
func RegisterSystemRoutes(r gin.IRoutes, h *handler.HealthHandler) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	r.GET("/live", h.Live)
}

// RegisterArticleRoutes 注册文章路由
func RegisterArticleRoutes(r gin.IRoutes, h *handler.ArticleHandler) {
	r.POST("/generate-article", h.GenerateArticle)
	r.POST("/render-article", h.RenderArticle)
}

// RegisterDashboardRoutes 注册 dashboard 页面与静态资源
func RegisterDashboardRoutes(r gin.IRoutes, h *handler.DashboardHandler) {
	r.GET("/", h.Index)
	r.StaticFS("/static", h.Assets())
}
