package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"news-article-ai-api/internal/application/article"
	"news-article-ai-api/internal/interfaces/http/dto"
	"news-article-ai-api/pkg/errors"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	svc *article.Service
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(svc *article.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Health 返回服务状态与当前模型，不访问网络
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	s := h.svc.Health()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:        s.Status,
		Model:         s.Model,
		APIConfigured: s.APIConfigured,
	})
}

// Ready 就绪检查：凭证已配置且 ChatModel 可构建
// @Summary 就绪检查
// @Tags System
// @Produce json
// @Success 200 {object} dto.ReadinessResponse
// @Failure 503 {object} dto.ReadinessResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.svc.Ready(ctx)
	check := &dto.ReadinessCheck{Status: "ok", LatencyMs: time.Since(start).Milliseconds()}

	resp := dto.ReadinessResponse{
		Status: "ok",
		Checks: map[string]*dto.ReadinessCheck{"llm": check},
	}
	if err != nil {
		appErr := errors.AsAppError(err)
		check.Status = "error"
		check.Error = appErr.Cause()
		if appErr.Detail != "" {
			check.Error = appErr.Detail
		}
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查
// @Summary 存活检查
// @Tags System
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}
