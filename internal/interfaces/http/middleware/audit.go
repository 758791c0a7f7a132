// Package middleware 提供 HTTP 中间件
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"news-article-ai-api/pkg/logger"
)

// AccessLogConfig 访问日志配置
type AccessLogConfig struct {
	// SkipPaths 不记录的路径，如探针与指标端点
	SkipPaths []string
}

// AccessLog 每个请求结束后记录一条访问日志
func AccessLog(cfg AccessLogConfig) gin.HandlerFunc {
	skipMap := make(map[string]bool, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skipMap[path] = true
	}

	return func(c *gin.Context) {
		if skipMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		ctx := c.Request.Context()
		logger.FromContext(ctx).Log(ctx, level, "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"duration_ms", duration.Milliseconds(),
			"ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"body_size", c.Writer.Size(),
		)
	}
}
