package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"news-article-ai-api/internal/interfaces/http/dto"
	"news-article-ai-api/pkg/logger"
)

// Recovery Panic 恢复中间件，响应体与其他错误保持 {"detail": ...} 结构
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					fmt.Errorf("%v", rec),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				dto.InternalError(c, "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
