// Package handler 提供 HTTP 请求处理器
package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-article-ai-api/internal/interfaces/http/dto"
	"news-article-ai-api/pkg/errors"
	"news-article-ai-api/pkg/logger"
)

// respondError 将错误映射为 {"detail": ...} 响应并记录一次日志。
// invalidPrefix 用于校验错误，failPrefix 用于其余错误。
func respondError(c *gin.Context, err error, invalidPrefix, failPrefix string) {
	appErr := errors.AsAppError(err)
	ctx := c.Request.Context()

	if appErr.Kind() == errors.KindValidation {
		logger.Warn(ctx, "request rejected", "error", appErr.Cause(), "code", appErr.Code)
		dto.BadRequest(c, fmt.Sprintf("%s: %s", invalidPrefix, appErr.Cause()))
		return
	}

	status := appErr.HTTPStatus
	if status < http.StatusInternalServerError {
		status = http.StatusInternalServerError
	}
	logger.Error(ctx, "request failed", err, "code", appErr.Code, "kind", appErr.Kind())
	dto.Error(c, status, fmt.Sprintf("%s: %s", failPrefix, appErr.Cause()))
}

// bindJSON 解析请求体；格式错误或字段类型不符统一视为校验错误
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.ErrInvalidParam.WithError(fmt.Errorf("invalid request body: %w", err))
	}
	return nil
}
