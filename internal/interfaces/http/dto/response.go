// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应结构，所有非 2xx 响应共用
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusResponse 探针响应
type StatusResponse struct {
	Status string `json:"status"`
}

// OK 返回 200 响应，body 即数据本身
func OK[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, data)
}

// Error 返回错误响应
func Error(c *gin.Context, httpCode int, detail string) {
	c.JSON(httpCode, ErrorResponse{Detail: detail})
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// InternalError 返回 500 错误
func InternalError(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}
