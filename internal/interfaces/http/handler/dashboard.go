package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-article-ai-api/internal/interfaces/http/web"
)

// DashboardHandler 提供内嵌的单页 dashboard
type DashboardHandler struct {
	index  []byte
	assets http.FileSystem
}

// NewDashboardHandler 从内嵌资源创建 dashboard 处理器
func NewDashboardHandler() (*DashboardHandler, error) {
	static := web.Static()
	index, err := fs.ReadFile(static, web.IndexFile)
	if err != nil {
		return nil, fmt.Errorf("read dashboard index: %w", err)
	}
	return &DashboardHandler{index: index, assets: http.FS(static)}, nil
}

// Index 返回 dashboard 页面
func (h *DashboardHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.index)
}

// Assets 静态资源文件系统，挂载到 /static
func (h *DashboardHandler) Assets() http.FileSystem {
	return h.assets
}
