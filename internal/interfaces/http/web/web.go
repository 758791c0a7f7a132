// Package web 内嵌 dashboard 静态资源
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// IndexFile dashboard 入口页
const IndexFile = "index.html"

// Static 返回以 static 目录为根的文件系统
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static 目录随二进制编译进来，不会缺失
		panic(err)
	}
	return sub
}
