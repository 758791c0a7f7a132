// Package main articlectl 命令行入口
package main

import "news-article-ai-api/internal/cli"

func main() {
	cli.Execute()
}
