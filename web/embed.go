// Package web holds the HTML templates served by the task pages.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embedded embed.FS

func TemplatesFS() fs.FS {
	return embedded
}
