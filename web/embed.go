// Package web embeds the static signup front end.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var assets embed.FS

// Static returns the embedded asset tree rooted at static/.
func Static() (fs.FS, error) {
	return fs.Sub(assets, "static")
}
