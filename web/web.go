// Package web embeds the browser client: one form plus the progress,
// entry-list and suggestion panels.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Assets is the client view rooted at the static directory, ready for
// http.FileServerFS.
var Assets = mustSub(files, "static")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("web: " + err.Error())
	}
	return sub
}
