package main

import (
	"embed"
	"io/fs"
)

// The viewer frontend (renderer page, controls, styles) ships inside the
// binary so the process is a single file.
//
//go:embed all:frontend
var viewerAssets embed.FS

// frontendFS exposes the embedded assets rooted at "frontend" so the file
// server maps "/" onto the page.
func frontendFS() fs.FS {
	sub, err := fs.Sub(viewerAssets, "frontend")
	if err != nil {
		panic(err)
	}
	return sub
}
