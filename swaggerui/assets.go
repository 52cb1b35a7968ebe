package swaggerui

import (
	"embed"
	"fmt"
	"path"
)

// Version of the Swagger UI release vendored under dist/.
const Version = "4.15.5"

//go:embed dist/*
var dist embed.FS

// StaticFile identifies one of the files bundled with Swagger UI.
type StaticFile int

const (
	CSS StaticFile = iota
	IndexCSS
	BundleJS
	StandalonePresetJS
	Favicon16
	Favicon32
	OAuth2Redirect
	License
)

var fileNames = map[StaticFile]string{
	CSS:                "swagger-ui.css",
	IndexCSS:           "index.css",
	BundleJS:           "swagger-ui-bundle.js",
	StandalonePresetJS: "swagger-ui-standalone-preset.js",
	Favicon16:          "favicon-16x16.png",
	Favicon32:          "favicon-32x32.png",
	OAuth2Redirect:     "oauth2-redirect.html",
	License:            "LICENSE",
}

var contentTypes = map[string]string{
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".png":  "image/png",
	".html": "text/html; charset=utf-8",
	"":      "text/plain; charset=utf-8",
}

// AllStaticFiles returns every bundled file in a fixed order.
func AllStaticFiles() []StaticFile {
	return []StaticFile{CSS, IndexCSS, BundleJS, StandalonePresetJS, Favicon16, Favicon32, OAuth2Redirect, License}
}

// FileName returns the path of the file relative to the mount path.
func (f StaticFile) FileName() string {
	return fileNames[f]
}

func (f StaticFile) ContentType() string {
	return contentTypes[path.Ext(f.FileName())]
}

func (f StaticFile) String() string {
	return f.FileName()
}

// StaticAsset is a bundled file. Data is shared and must not be modified.
type StaticAsset struct {
	File        StaticFile
	Path        string
	ContentType string
	Data        []byte
}

var staticAssets = mustLoadAssets()

func mustLoadAssets() []StaticAsset {
	assets := make([]StaticAsset, 0, len(fileNames))
	for _, f := range AllStaticFiles() {
		data, err := dist.ReadFile("dist/" + f.FileName())
		if err != nil {
			panic(fmt.Sprintf("swaggerui: missing bundled file %s: %v", f.FileName(), err))
		}

		assets = append(assets, StaticAsset{
			File:        f,
			Path:        f.FileName(),
			ContentType: f.ContentType(),
			Data:        data,
		})
	}

	return assets
}

// StaticFiles returns all static files required by Swagger UI.
func StaticFiles() []StaticAsset {
	out := make([]StaticAsset, len(staticAssets))
	copy(out, staticAssets)
	return out
}
