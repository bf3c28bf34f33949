// Package web embeds the HTML templates and static assets. Templates are
// parsed once at startup; a parse error fails the process immediately.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Funcs are the helpers available inside view templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		// pct renders a [0,1] confidence as a percentage with one decimal.
		"pct": func(f float64) string {
			return fmt.Sprintf("%.1f", f*100)
		},
	}
}

// Templates parses every embedded view template.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(templatesFS, "templates/*.html"))
}

// StaticFS exposes the embedded static assets as an http.FileSystem.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("static sub-filesystem: " + err.Error())
	}
	return http.FS(sub)
}
