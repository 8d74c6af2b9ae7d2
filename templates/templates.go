// Package templates embeds the HTML pages rendered by the handlers.
package templates

import (
	"embed"
	"html/template"
	"strconv"
	"strings"

	"lumber-inventory/fraction"
)

//go:embed html/*.html
var files embed.FS

// FuncMap holds the helpers available to every page.
var FuncMap = template.FuncMap{
	"fraction": fraction.Format,
	"join":     strings.Join,
	"idString": func(id uint) string { return strconv.FormatUint(uint64(id), 10) },
}

// Load parses every embedded page. Each page is addressed by its file name,
// e.g. "index.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(FuncMap).ParseFS(files, "html/*.html")
}
