package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
)

//go:embed templates
var templateFS embed.FS

var funcMap = template.FuncMap{
	"intOrDash": func(v *int) string {
		if v == nil {
			return "-"
		}
		return strconv.Itoa(*v)
	},
	"minutes": func(v float64) string {
		return fmt.Sprintf("%.1f", v)
	},
	"withCategory": func(path, category string) string {
		if category == "" {
			return path
		}
		return path + "?category=" + url.QueryEscape(category)
	},
}

// RenderTemplate renders a template with the base layout
func RenderTemplate(w http.ResponseWriter, templateName string, data map[string]interface{}) error {
	t, err := template.New("base.html").Funcs(funcMap).ParseFS(
		templateFS,
		"templates/layouts/base.html",
		"templates/"+templateName,
	)
	if err != nil {
		http.Error(w, "Error loading template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		http.Error(w, "Error rendering template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}
