package ui

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// NewRouter builds the gin engine with the embedded screen templates.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"inr": func(v float64) string { return fmt.Sprintf("₹%.2f", v) },
		"mul": func(price float64, qty int) float64 { return price * float64(qty) },
	}).ParseFS(templateFS, "templates/*.tmpl"))
	r.SetHTMLTemplate(tmpl)

	h.RegisterRoutes(r)
	return r
}
