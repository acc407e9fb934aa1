package web

import (
	"embed"
	"html/template"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

//go:embed templates/*.html
var templateFS embed.FS

const HeroImage = "https://img.freepik.com/premium-photo/beautiful-young-woman-washes-hair-beauty-salon_1301-8130.jpg?w=900"

// Templates parses the page templates. Dates are shown in loc.
func Templates(loc *time.Location) *template.Template {
	funcs := template.FuncMap{
		"formatDate": timezone.FormatDate(loc),
		"serviceLabel": func(s string) string {
			return domain.Service(s).Label()
		},
	}
	return template.Must(
		template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"),
	)
}
