package http

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names
const (
	tmplIndex   = "index.html"
	tmplCatalog = "course_catalog.html"
	tmplAdd     = "add_course.html"
	tmplDetails = "course_details.html"
)

// Templates parses the embedded page templates. Install the result with
// gin.Engine.SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// page is the data every template receives.
type page struct {
	Title   string
	Flashes []Flash
	Courses []catalogRow
	Course  catalogRow
}
