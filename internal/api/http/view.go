package http

import (
	"net/url"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/domain/catalog"
)

// catalogRow is a course plus its detail link.
type catalogRow struct {
	catalog.Course
	Link string
}

func row(c catalog.Course) catalogRow {
	return catalogRow{Course: c, Link: "/course/" + url.PathEscape(c.Code)}
}

func rows(courses []catalog.Course) []catalogRow {
	out := make([]catalogRow, len(courses))
	for i, c := range courses {
		out[i] = row(c)
	}
	return out
}
