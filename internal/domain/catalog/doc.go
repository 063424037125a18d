// Package catalog holds the course model and the rules applied to course
// submissions.
//
// A Course has four required fields (code, name, instructor, semester) and
// five optional free-text fields stored as empty strings when absent. Codes
// are unique only by convention: Find returns the first match in stored
// order.
//
// Example Usage:
//
//	course, err := catalog.Normalize(c.PostForm)
//	var verr *catalog.ValidationError
//	if errors.As(err, &verr) {
//		// verr.Missing lists blank required fields in form order
//	}
package catalog
