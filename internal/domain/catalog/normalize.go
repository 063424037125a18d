package catalog

import "strings"

// ValidationError reports required fields that were blank after trimming.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Required fields missing: " + strings.Join(e.Missing, ", ")
}

// Normalize builds a course from get, which returns the submitted value
// for a field name ("" when absent). Values are trimmed and otherwise kept
// as typed; escaping is left to rendering. It returns a *ValidationError
// when a required field is blank.
func Normalize(get func(field string) string) (Course, error) {
	clean := func(field string) string {
		return strings.TrimSpace(get(field))
	}

	course := Course{
		Code:          clean(FieldCode),
		Name:          clean(FieldName),
		Instructor:    clean(FieldInstructor),
		Semester:      clean(FieldSemester),
		Schedule:      clean(FieldSchedule),
		Classroom:     clean(FieldClassroom),
		Prerequisites: clean(FieldPrerequisites),
		Grading:       clean(FieldGrading),
		Description:   clean(FieldDescription),
	}

	if err := Validate(course); err != nil {
		return Course{}, err
	}
	return course, nil
}

// Validate checks that every required field is non-blank.
func Validate(c Course) error {
	var missing []string
	for _, f := range RequiredFields {
		if strings.TrimSpace(c.Field(f)) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
