package catalog

// Course is the sole catalog entity
type Course struct {
	Code          string `json:"code" yaml:"code" toml:"code"`
	Name          string `json:"name" yaml:"name" toml:"name"`
	Instructor    string `json:"instructor" yaml:"instructor" toml:"instructor"`
	Semester      string `json:"semester" yaml:"semester" toml:"semester"`
	Schedule      string `json:"schedule" yaml:"schedule" toml:"schedule"`
	Classroom     string `json:"classroom" yaml:"classroom" toml:"classroom"`
	Prerequisites string `json:"prerequisites" yaml:"prerequisites" toml:"prerequisites"`
	Grading       string `json:"grading" yaml:"grading" toml:"grading"`
	Description   string `json:"description" yaml:"description" toml:"description"`
}

// Form field names
const (
	FieldCode          = "code"
	FieldName          = "name"
	FieldInstructor    = "instructor"
	FieldSemester      = "semester"
	FieldSchedule      = "schedule"
	FieldClassroom     = "classroom"
	FieldPrerequisites = "prerequisites"
	FieldGrading       = "grading"
	FieldDescription   = "description"
)

// RequiredFields lists the fields that must be non-blank, in the order
// they are reported when missing.
var RequiredFields = []string{FieldCode, FieldName, FieldInstructor, FieldSemester}

// Field returns the value of a named field, or "" for unknown names.
func (c Course) Field(name string) string {
	switch name {
	case FieldCode:
		return c.Code
	case FieldName:
		return c.Name
	case FieldInstructor:
		return c.Instructor
	case FieldSemester:
		return c.Semester
	case FieldSchedule:
		return c.Schedule
	case FieldClassroom:
		return c.Classroom
	case FieldPrerequisites:
		return c.Prerequisites
	case FieldGrading:
		return c.Grading
	case FieldDescription:
		return c.Description
	}
	return ""
}

// Find returns the first course whose code equals code exactly.
func Find(courses []Course, code string) (Course, bool) {
	for _, c := range courses {
		if c.Code == code {
			return c, true
		}
	}
	return Course{}, false
}
