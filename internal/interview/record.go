package interview

import "time"

// Field identifies one collected candidate attribute.
type Field string

const (
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldExperience Field = "experience"
	FieldPosition   Field = "position"
	FieldLocation   Field = "location"
	FieldTechStack  Field = "tech_stack"
)

// FieldOrder is the fixed order in which candidate attributes are collected.
var FieldOrder = []Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldExperience,
	FieldPosition,
	FieldLocation,
	FieldTechStack,
}

var fieldLabels = map[Field]string{
	FieldName:       "full name",
	FieldEmail:      "email address",
	FieldPhone:      "phone number",
	FieldExperience: "years of experience",
	FieldPosition:   "desired position",
	FieldLocation:   "current location",
	FieldTechStack:  "tech stack (programming languages, frameworks, tools)",
}

// Label returns the human-readable name used when asking for the field.
func (f Field) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// TechnicalAnswer stores one answer given during the technical stage.
// Answers are immutable once appended.
type TechnicalAnswer struct {
	QuestionNumber int       `json:"question_number"`
	Answer         string    `json:"answer"`
	Timestamp      time.Time `json:"timestamp"`
}

// CandidateRecord is the screening summary persisted at the end of an
// interview. An empty string means the field was never collected.
type CandidateRecord struct {
	SessionID        string            `json:"session_id"`
	Name             string            `json:"name,omitempty"`
	Email            string            `json:"email,omitempty"`
	Phone            string            `json:"phone,omitempty"`
	Experience       string            `json:"experience,omitempty"`
	Position         string            `json:"position,omitempty"`
	Location         string            `json:"location,omitempty"`
	TechStack        string            `json:"tech_stack,omitempty"`
	TechnicalAnswers []TechnicalAnswer `json:"technical_answers"`
	CompletedAt      time.Time         `json:"completed_at"`
}

// Get returns the stored value for the given field.
func (r *CandidateRecord) Get(field Field) string {
	switch field {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldPhone:
		return r.Phone
	case FieldExperience:
		return r.Experience
	case FieldPosition:
		return r.Position
	case FieldLocation:
		return r.Location
	case FieldTechStack:
		return r.TechStack
	}
	return ""
}

func (r *CandidateRecord) set(field Field, value string) {
	switch field {
	case FieldName:
		r.Name = value
	case FieldEmail:
		r.Email = value
	case FieldPhone:
		r.Phone = value
	case FieldExperience:
		r.Experience = value
	case FieldPosition:
		r.Position = value
	case FieldLocation:
		r.Location = value
	case FieldTechStack:
		r.TechStack = value
	}
}

// NextUnsetField returns the first field in collection order that has no
// value yet. The second return value is false when every field is set.
func (r *CandidateRecord) NextUnsetField() (Field, bool) {
	for _, field := range FieldOrder {
		if r.Get(field) == "" {
			return field, true
		}
	}
	return "", false
}

// CollectedFields counts how many profile fields have a value.
func (r *CandidateRecord) CollectedFields() int {
	count := 0
	for _, field := range FieldOrder {
		if r.Get(field) != "" {
			count++
		}
	}
	return count
}
