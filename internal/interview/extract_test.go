package interview

import "testing"

func TestExtractFieldValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		field  Field
		input  string
		expect string
	}{
		{"plain text stored verbatim", FieldName, "  Ada Lovelace  ", "Ada Lovelace"},
		{"email not validated", FieldEmail, "not-an-email", "not-an-email"},
		{"experience extracts first number", FieldExperience, "5 years", "5 years"},
		{"experience from free text", FieldExperience, "around 8 years or so", "8 years"},
		{"experience takes first number even when ambiguous", FieldExperience, "I worked from 2015", "2015 years"},
		{"experience without number kept verbatim", FieldExperience, "fresh graduate", "fresh graduate"},
		{"tech stack verbatim", FieldTechStack, "Python, SQL", "Python, SQL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := extractFieldValue(tt.field, tt.input); got != tt.expect {
				t.Fatalf("extractFieldValue(%s, %q) = %q, expected %q", tt.field, tt.input, got, tt.expect)
			}
		})
	}
}
