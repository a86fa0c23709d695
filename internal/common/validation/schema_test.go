package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayload_Valid(t *testing.T) {
	payload := map[string]interface{}{
		"title":       "Intro to Distributed Systems",
		"mentorEmail": "mentor@talenthub.io",
		"postedAt":    "2026-08-01T10:00:00Z",
		"fee": map[string]interface{}{
			"amount":   49.0,
			"currency": "USD",
		},
	}

	result, err := ValidatePayload(payload, CourseSchema)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Nil(t, result.FieldMap())
}

func TestValidatePayload_MissingRequired(t *testing.T) {
	payload := map[string]interface{}{
		"description": "no title, no mentor",
	}

	result, err := ValidatePayload(payload, CourseSchema)
	require.NoError(t, err)
	assert.False(t, result.Valid)

	fields := result.FieldMap()
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "mentorEmail")
	assert.Contains(t, fields, "postedAt")
}

func TestValidatePayload_FieldConstraints(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]interface{}
		schema   map[string]interface{}
		badField string
	}{
		{
			name: "empty title",
			payload: map[string]interface{}{
				"title":       "",
				"mentorEmail": "mentor@talenthub.io",
				"postedAt":    "2026-08-01",
			},
			schema:   CourseSchema,
			badField: "title",
		},
		{
			name: "negative fee amount",
			payload: map[string]interface{}{
				"title":       "Mentorship",
				"mentorEmail": "mentor@talenthub.io",
				"postedAt":    "2026-08-01",
				"fee":         map[string]interface{}{"amount": -5.0},
			},
			schema:   MentorshipSchema,
			badField: "fee.amount",
		},
		{
			name: "company missing name",
			payload: map[string]interface{}{
				"email": "hr@acme.io",
			},
			schema:   CompanySchema,
			badField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidatePayload(tt.payload, tt.schema)
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Contains(t, result.FieldMap(), tt.badField)
		})
	}
}

func TestSchemaFor(t *testing.T) {
	assert.NotNil(t, SchemaFor("Courses"))
	assert.NotNil(t, SchemaFor("Mentorships"))
	assert.NotNil(t, SchemaFor("Companies"))
	assert.Nil(t, SchemaFor("Jobs"))
}
