package validation

// Schemas for the create/edit form payloads this service proxies. The
// upstream API owns the full documents; these cover the fields the forms
// actually submit.

var CourseSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"title", "mentorEmail", "postedAt"},
	"properties": map[string]interface{}{
		"title":       map[string]interface{}{"type": "string", "minLength": 1, "maxLength": 200},
		"mentorEmail": map[string]interface{}{"type": "string", "format": "email"},
		"postedAt":    map[string]interface{}{"type": "string"},
		"description": map[string]interface{}{"type": "string", "maxLength": 5000},
		"status":      map[string]interface{}{"type": "string"},
		"fee": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"amount":   map[string]interface{}{"type": "number", "minimum": 0},
				"currency": map[string]interface{}{"type": "string"},
			},
		},
	},
}

var MentorshipSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"title", "mentorEmail", "postedAt"},
	"properties": map[string]interface{}{
		"title":       map[string]interface{}{"type": "string", "minLength": 1, "maxLength": 200},
		"mentorEmail": map[string]interface{}{"type": "string", "format": "email"},
		"postedAt":    map[string]interface{}{"type": "string"},
		"description": map[string]interface{}{"type": "string", "maxLength": 5000},
		"duration":    map[string]interface{}{"type": "string"},
		"fee": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"amount":   map[string]interface{}{"type": "number", "minimum": 0},
				"currency": map[string]interface{}{"type": "string"},
			},
		},
	},
}

var CompanySchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"name", "email"},
	"properties": map[string]interface{}{
		"name":        map[string]interface{}{"type": "string", "minLength": 1, "maxLength": 200},
		"email":       map[string]interface{}{"type": "string", "format": "email"},
		"logo":        map[string]interface{}{"type": "string"},
		"website":     map[string]interface{}{"type": "string"},
		"industry":    map[string]interface{}{"type": "string"},
		"location":    map[string]interface{}{"type": "string"},
		"description": map[string]interface{}{"type": "string", "maxLength": 5000},
	},
}

// SchemaFor returns the payload schema for a mutable collection, or nil when
// the collection has no form surface in this service.
func SchemaFor(collection string) map[string]interface{} {
	switch collection {
	case "Courses":
		return CourseSchema
	case "Mentorships":
		return MentorshipSchema
	case "Companies":
		return CompanySchema
	default:
		return nil
	}
}
