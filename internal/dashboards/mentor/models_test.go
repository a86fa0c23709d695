// internal/dashboards/mentor/models_test.go
package mentor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talenthub-dashboard/internal/models"
)

func TestSourcesDeriveFromRegistry(t *testing.T) {
	assert.Equal(t, source{
		Collection: "Courses",
		Children:   "CourseApplications",
		IDsParam:   "courseIds",
		OwnerField: "mentorEmail",
		Type:       models.TypeCourse,
	}, courseSource)

	assert.Equal(t, source{
		Collection: "Mentorships",
		Children:   "MentorshipApplications",
		IDsParam:   "mentorshipIds",
		OwnerField: "mentorEmail",
		Type:       models.TypeMentorship,
	}, mentorshipSource)

	assert.Equal(t, source{}, sourceFor("Unknown"))
}
