// internal/dashboards/mentor/models.go
package mentor

import (
	"talenthub-dashboard/internal/aggregate"
	"talenthub-dashboard/internal/models"
	"talenthub-dashboard/pkg/registry"
)

type Input struct {
	Email string `json:"email"`
}

// Output is the mentor dashboard payload: courses and mentorships with
// their applicants grouped in, the volume leaderboard, and the acceptance
// KPI across everything the mentor runs.
type Output struct {
	Courses     []aggregate.PostingWithApplications `json:"courses"`
	Mentorships []aggregate.PostingWithApplications `json:"mentorships"`
	TopCourses  []aggregate.RankedPosting           `json:"topCourses"`
	Acceptance  AcceptanceSummary                   `json:"acceptance"`
}

// AcceptanceSummary is the mentor's overall decision breakdown.
type AcceptanceSummary struct {
	Total          int                 `json:"total"`
	Counts         models.StatusCounts `json:"counts"`
	AcceptanceRate int                 `json:"acceptanceRate"`
}

type source struct {
	Collection string
	Children   string
	IDsParam   string
	OwnerField string
	Type       models.PostingType
}

var (
	courseSource     = sourceFor("Courses")
	mentorshipSource = sourceFor("Mentorships")
)

func sourceFor(name string) source {
	for _, c := range registry.Default().Collections {
		if c.Name == name {
			return source{
				Collection: c.Name,
				Children:   c.Children,
				IDsParam:   c.IDsParam,
				OwnerField: c.OwnerField,
				Type:       models.PostingType(c.Type),
			}
		}
	}
	return source{}
}
