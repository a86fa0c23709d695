// internal/models/application.go
package models

// Application is a member's submission against a posting. Each collection
// stores its foreign key under a type-specific field (gigId, jobId, ...) and
// gig bids use submittedAt where the others use appliedAt; the accessors
// below hide that asymmetry from the aggregation layer.
type Application struct {
	ID           string `json:"_id"`
	JobID        string `json:"jobId,omitempty"`
	GigID        string `json:"gigId,omitempty"`
	EventID      string `json:"eventId,omitempty"`
	InternshipID string `json:"internshipId,omitempty"`
	CourseID     string `json:"courseId,omitempty"`
	MentorshipID string `json:"mentorshipId,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Photo        string `json:"photo,omitempty"`
	Status       string `json:"status"`
	AppliedAt    string `json:"appliedAt,omitempty"`
	SubmittedAt  string `json:"submittedAt,omitempty"`
}

// ParentID returns the first populated foreign key.
func (a Application) ParentID() string {
	for _, id := range []string{a.JobID, a.GigID, a.EventID, a.InternshipID, a.CourseID, a.MentorshipID} {
		if id != "" {
			return id
		}
	}
	return ""
}

// Date returns submittedAt for gig bids and appliedAt for everything else.
func (a Application) Date() string {
	if a.SubmittedAt != "" {
		return a.SubmittedAt
	}
	return a.AppliedAt
}

// MergedApplication is the client-facing activity/list item, never persisted.
type MergedApplication struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Type     PostingType `json:"type"`
	Photo    string      `json:"photo,omitempty"`
	Date     string      `json:"date"`
	TimeAgo  string      `json:"timeAgo"`
	ParentID string      `json:"parentId"`
	Title    string      `json:"title,omitempty"`
	Status   Status      `json:"status,omitempty"`
}
