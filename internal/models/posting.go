// internal/models/posting.go
package models

// PostingType identifies which marketplace collection a posting belongs to.
type PostingType string

const (
	TypeJob        PostingType = "Job"
	TypeGig        PostingType = "Gig"
	TypeEvent      PostingType = "Event"
	TypeInternship PostingType = "Internship"
	TypeCourse     PostingType = "Course"
	TypeMentorship PostingType = "Mentorship"
)

// Posting is a record owned by an employer or mentor. The upstream API
// defines the full document; this service only depends on the fields below.
type Posting struct {
	ID            string      `json:"_id"`
	Title         string      `json:"title"`
	PostedBy      string      `json:"postedBy,omitempty"`
	MentorEmail   string      `json:"mentorEmail,omitempty"`
	PostedAt      string      `json:"postedAt"`
	Status        string      `json:"status,omitempty"`
	Archived      bool        `json:"archived,omitempty"`
	DocumentCount int         `json:"DocumentCount,omitempty"`
	Fee           *PostingFee `json:"fee,omitempty"`
	Type          PostingType `json:"type,omitempty"`
}

type PostingFee struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

// Owner returns whichever owner field the collection uses.
func (p Posting) Owner() string {
	if p.PostedBy != "" {
		return p.PostedBy
	}
	return p.MentorEmail
}

// SummaryRecord is the minimal projection used to resolve a foreign-key id
// to a human-readable title.
type SummaryRecord struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}
