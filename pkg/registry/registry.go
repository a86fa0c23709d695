// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"os"
)

// LoadRegistry reads a collection registry from a JSON file, for
// deployments that front a marketplace with extra collections.
func LoadRegistry(path string) (*CollectionRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg CollectionRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Default returns the built-in registry matching the standard marketplace.
func Default() *CollectionRegistry {
	return &CollectionRegistry{
		Version: "1",
		Collections: []Collection{
			{Name: "Jobs", Children: "JobApplications", OwnerField: "postedBy", IDsParam: "jobIds", Type: "Job"},
			{Name: "Gigs", Children: "GigBids", OwnerField: "postedBy", IDsParam: "gigIds", Type: "Gig"},
			{Name: "Events", Children: "EventApplications", OwnerField: "postedBy", IDsParam: "eventIds", Type: "Event"},
			{Name: "Internships", Children: "InternshipApplications", OwnerField: "postedBy", IDsParam: "internshipIds", Type: "Internship"},
			{Name: "Courses", Children: "CourseApplications", OwnerField: "mentorEmail", IDsParam: "courseIds", Type: "Course"},
			{Name: "Mentorships", Children: "MentorshipApplications", OwnerField: "mentorEmail", IDsParam: "mentorshipIds", Type: "Mentorship"},
		},
	}
}

// PostingNames returns the tier-1 collection names.
func (r *CollectionRegistry) PostingNames() map[string]bool {
	names := make(map[string]bool, len(r.Collections))
	for _, c := range r.Collections {
		names[c.Name] = true
	}
	return names
}

// ApplicationNames returns the child collection names.
func (r *CollectionRegistry) ApplicationNames() map[string]bool {
	names := make(map[string]bool, len(r.Collections))
	for _, c := range r.Collections {
		names[c.Children] = true
	}
	return names
}
