// internal/aggregate/merge.go
package aggregate

import (
	"time"

	"talenthub-dashboard/internal/models"
)

// PostingWithApplications is a parent posting carrying the child records
// grouped under it.
type PostingWithApplications struct {
	models.Posting
	Applications []models.Application `json:"applications"`
}

// TitleIndex builds the id-to-title lookup from a summary response.
func TitleIndex(summaries []models.SummaryRecord) map[string]string {
	index := make(map[string]string, len(summaries))
	for _, s := range summaries {
		index[s.ID] = s.Title
	}
	return index
}

// EnrichWithTitles projects applications to their client-facing form,
// resolving each foreign key through the title index. Applications whose
// parent is missing from the index are kept with an empty title rather
// than dropped; a deleted posting should not hide the member's history.
func EnrichWithTitles(apps []models.Application, titles map[string]string, ptype models.PostingType, now time.Time) []models.MergedApplication {
	merged := make([]models.MergedApplication, 0, len(apps))
	for _, app := range apps {
		parentID := app.ParentID()
		merged = append(merged, models.MergedApplication{
			Name:     app.Name,
			Email:    app.Email,
			Type:     ptype,
			Photo:    app.Photo,
			Date:     app.Date(),
			TimeAgo:  TimeAgo(app.Date(), now),
			ParentID: parentID,
			Title:    titles[parentID],
			Status:   models.ParseStatus(app.Status),
		})
	}
	return merged
}

// GroupByParent attaches each application to the posting its foreign key
// references. Every posting comes back, and one with no applications gets
// an empty slice, never nil, so it serializes as [].
func GroupByParent(parents []models.Posting, apps []models.Application) []PostingWithApplications {
	byParent := make(map[string][]models.Application, len(parents))
	for _, app := range apps {
		id := app.ParentID()
		if id == "" {
			continue
		}
		byParent[id] = append(byParent[id], app)
	}

	grouped := make([]PostingWithApplications, 0, len(parents))
	for _, parent := range parents {
		children := byParent[parent.ID]
		if children == nil {
			children = []models.Application{}
		}
		grouped = append(grouped, PostingWithApplications{
			Posting:      parent,
			Applications: children,
		})
	}
	return grouped
}
