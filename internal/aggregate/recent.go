// internal/aggregate/recent.go
package aggregate

import (
	"fmt"
	"sort"
	"time"

	"talenthub-dashboard/internal/models"
)

// TypedFeed is one collection's latest-application feed tagged with the
// posting type it belongs to.
type TypedFeed struct {
	Type         models.PostingType
	Applications []models.Application
}

// RecentActivity flattens the per-type feeds into one ranked activity list:
// normalize, concatenate in the caller's feed order, stable-sort newest
// first, and keep the first limit entries. The stable sort means same-date
// entries keep the feed order, so the feed sequence is part of the contract.
func RecentActivity(feeds []TypedFeed, limit int, now time.Time) []models.MergedApplication {
	merged := make([]models.MergedApplication, 0)
	for _, feed := range feeds {
		for _, app := range feed.Applications {
			merged = append(merged, models.MergedApplication{
				Name:     app.Name,
				Email:    app.Email,
				Type:     feed.Type,
				Photo:    app.Photo,
				Date:     app.Date(),
				TimeAgo:  TimeAgo(app.Date(), now),
				ParentID: app.ParentID(),
				Status:   models.ParseStatus(app.Status),
			})
		}
	}

	SortNewestFirst(merged)

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// SortNewestFirst orders merged applications newest first. Dates are parsed
// rather than compared as strings, since the upstream mixes date-only and
// offset datetime forms that raw comparison misorders. The sort is stable.
func SortNewestFirst(apps []models.MergedApplication) {
	sort.SliceStable(apps, func(i, j int) bool {
		return parseDate(apps[i].Date).After(parseDate(apps[j].Date))
	})
}

// timeAgoUnits is ordered largest first; the first unit with a whole count
// of at least one wins.
var timeAgoUnits = []struct {
	name     string
	duration time.Duration
}{
	{"year", 365 * 24 * time.Hour},
	{"month", 30 * 24 * time.Hour},
	{"week", 7 * 24 * time.Hour},
	{"day", 24 * time.Hour},
	{"hour", time.Hour},
	{"minute", time.Minute},
	{"second", time.Second},
}

// TimeAgo renders a date as a coarse relative age like "3 days ago".
// Unparseable dates and anything under a second old render as "just now".
func TimeAgo(date string, now time.Time) string {
	t := parseDate(date)
	if t.IsZero() {
		return "just now"
	}

	elapsed := now.Sub(t)
	for _, unit := range timeAgoUnits {
		count := int(elapsed / unit.duration)
		if count >= 1 {
			if count == 1 {
				return fmt.Sprintf("1 %s ago", unit.name)
			}
			return fmt.Sprintf("%d %ss ago", count, unit.name)
		}
	}
	return "just now"
}

// parseDate accepts the datetime and date-only forms the upstream mixes.
func parseDate(date string) time.Time {
	for _, layout := range []string{time.RFC3339, dayKeyLayout} {
		if t, err := time.Parse(layout, date); err == nil {
			return t
		}
	}
	return time.Time{}
}
