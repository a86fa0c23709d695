// internal/dashboards/employer/models.go
package employer

import (
	"talenthub-dashboard/internal/aggregate"
	"talenthub-dashboard/internal/models"
	"talenthub-dashboard/pkg/registry"
)

type Input struct {
	Email      string `json:"email"`
	WindowDays int    `json:"windowDays"`
}

// Output is the full employer dashboard payload: one KPI card per posting
// type, the merged four-series volume chart, and the recent activity feed.
type Output struct {
	KPIs           map[string]aggregate.MonthlySummary `json:"kpis"`
	Chart          []models.ChartPoint                 `json:"chart"`
	RecentActivity []models.MergedApplication          `json:"recentActivity"`
	WindowDays     int                                 `json:"windowDays"`
}

// source describes one posting type's collections and naming: the tier-1
// collection, the child collection its ids scope, the query parameter the
// child endpoints expect, and the chart series the volumes feed.
type source struct {
	Collection string
	Children   string
	IDsParam   string
	OwnerField string
	Series     string
	KPIKey     string
	Type       models.PostingType
}

// naming carries the display strings the registry has no business knowing:
// the chart series label and the KPI card key per collection.
var naming = map[string]struct {
	Series string
	KPIKey string
}{
	"Jobs":        {"Job Applications", "jobs"},
	"Gigs":        {"Gig Bids", "gigs"},
	"Events":      {"Event Applications", "events"},
	"Internships": {"Internship Applications", "internships"},
}

// sources derives the employer-owned collections from the registry, so the
// fetch wiring and the route allow-lists cannot drift apart.
var sources = buildSources()

func buildSources() []source {
	out := make([]source, 0, len(naming))
	for _, c := range registry.Default().Collections {
		names, ok := naming[c.Name]
		if !ok {
			continue
		}
		out = append(out, source{
			Collection: c.Name,
			Children:   c.Children,
			IDsParam:   c.IDsParam,
			OwnerField: c.OwnerField,
			Series:     names.Series,
			KPIKey:     names.KPIKey,
			Type:       models.PostingType(c.Type),
		})
	}
	return out
}
