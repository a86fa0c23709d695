// internal/dashboards/member/models.go
package member

import (
	"talenthub-dashboard/internal/models"
	"talenthub-dashboard/pkg/registry"
)

type Input struct {
	Email string `json:"email"`
}

// Output is the member dashboard payload: everything the member applied
// to, title-enriched and newest first, plus the decision breakdown.
type Output struct {
	Applications []models.MergedApplication `json:"applications"`
	Counts       models.StatusCounts        `json:"counts"`
	Total        int                        `json:"total"`
}

type source struct {
	Children string
	Parents  string
	IDsParam string
	Type     models.PostingType
}

// sources covers every child collection the registry knows; a member may
// have applied to any of them.
var sources = buildSources()

func buildSources() []source {
	reg := registry.Default()
	out := make([]source, 0, len(reg.Collections))
	for _, c := range reg.Collections {
		out = append(out, source{
			Children: c.Children,
			Parents:  c.Name,
			IDsParam: c.IDsParam,
			Type:     models.PostingType(c.Type),
		})
	}
	return out
}
