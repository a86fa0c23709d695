// internal/dashboards/mentor/handler.go
package mentor

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"talenthub-dashboard/internal/aggregate"
	"talenthub-dashboard/internal/common/config"
	apperrors "talenthub-dashboard/internal/common/errors"
	"talenthub-dashboard/internal/common/logger"
	"talenthub-dashboard/internal/fetch"
	"talenthub-dashboard/internal/marketplace"
	"talenthub-dashboard/internal/models"
)

const Role = "mentor"

type Handler struct {
	config config.DashboardsConfig
	client *marketplace.Client
	fetch  *fetch.Orchestrator
	logger logger.Logger
}

func NewHandler(cfg config.DashboardsConfig, client *marketplace.Client, orchestrator *fetch.Orchestrator, log logger.Logger) *Handler {
	return &Handler{
		config: cfg,
		client: client,
		fetch:  orchestrator,
		logger: log.WithFields(map[string]interface{}{"dashboard": Role}),
	}
}

// Execute builds the mentor dashboard: both posting lists load in parallel,
// the applicant fetches gate on the derived id sets, and each applicant is
// grouped under the course or mentorship it targets.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Email == "" {
		return nil, apperrors.NewBadRequestError("email is required")
	}

	var (
		courses        []models.Posting
		mentorships    []models.Posting
		courseApps     []models.Application
		mentorshipApps []models.Application
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, courseApps, err = h.loadTrack(gctx, courseSource, input.Email)
		return err
	})
	g.Go(func() error {
		var err error
		mentorships, mentorshipApps, err = h.loadTrack(gctx, mentorshipSource, input.Email)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	groupedCourses := aggregate.GroupByParent(courses, courseApps)
	groupedMentorships := aggregate.GroupByParent(mentorships, mentorshipApps)

	allApps := make([]models.Application, 0, len(courseApps)+len(mentorshipApps))
	allApps = append(allApps, courseApps...)
	allApps = append(allApps, mentorshipApps...)
	counts, total := aggregate.BucketStatuses(allApps)

	output := &Output{
		Courses:     groupedCourses,
		Mentorships: groupedMentorships,
		TopCourses:  aggregate.TopByVolume(groupedCourses, h.config.TopN),
		Acceptance: AcceptanceSummary{
			Total:          total,
			Counts:         counts,
			AcceptanceRate: ratePercent(counts.Accepted, total),
		},
	}

	h.logger.Info("dashboard built", map[string]interface{}{
		"email":      input.Email,
		"courses":    len(courses),
		"applicants": total,
	})
	return output, nil
}

// loadTrack runs one posting type's tier-1 then tier-2 sequence.
func (h *Handler) loadTrack(ctx context.Context, src source, email string) ([]models.Posting, []models.Application, error) {
	key := h.fetch.Key("postings", src.Collection, email)
	postings, err := fetch.Cached(ctx, h.fetch, key, func(ctx context.Context) ([]models.Posting, error) {
		return h.client.ListPostings(ctx, src.Collection, src.OwnerField, email)
	})
	if err != nil {
		return nil, nil, err
	}

	ids := make([]string, 0, len(postings))
	for _, p := range postings {
		ids = append(ids, p.ID)
	}

	apps, err := fetch.Gated(ctx, h.fetch, ids, []interface{}{"apps", src.Children}, func(ctx context.Context, joined string) ([]models.Application, error) {
		return h.client.ListApplications(ctx, src.Children, src.IDsParam, joined)
	})
	if err != nil {
		return nil, nil, err
	}
	return postings, apps, nil
}

// Refresh drops every cached query so the next build reloads from upstream.
func (h *Handler) Refresh(ctx context.Context) error {
	return h.fetch.RefetchAll(ctx)
}

func ratePercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
