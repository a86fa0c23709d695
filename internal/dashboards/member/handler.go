// internal/dashboards/member/handler.go
package member

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"talenthub-dashboard/internal/aggregate"
	"talenthub-dashboard/internal/common/config"
	apperrors "talenthub-dashboard/internal/common/errors"
	"talenthub-dashboard/internal/common/logger"
	"talenthub-dashboard/internal/fetch"
	"talenthub-dashboard/internal/marketplace"
	"talenthub-dashboard/internal/models"
)

const Role = "member"

type Handler struct {
	config config.DashboardsConfig
	client *marketplace.Client
	fetch  *fetch.Orchestrator
	logger logger.Logger
	now    func() time.Time
}

func NewHandler(cfg config.DashboardsConfig, client *marketplace.Client, orchestrator *fetch.Orchestrator, log logger.Logger) *Handler {
	return &Handler{
		config: cfg,
		client: client,
		fetch:  orchestrator,
		logger: log.WithFields(map[string]interface{}{"dashboard": Role}),
		now:    time.Now,
	}
}

// Execute builds the member dashboard. Each collection's applications load
// by the member's email, then a summary fetch gated on the referenced
// parent ids resolves titles. Applications to postings that no longer
// exist stay in the list without a title.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Email == "" {
		return nil, apperrors.NewBadRequestError("email is required")
	}

	now := h.now()
	perSource := make([][]models.MergedApplication, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			merged, err := h.loadTrack(gctx, src, input.Email, now)
			if err != nil {
				return err
			}
			perSource[i] = merged
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]models.MergedApplication, 0)
	var counts models.StatusCounts
	total := 0
	for _, merged := range perSource {
		all = append(all, merged...)
		for _, app := range merged {
			total++
			switch app.Status {
			case models.StatusAccepted:
				counts.Accepted++
			case models.StatusRejected:
				counts.Rejected++
			case models.StatusPending:
				counts.Pending++
			}
		}
	}

	aggregate.SortNewestFirst(all)

	h.logger.Info("dashboard built", map[string]interface{}{
		"email": input.Email,
		"total": total,
	})
	return &Output{Applications: all, Counts: counts, Total: total}, nil
}

func (h *Handler) loadTrack(ctx context.Context, src source, email string, now time.Time) ([]models.MergedApplication, error) {
	key := h.fetch.Key("member", src.Children, email)
	apps, err := fetch.Cached(ctx, h.fetch, key, func(ctx context.Context) ([]models.Application, error) {
		return h.client.ListApplicationsByEmail(ctx, src.Children, email)
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(apps))
	seen := make(map[string]bool, len(apps))
	for _, app := range apps {
		id := app.ParentID()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	summaries, err := fetch.Gated(ctx, h.fetch, ids, []interface{}{"summary", src.Parents}, func(ctx context.Context, joined string) ([]models.SummaryRecord, error) {
		return h.client.Summaries(ctx, src.Parents, src.IDsParam, joined)
	})
	if err != nil {
		return nil, err
	}

	return aggregate.EnrichWithTitles(apps, aggregate.TitleIndex(summaries), src.Type, now), nil
}

// Refresh drops every cached query so the next build reloads from upstream.
func (h *Handler) Refresh(ctx context.Context) error {
	return h.fetch.RefetchAll(ctx)
}
