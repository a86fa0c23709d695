// internal/dashboards/employer/handler.go
package employer

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

const Role = "employer"

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

// Execute builds the employer dashboard for one owner. Tier-1 posting lists
// load in parallel, tier-2 child fetches are gated on the derived id sets,
// and a single failing fetch fails the whole build so the screen never
// renders from a partial dataset.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Email == "" {
		return nil, apperrors.NewBadRequestError("email is required")
	}

	window := input.WindowDays
	if window == 0 {
		window = h.config.DefaultWindowDays
	}
	if !h.config.WindowAllowed(window) {
		return nil, apperrors.NewBadRequestError("window size not selectable")
	}

	started := h.now()

	postings, err := h.loadPostings(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	daily, latest, err := h.loadChildren(ctx, postings)
	if err != nil {
		return nil, err
	}

	now := h.now()

	kpis := make(map[string]aggregate.MonthlySummary, len(sources))
	series := make(map[string][]models.DailyCount, len(sources))
	feeds := make([]aggregate.TypedFeed, 0, len(sources))
	for i, src := range sources {
		kpis[src.KPIKey] = aggregate.SummarizeMonthly(aggregate.PostingVolumes(postings[i]))
		series[src.Series] = daily[i]
		feeds = append(feeds, aggregate.TypedFeed{Type: src.Type, Applications: latest[i]})
	}

	output := &Output{
		KPIs:           kpis,
		Chart:          aggregate.WindowCounts(series, window, now),
		RecentActivity: aggregate.RecentActivity(feeds, h.config.RecentLimit, now),
		WindowDays:     window,
	}

	h.logger.Info("dashboard built", map[string]interface{}{
		"email":      input.Email,
		"windowDays": window,
		"durationMs": h.now().Sub(started).Milliseconds(),
	})
	return output, nil
}

func (h *Handler) loadPostings(ctx context.Context, email string) ([][]models.Posting, error) {
	postings := make([][]models.Posting, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			key := h.fetch.Key("postings", src.Collection, email)
			result, err := fetch.Cached(gctx, h.fetch, key, func(ctx context.Context) ([]models.Posting, error) {
				return h.client.ListPostings(ctx, src.Collection, src.OwnerField, email)
			})
			if err != nil {
				return err
			}
			postings[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return postings, nil
}

func (h *Handler) loadChildren(ctx context.Context, postings [][]models.Posting) ([][]models.DailyCount, [][]models.Application, error) {
	daily := make([][]models.DailyCount, len(sources))
	latest := make([][]models.Application, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		ids := postingIDs(postings[i])

		g.Go(func() error {
			result, err := fetch.Gated(gctx, h.fetch, ids, []interface{}{"daily", src.Children}, func(ctx context.Context, joined string) ([]models.DailyCount, error) {
				return h.client.DailyStatus(ctx, src.Children, src.IDsParam, joined)
			})
			if err != nil {
				return err
			}
			daily[i] = result
			return nil
		})
		g.Go(func() error {
			result, err := fetch.Gated(gctx, h.fetch, ids, []interface{}{"latest", src.Children}, func(ctx context.Context, joined string) ([]models.Application, error) {
				return h.client.LatestApplications(ctx, src.Children, src.IDsParam, joined, h.config.RecentLimit)
			})
			if err != nil {
				return err
			}
			latest[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return daily, latest, nil
}

// Refresh drops every cached query so the next build reloads from upstream.
func (h *Handler) Refresh(ctx context.Context) error {
	return h.fetch.RefetchAll(ctx)
}

func postingIDs(postings []models.Posting) []string {
	ids := make([]string, 0, len(postings))
	for _, p := range postings {
		ids = append(ids, p.ID)
	}
	return ids
}
