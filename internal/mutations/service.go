// internal/mutations/service.go
package mutations

import (
	"context"
	"encoding/json"

	"talenthub-dashboard/internal/common/cache"
	"talenthub-dashboard/internal/common/config"
	apperrors "talenthub-dashboard/internal/common/errors"
	"talenthub-dashboard/internal/common/logger"
	"talenthub-dashboard/internal/common/validation"
	"talenthub-dashboard/internal/marketplace"
	"talenthub-dashboard/internal/models"
)

// Service carries the write path: posting CRUD, application decisions, and
// the optimistic archive toggle. Every successful write invalidates the
// dashboard query cache so the next build sees the change.
type Service struct {
	client *marketplace.Client
	cache  cache.Cache
	cfg    config.CacheConfig
	logger logger.Logger
}

func NewService(client *marketplace.Client, c cache.Cache, cfg config.CacheConfig, log logger.Logger) *Service {
	return &Service{
		client: client,
		cache:  c,
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "mutations"}),
	}
}

// CreatePosting validates the payload against the collection's schema and
// passes it through to the upstream.
func (s *Service) CreatePosting(ctx context.Context, collection string, payload map[string]interface{}) (json.RawMessage, error) {
	if err := s.validate(collection, payload); err != nil {
		return nil, err
	}

	created, err := s.client.Create(ctx, collection, payload)
	if err != nil {
		return nil, err
	}

	s.invalidateDashboards(ctx, collection)
	return created, nil
}

// UpdatePosting validates and applies a partial update.
func (s *Service) UpdatePosting(ctx context.Context, collection, id string, payload map[string]interface{}) (json.RawMessage, error) {
	if id == "" {
		return nil, apperrors.NewBadRequestError("id is required")
	}
	if err := s.validate(collection, payload); err != nil {
		return nil, err
	}

	updated, err := s.client.Update(ctx, collection, id, payload)
	if err != nil {
		return nil, err
	}

	s.invalidateDashboards(ctx, collection)
	return updated, nil
}

// DeletePosting removes a posting.
func (s *Service) DeletePosting(ctx context.Context, collection, id string) error {
	if id == "" {
		return apperrors.NewBadRequestError("id is required")
	}
	if err := s.client.Delete(ctx, collection, id); err != nil {
		return err
	}
	s.invalidateDashboards(ctx, collection)
	return nil
}

// UpdateApplicationStatus moves an application to accepted, rejected, or
// pending. Anything else is rejected before it reaches the upstream.
func (s *Service) UpdateApplicationStatus(ctx context.Context, collection, id, status string) error {
	if id == "" {
		return apperrors.NewBadRequestError("id is required")
	}

	normalized := models.ParseStatus(status)
	switch normalized {
	case models.StatusAccepted, models.StatusRejected, models.StatusPending:
	default:
		return apperrors.NewValidationError(map[string]string{"status": "must be accepted, rejected, or pending"})
	}

	_, err := s.client.Update(ctx, collection, id, map[string]interface{}{"status": string(normalized)})
	if err != nil {
		return err
	}

	s.logger.Info("application status updated", map[string]interface{}{
		"collection": collection,
		"id":         id,
		"status":     string(normalized),
	})
	s.invalidateDashboards(ctx, collection)
	return nil
}

// DeleteApplication withdraws an application.
func (s *Service) DeleteApplication(ctx context.Context, collection, id string) error {
	if id == "" {
		return apperrors.NewBadRequestError("id is required")
	}
	if err := s.client.Delete(ctx, collection, id); err != nil {
		return err
	}
	s.invalidateDashboards(ctx, collection)
	return nil
}

// UpsertCompany creates or updates an employer's company profile. An empty
// id creates, a non-empty id updates.
func (s *Service) UpsertCompany(ctx context.Context, id string, payload map[string]interface{}) (json.RawMessage, error) {
	if err := s.validate("Companies", payload); err != nil {
		return nil, err
	}

	var (
		result json.RawMessage
		err    error
	)
	if id == "" {
		result, err = s.client.Create(ctx, "Companies", payload)
	} else {
		result, err = s.client.Update(ctx, "Companies", id, payload)
	}
	if err != nil {
		return nil, err
	}

	s.invalidateDashboards(ctx, "Companies")
	return result, nil
}

// ToggleArchive flips a posting's archived flag optimistically: the cached
// flag changes before the upstream confirms, reverts if the write fails,
// and reconciles to whatever the server actually stored.
func (s *Service) ToggleArchive(ctx context.Context, collection, id string, current bool) (bool, error) {
	if id == "" {
		return current, apperrors.NewBadRequestError("id is required")
	}

	key := cache.Key(s.cfg.KeyPrefix, "archived", collection, id)
	final, err := cache.OptimisticToggle(ctx, s.cache, key, current, config.GetDuration(s.cfg.TTL), func(ctx context.Context) (bool, error) {
		body, err := s.client.Update(ctx, collection, id, map[string]interface{}{"archived": !current})
		if err != nil {
			return current, err
		}

		var updated models.Posting
		if err := json.Unmarshal(body, &updated); err != nil {
			// Upstream confirmed the write but returned no readable body;
			// trust the optimistic value.
			return !current, nil
		}
		return updated.Archived, nil
	})
	if err != nil {
		return final, err
	}

	s.invalidateDashboards(ctx, collection)
	return final, nil
}

func (s *Service) validate(collection string, payload map[string]interface{}) error {
	schema := validation.SchemaFor(collection)
	if schema == nil {
		return nil
	}

	result, err := validation.ValidatePayload(payload, schema)
	if err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	if !result.Valid {
		return apperrors.NewValidationError(result.FieldMap())
	}
	return nil
}

// invalidateDashboards drops all cached dashboard queries. Writes are rare
// next to reads, so a full prefix sweep beats tracking which keys a
// collection feeds.
func (s *Service) invalidateDashboards(ctx context.Context, collection string) {
	if err := s.cache.InvalidatePrefix(ctx, s.cfg.KeyPrefix); err != nil {
		s.logger.WithError(err).Warn("cache invalidation failed", map[string]interface{}{
			"collection": collection,
		})
	}
}
