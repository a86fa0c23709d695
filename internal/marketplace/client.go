// internal/marketplace/client.go
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"talenthub-dashboard/internal/common/config"
	apperrors "talenthub-dashboard/internal/common/errors"
	"talenthub-dashboard/internal/common/logger"
	"talenthub-dashboard/internal/common/metrics"
	"talenthub-dashboard/internal/models"
)

// Client is the thin wrapper over the marketplace REST API. List endpoints
// normalize 404 to an empty collection and single-object responses to
// one-element arrays; detail endpoints surface 404 as a not-found error.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Logger
}

func NewClient(cfg config.UpstreamConfig, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: config.GetDuration(cfg.Timeout),
		},
		logger: log.WithFields(map[string]interface{}{"component": "marketplace-client"}),
	}
}

// ==========================
// List Endpoints
// ==========================

// ListPostings fetches the postings of one collection owned by email.
func (c *Client) ListPostings(ctx context.Context, collection, ownerField, email string) ([]models.Posting, error) {
	params := url.Values{}
	params.Set(ownerField, email)

	raw, err := c.getList(ctx, "/"+collection, params)
	if err != nil {
		return nil, err
	}

	var postings []models.Posting
	if err := json.Unmarshal(raw, &postings); err != nil {
		return nil, apperrors.NewUpstreamError("/"+collection, http.StatusBadGateway)
	}
	return postings, nil
}

// ListIDs fetches just the id strings of a collection owned by email.
func (c *Client) ListIDs(ctx context.Context, collection, ownerField, email string) ([]string, error) {
	params := url.Values{}
	params.Set(ownerField, email)

	raw, err := c.getList(ctx, "/"+collection+"/Ids", params)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, apperrors.NewUpstreamError("/"+collection+"/Ids", http.StatusBadGateway)
	}
	return ids, nil
}

// DailyStatus fetches the sparse per-day volume series for the children of
// the given parent ids.
func (c *Client) DailyStatus(ctx context.Context, collection, idsParam, joinedIDs string) ([]models.DailyCount, error) {
	params := url.Values{}
	params.Set(idsParam, joinedIDs)

	raw, err := c.getList(ctx, "/"+collection+"/DailyStatus", params)
	if err != nil {
		return nil, err
	}

	var points []models.DailyCount
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, apperrors.NewUpstreamError("/"+collection+"/DailyStatus", http.StatusBadGateway)
	}
	return points, nil
}

// LatestApplications fetches the most recent child records for the given
// parent ids, newest first, capped at limit.
func (c *Client) LatestApplications(ctx context.Context, collection, idsParam, joinedIDs string, limit int) ([]models.Application, error) {
	params := url.Values{}
	params.Set(idsParam, joinedIDs)
	params.Set("limit", strconv.Itoa(limit))

	raw, err := c.getList(ctx, "/"+collection+"/LatestApplications", params)
	if err != nil {
		return nil, err
	}

	var apps []models.Application
	if err := json.Unmarshal(raw, &apps); err != nil {
		return nil, apperrors.NewUpstreamError("/"+collection+"/LatestApplications", http.StatusBadGateway)
	}
	return apps, nil
}

// ListApplications fetches all child records scoped to the given parent ids.
func (c *Client) ListApplications(ctx context.Context, collection, idsParam, joinedIDs string) ([]models.Application, error) {
	params := url.Values{}
	params.Set(idsParam, joinedIDs)
	return c.listApplications(ctx, collection, params)
}

// ListApplicationsByEmail fetches the applications a member submitted.
func (c *Client) ListApplicationsByEmail(ctx context.Context, collection, email string) ([]models.Application, error) {
	params := url.Values{}
	params.Set("email", email)
	return c.listApplications(ctx, collection, params)
}

func (c *Client) listApplications(ctx context.Context, collection string, params url.Values) ([]models.Application, error) {
	raw, err := c.getList(ctx, "/"+collection, params)
	if err != nil {
		return nil, err
	}

	var apps []models.Application
	if err := json.Unmarshal(raw, &apps); err != nil {
		return nil, apperrors.NewUpstreamError("/"+collection, http.StatusBadGateway)
	}
	return apps, nil
}

// Summaries fetches the id→title projections for the given parent ids.
func (c *Client) Summaries(ctx context.Context, collection, idsParam, joinedIDs string) ([]models.SummaryRecord, error) {
	params := url.Values{}
	params.Set(idsParam, joinedIDs)

	raw, err := c.getList(ctx, "/"+collection+"/Summary", params)
	if err != nil {
		return nil, err
	}

	var summaries []models.SummaryRecord
	if err := json.Unmarshal(raw, &summaries); err != nil {
		return nil, apperrors.NewUpstreamError("/"+collection+"/Summary", http.StatusBadGateway)
	}
	return summaries, nil
}

// ==========================
// Detail & Mutation Endpoints
// ==========================

// GetPosting fetches a single posting by id. A 404 here is a genuine
// not-found, unlike on list endpoints.
func (c *Client) GetPosting(ctx context.Context, collection, id string) (*models.Posting, error) {
	params := url.Values{}
	params.Set("id", id)

	body, status, err := c.do(ctx, http.MethodGet, "/"+collection, params, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, apperrors.NewNotFoundError(collection, id)
	}
	if status >= http.StatusBadRequest {
		return nil, apperrors.NewUpstreamError("/"+collection, status)
	}

	var posting models.Posting
	if err := json.Unmarshal(body, &posting); err != nil {
		return nil, apperrors.NewUpstreamError("/"+collection, http.StatusBadGateway)
	}
	return &posting, nil
}

// GetCompany fetches an employer's company profile.
func (c *Client) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	params := url.Values{}
	params.Set("id", id)

	body, status, err := c.do(ctx, http.MethodGet, "/Companies", params, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, apperrors.NewNotFoundError("Companies", id)
	}
	if status >= http.StatusBadRequest {
		return nil, apperrors.NewUpstreamError("/Companies", status)
	}

	var company models.Company
	if err := json.Unmarshal(body, &company); err != nil {
		return nil, apperrors.NewUpstreamError("/Companies", http.StatusBadGateway)
	}
	return &company, nil
}

// Create posts a new document and returns the created record.
func (c *Client) Create(ctx context.Context, collection string, payload map[string]interface{}) (json.RawMessage, error) {
	body, status, err := c.do(ctx, http.MethodPost, "/"+collection, nil, payload)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusBadRequest {
		return nil, apperrors.NewUpstreamError("/"+collection, status)
	}
	return body, nil
}

// Update puts a partial document update against an id.
func (c *Client) Update(ctx context.Context, collection, id string, payload map[string]interface{}) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("id", id)

	body, status, err := c.do(ctx, http.MethodPut, "/"+collection, params, payload)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, apperrors.NewNotFoundError(collection, id)
	}
	if status >= http.StatusBadRequest {
		return nil, apperrors.NewUpstreamError("/"+collection, status)
	}
	return body, nil
}

// Delete removes a document by id.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	params := url.Values{}
	params.Set("id", id)

	_, status, err := c.do(ctx, http.MethodDelete, "/"+collection, params, nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return apperrors.NewNotFoundError(collection, id)
	}
	if status >= http.StatusBadRequest {
		return apperrors.NewUpstreamError("/"+collection, status)
	}
	return nil
}

// ==========================
// Internals
// ==========================

// getList issues a GET and applies the two list-endpoint normalizations:
// 404 becomes an empty array, and a single-object body becomes a
// one-element array.
func (c *Client) getList(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	body, status, err := c.do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return json.RawMessage("[]"), nil
	}
	if status >= http.StatusBadRequest {
		return nil, apperrors.NewUpstreamError(path, status)
	}
	return normalizeToArray(body), nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, payload interface{}) (json.RawMessage, int, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, apperrors.NewBadRequestError(fmt.Sprintf("encode payload: %v", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, 0, apperrors.NewBadRequestError(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(path, "transport_error").Inc()
		return nil, 0, apperrors.NewUpstreamTimeoutError(path, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequests.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, apperrors.NewUpstreamTimeoutError(path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		c.logger.Warn("upstream request failed", map[string]interface{}{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		})
	}

	return body, resp.StatusCode, nil
}

// normalizeToArray coerces a single-object JSON body into a one-element
// array. Some list endpoints return a bare object when exactly one record
// matches; every fetcher goes through this so the rest of the service only
// ever sees arrays.
func normalizeToArray(body json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] == '[' {
		if len(trimmed) == 0 {
			return json.RawMessage("[]")
		}
		return body
	}
	if trimmed[0] == '{' {
		wrapped := make([]byte, 0, len(body)+2)
		wrapped = append(wrapped, '[')
		wrapped = append(wrapped, body...)
		wrapped = append(wrapped, ']')
		return wrapped
	}
	// null or anything else: treat as empty
	return json.RawMessage("[]")
}
