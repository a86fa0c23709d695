// internal/server/handlers.go
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "talenthub-dashboard/internal/common/errors"
	"talenthub-dashboard/internal/common/metrics"
	"talenthub-dashboard/internal/dashboards/employer"
	"talenthub-dashboard/internal/dashboards/member"
	"talenthub-dashboard/internal/dashboards/mentor"
)

// ==========================
// Dashboards
// ==========================

func (s *Server) handleEmployerDashboard(w http.ResponseWriter, r *http.Request) {
	input := &employer.Input{Email: r.URL.Query().Get("email")}
	if raw := r.URL.Query().Get("window"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			s.respondDashboard(w, employer.Role, nil, apperrors.NewBadRequestError("window must be a number"))
			return
		}
		input.WindowDays = days
	}

	started := time.Now()
	output, err := s.employer.Execute(r.Context(), input)
	metrics.DashboardBuildDuration.WithLabelValues(employer.Role).Observe(time.Since(started).Seconds())
	s.respondDashboard(w, employer.Role, output, err)
}

func (s *Server) handleMentorDashboard(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	output, err := s.mentor.Execute(r.Context(), &mentor.Input{Email: r.URL.Query().Get("email")})
	metrics.DashboardBuildDuration.WithLabelValues(mentor.Role).Observe(time.Since(started).Seconds())
	s.respondDashboard(w, mentor.Role, output, err)
}

func (s *Server) handleMemberDashboard(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	output, err := s.member.Execute(r.Context(), &member.Input{Email: r.URL.Query().Get("email")})
	metrics.DashboardBuildDuration.WithLabelValues(member.Role).Observe(time.Since(started).Seconds())
	s.respondDashboard(w, member.Role, output, err)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.employer.Refresh(r.Context()); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}

func (s *Server) respondDashboard(w http.ResponseWriter, role string, output interface{}, err error) {
	if err != nil {
		metrics.DashboardRequests.WithLabelValues(role, "error").Inc()
		writeError(w, s.logger, err)
		return
	}
	metrics.DashboardRequests.WithLabelValues(role, "ok").Inc()
	writeJSON(w, http.StatusOK, output)
}

// ==========================
// Postings
// ==========================

func (s *Server) handleGetPosting(w http.ResponseWriter, r *http.Request) {
	// Detail reads go straight to the upstream; the query cache only holds
	// dashboard aggregates.
	posting, err := s.client.GetPosting(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, posting)
}

func (s *Server) handleCreatePosting(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	created, err := s.mutations.CreatePosting(r.Context(), chi.URLParam(r, "collection"), payload)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeRaw(w, http.StatusCreated, created)
}

func (s *Server) handleUpdatePosting(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	updated, err := s.mutations.UpdatePosting(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePosting(w http.ResponseWriter, r *http.Request) {
	if err := s.mutations.DeletePosting(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id")); err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleArchive(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Archived bool `json:"archived"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, s.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	final, err := s.mutations.ToggleArchive(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"), body.Archived)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"archived": final})
}

// ==========================
// Company Profile
// ==========================

func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := s.client.GetCompany(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (s *Server) handleUpsertCompany(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := s.mutations.UpsertCompany(r.Context(), id, payload)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	writeRaw(w, status, result)
}

// ==========================
// Applications
// ==========================

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, s.logger, apperrors.NewBadRequestError("invalid JSON body"))
		return
	}

	err := s.mutations.UpdateApplicationStatus(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"), body.Status)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	if err := s.mutations.DeleteApplication(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id")); err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodePayload(r *http.Request) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewBadRequestError("invalid JSON body")
	}
	return payload, nil
}
