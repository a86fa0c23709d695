// internal/server/respond.go
package server

import (
	"encoding/json"
	"net/http"

	apperrors "talenthub-dashboard/internal/common/errors"
	"talenthub-dashboard/internal/common/logger"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeRaw forwards an upstream JSON body without re-encoding it.
func writeRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	stdErr := apperrors.AsStandard(err)
	status := apperrors.HTTPStatus(stdErr.Code)

	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("request failed", map[string]interface{}{
			"code": string(stdErr.Code),
		})
	}

	writeJSON(w, status, map[string]interface{}{"error": stdErr})
}
