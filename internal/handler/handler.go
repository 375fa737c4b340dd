package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"foodshare/internal/middleware"
	"foodshare/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes the standardised error body with the given status.
// The correlation id ties the response to the request log line.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("code", code).Int("status", status).Str("error", message).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: middleware.GetRequestID(r.Context()),
	})
}

// writeDomainError maps a service error onto the error body. Errors that
// are not domain errors stay opaque to the client.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, r, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("unhandled service error")
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

// statusForCode maps domain error codes onto HTTP status codes. Unresolved
// identities are 404, referential conflicts 409, anything else a caller
// can fix is 400.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeProviderNotFound,
		model.ErrCodeReceiverNotFound,
		model.ErrCodeListingNotFound,
		model.ErrCodeReportNotFound:
		return http.StatusNotFound
	case model.ErrCodeListingClaimed,
		model.ErrCodeProviderHasListings:
		return http.StatusConflict
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// writeResultSet renders a result set as JSON, or as a CSV attachment when
// the request carries format=csv.
func writeResultSet(w http.ResponseWriter, r *http.Request, rs *model.ResultSet, filename string, logger zerolog.Logger) {
	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if err := rs.WriteCSV(w); err != nil {
			logger.Error().Err(err).Str("filename", filename).Msg("failed to stream csv")
		}
		return
	}

	writeJSON(w, http.StatusOK, rs)
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// pathID extracts the numeric identifier sitting between prefix and suffix
// in the request path, e.g. /api/claims/{id}/status.
func pathID(path, prefix, suffix string) (int64, error) {
	if !strings.HasPrefix(path, prefix) {
		return 0, fmt.Errorf("path %q does not match %q", path, prefix)
	}

	idStr := strings.TrimPrefix(path, prefix)
	if suffix != "" {
		idStr = strings.TrimSuffix(idStr, suffix)
	}
	idStr = strings.Trim(idStr, "/")
	if idStr == "" {
		return 0, fmt.Errorf("identifier is required")
	}

	return strconv.ParseInt(idStr, 10, 64)
}
