package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool holds encode buffers for respondJSON
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded before the header is written so an encode failure becomes a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrAchievementNotFound):
		return http.StatusNotFound, ErrMsgAchievementNotFoundError
	case errors.Is(err, domain.ErrFeatureNotFound):
		return http.StatusNotFound, ErrMsgFeatureNotFoundError
	case errors.Is(err, domain.ErrTopicNotFound):
		return http.StatusNotFound, ErrMsgTopicNotFoundError
	case errors.Is(err, domain.ErrTopicExists):
		return http.StatusConflict, ErrMsgTopicExistsError
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest, ErrMsgInvalidCategoryError
	case errors.Is(err, domain.ErrInvalidTier):
		return http.StatusBadRequest, ErrMsgInvalidTierError
	case errors.Is(err, domain.ErrInvalidPurchase):
		return http.StatusBadRequest, ErrMsgInvalidPurchaseError
	case errors.Is(err, domain.ErrTrialUnavailable):
		return http.StatusConflict, ErrMsgTrialUnavailableError
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, ErrMsgInvalidRatingError
	case errors.Is(err, domain.ErrInvalidPreferences):
		return http.StatusBadRequest, ErrMsgInvalidPreferencesError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrStoreFailure), errors.Is(err, domain.ErrCorruptValue):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Type == domain.ErrorTypeNetwork {
		return http.StatusServiceUnavailable, appErr.Message
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
