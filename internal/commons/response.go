package commons

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "meatshop/internal/errors"

	"go.uber.org/zap"
)

const maxJSONBodyBytes = 1 << 20

type ErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Detail  string                       `json:"detail"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// DecodeJSON reads a single JSON document from the request body. Any failure
// is reported as a ValidationError on the body field.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must contain a single JSON object",
		})
	}

	return nil
}

// WriteError maps the error taxonomy onto HTTP statuses. Errors outside the
// taxonomy are logged and answered with a generic 500.
func WriteError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION_ERROR",
			Message: ve.Message,
			Detail:  ve.Message,
			Details: ve.Details,
		}, logger)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		WriteJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "NOT_FOUND",
			Message: nfe.Message,
			Detail:  nfe.Message,
		}, logger)
		return
	}

	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "UNAUTHORIZED",
			Message: ue.Message,
			Detail:  ue.Message,
		}, logger)
		return
	}

	if me, ok := apperrors.IsMethodNotAllowedError(err); ok {
		WriteJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error:   "METHOD_NOT_ALLOWED",
			Message: me.Message,
			Detail:  me.Message,
		}, logger)
		return
	}

	message := "an unexpected error occurred"
	var ie *apperrors.InternalError
	if errors.As(err, &ie) {
		message = ie.Message
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "INTERNAL_ERROR",
		Message: message,
		Detail:  message,
	}, logger)
}
