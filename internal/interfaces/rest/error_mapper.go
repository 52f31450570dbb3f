package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/avi-gateway/internal/api"
	"github.com/DanielPopoola/avi-gateway/internal/application"
)

// BuildErrorResponse maps any error to its HTTP status and envelope. Internal
// failures get a generic message so causes never leak to callers.
func BuildErrorResponse(err error) (int, api.ErrorResponse) {
	svcErr := application.ToServiceError(err)

	var resp api.ErrorResponse
	resp.Success = false
	resp.Error.Code = svcErr.Code
	resp.Error.Message = svcErr.Message

	switch svcErr.Code {
	case application.ErrCodeInvalidInput, application.ErrCodeConfiguration, application.ErrCodeNotFound:
		if svcErr.Err != nil {
			resp.Error.Message = svcErr.Message + ": " + svcErr.Err.Error()
		}
	}

	return svcErr.HTTPStatus, resp
}

func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, resp := BuildErrorResponse(err)

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed", "status", statusCode, "error", err)
	}

	WriteJSON(w, statusCode, resp)
}

func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
