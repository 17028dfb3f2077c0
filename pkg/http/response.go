package http

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// no recovery possible after WriteHeader, caller can only log
		return err
	}
	return nil
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)

	errResp := ErrorResponse{
		Error:   appErr.Message,
		Details: appErr.Details,
	}
	if appErr.Code == apperrors.CodeInternal || appErr.Code == apperrors.CodeTransaction {
		// never leak store-level diagnostics to the client
		errResp.Details = nil
	}

	return WriteJSON(w, appErr.StatusCode(), errResp)
}

// WriteSuccess writes the entity as a bare JSON body with status 200.
// All routes, including POST, respond 200 on success.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, data)
}
