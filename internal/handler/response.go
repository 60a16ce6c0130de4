package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campus-eats/internal/model"
	"campus-eats/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeProfile emits {success:true, student|vendor:{...}} with the profile
// under the role's own key.
func writeProfile(w http.ResponseWriter, role model.Role, profile model.Profile) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		role.JSONKey(): profile,
	})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, model.StatusResponse{Success: true, Message: message})
}

// writeError converts an error into {success:false, message} with a status
// code per kind. Unclassified errors become an opaque 500 so internal error
// strings never reach the client.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Unexpected server error"

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		message = apiErr.Message
	case errors.Is(err, model.ErrAccountAlreadyExists):
		status = http.StatusConflict
		message = "User already exists"
	case errors.Is(err, model.ErrAccountNotFound):
		status = http.StatusNotFound
		message = "Account not found"
	case errors.Is(err, model.ErrMenuNotFound):
		status = http.StatusNotFound
		message = "Menu not found"
	case errors.Is(err, model.ErrInvalidToken), errors.Is(err, model.ErrUnauthenticated):
		status = http.StatusUnauthorized
		message = "Not authorized"
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.StatusResponse{Success: false, Message: message})
}
