package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lljaworski/invoicing/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	var description string

	if originErr != nil {
		description = originErr.Error()
	}

	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", description)
	} else {
		slog.WarnContext(ctx, "api error", "error", description, "code", code)
	}

	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: description})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps domain errors to HTTP statuses. msg is used for unexpected errors.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "invoice not found")
	case errors.Is(err, entity.ErrInvalidArgument),
		errors.Is(err, entity.ErrInvalidVatRate),
		errors.Is(err, entity.ErrInvalidUnit),
		errors.Is(err, entity.ErrInvalidCurrency),
		errors.Is(err, entity.ErrInvalidTemplate):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "validation failed")
	case errors.Is(err, entity.ErrInvalidTransition):
		SendJSONErr(ctx, w, http.StatusConflict, err, "status change not allowed")
	case errors.Is(err, entity.ErrNotEditable):
		SendJSONErr(ctx, w, http.StatusConflict, err, "invoice can not be edited")
	case errors.Is(err, entity.ErrNotDeletable):
		SendJSONErr(ctx, w, http.StatusConflict, err, "invoice can not be deleted")
	case errors.Is(err, entity.ErrAlreadyPaid):
		SendJSONErr(ctx, w, http.StatusConflict, err, "invoice is already paid")
	case errors.Is(err, entity.ErrAlreadyExists):
		SendJSONErr(ctx, w, http.StatusConflict, err, "invoice number already exists")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}
