package handler

import (
	"errors"
	"net/http"

	"github.com/designerscolony/colony/internal/rest/convert"
	restTypes "github.com/designerscolony/colony/internal/rest/types"
	"github.com/designerscolony/colony/internal/tracker"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// gateMessage is the sign-in prompt returned with free-tier rejections.
const gateMessage = "Sign in to keep tracking more applications"

// TrackerHandler handles application tracker endpoints.
type TrackerHandler struct {
	controller *tracker.Controller
	logger     *zap.Logger
}

// NewTrackerHandler creates a new tracker handler.
func NewTrackerHandler(controller *tracker.Controller, logger *zap.Logger) *TrackerHandler {
	return &TrackerHandler{
		controller: controller,
		logger:     logger.Named("tracker_handler"),
	}
}

// GetApplications lists the owner's active partition.
func (h *TrackerHandler) GetApplications(w http.ResponseWriter, req bunrouter.Request) error {
	apps, err := h.controller.List(req.Context(), req.Param("owner"))
	if err != nil {
		h.logger.Error("Failed to list applications", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to load applications"})
	}

	return writeJSON(w, http.StatusOK, convert.Applications(apps))
}

// AddApplication appends a blank row with default stage and outcome.
func (h *TrackerHandler) AddApplication(w http.ResponseWriter, req bunrouter.Request) error {
	app, err := h.controller.AddRow(req.Context(), req.Param("owner"))
	if err != nil {
		if errors.Is(err, tracker.ErrFreeTierLimit) {
			return writeJSON(w, http.StatusForbidden, restTypes.ErrorResponse{Error: gateMessage})
		}

		h.logger.Error("Failed to add application", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to add application"})
	}

	return writeJSON(w, http.StatusCreated, convert.Application(app))
}

// UpdateApplication sets one field on one row.
func (h *TrackerHandler) UpdateApplication(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.UpdateApplicationRequest
	if err := decodeBody(req.Request, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	app, err := h.controller.UpdateField(req.Context(), req.Param("owner"), req.Param("id"), body.Field, body.Value)
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrFreeTierLocked):
			return writeJSON(w, http.StatusForbidden, restTypes.ErrorResponse{Error: gateMessage})
		case errors.Is(err, tracker.ErrRowNotFound):
			return writeJSON(w, http.StatusNotFound, restTypes.ErrorResponse{Error: "application not found"})
		case errors.Is(err, tracker.ErrUnknownField):
			return writeJSON(w, http.StatusUnprocessableEntity, restTypes.ValidationErrorResponse{
				Errors: map[string]string{"field": "Unknown field"},
			})
		case errors.Is(err, tracker.ErrInvalidFieldValue):
			return writeJSON(w, http.StatusUnprocessableEntity, restTypes.ValidationErrorResponse{
				Errors: map[string]string{body.Field: "Invalid value"},
			})
		}

		h.logger.Error("Failed to update application", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to update application"})
	}

	return writeJSON(w, http.StatusOK, convert.Application(app))
}

// DeleteApplication removes one row.
func (h *TrackerHandler) DeleteApplication(w http.ResponseWriter, req bunrouter.Request) error {
	err := h.controller.Delete(req.Context(), req.Param("owner"), req.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrFreeTierLocked):
			return writeJSON(w, http.StatusForbidden, restTypes.ErrorResponse{Error: gateMessage})
		case errors.Is(err, tracker.ErrRowNotFound):
			return writeJSON(w, http.StatusNotFound, restTypes.ErrorResponse{Error: "application not found"})
		}

		h.logger.Error("Failed to delete application", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to delete application"})
	}

	return writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
