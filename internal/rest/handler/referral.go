package handler

import (
	"errors"
	"net/http"

	"github.com/designerscolony/colony/internal/database"
	dbTypes "github.com/designerscolony/colony/internal/database/types"
	"github.com/designerscolony/colony/internal/database/types/enum"
	"github.com/designerscolony/colony/internal/rest/convert"
	restTypes "github.com/designerscolony/colony/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// ReferralHandler handles community referral endpoints.
type ReferralHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewReferralHandler creates a new referral handler.
func NewReferralHandler(db database.Client, logger *zap.Logger) *ReferralHandler {
	return &ReferralHandler{
		db:     db,
		logger: logger.Named("referral_handler"),
	}
}

// GetReferrals lists unreported referrals, newest first.
func (h *ReferralHandler) GetReferrals(w http.ResponseWriter, req bunrouter.Request) error {
	roles, err := h.db.Model().Referral().List(req.Context())
	if err != nil {
		h.logger.Error("Failed to list referrals", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to load referrals"})
	}

	return writeJSON(w, http.StatusOK, convert.Referrals(roles))
}

// CreateReferral shares a role with the community.
func (h *ReferralHandler) CreateReferral(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.CreateReferralRequest
	if err := decodeBody(req.Request, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	fieldErrors := make(map[string]string)

	if body.Company == "" {
		fieldErrors["company"] = "Company required"
	}

	if body.Role == "" {
		fieldErrors["role"] = "Role required"
	}

	if body.Location == "" {
		fieldErrors["location"] = "Location required"
	}

	if body.HowToApply == "" {
		fieldErrors["howToApply"] = "Tell people how to reach you"
	}

	if body.SharedBy == "" {
		fieldErrors["sharedBy"] = "Your name is required"
	}

	if !enum.WorkMode(body.WorkMode).IsValid() {
		fieldErrors["workMode"] = "Unknown work mode"
	}

	if len(fieldErrors) > 0 {
		return writeJSON(w, http.StatusUnprocessableEntity, restTypes.ValidationErrorResponse{Errors: fieldErrors})
	}

	role := &dbTypes.InternalRole{
		Company:         body.Company,
		Role:            body.Role,
		Location:        body.Location,
		WorkMode:        enum.WorkMode(body.WorkMode),
		ExperienceRange: body.ExperienceRange,
		HowToApply:      body.HowToApply,
		ShortNote:       body.ShortNote,
		SharedBy:        body.SharedBy,
	}

	if err := h.db.Model().Referral().Create(req.Context(), role); err != nil {
		h.logger.Error("Failed to create referral", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to share referral"})
	}

	return writeJSON(w, http.StatusCreated, convert.Referral(role))
}

// ReportReferral flags a referral so it drops out of the public list.
func (h *ReferralHandler) ReportReferral(w http.ResponseWriter, req bunrouter.Request) error {
	id := req.Param("id")

	if err := h.db.Model().Referral().Report(req.Context(), id); err != nil {
		if errors.Is(err, dbTypes.ErrReferralNotFound) {
			return writeJSON(w, http.StatusNotFound, restTypes.ErrorResponse{Error: "referral not found"})
		}

		h.logger.Error("Failed to report referral", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to report referral"})
	}

	return writeJSON(w, http.StatusOK, map[string]bool{"reported": true})
}
