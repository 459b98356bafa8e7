package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/designerscolony/colony/internal/database"
	dbTypes "github.com/designerscolony/colony/internal/database/types"
	"github.com/designerscolony/colony/internal/database/types/enum"
	"github.com/designerscolony/colony/internal/rest/convert"
	restTypes "github.com/designerscolony/colony/internal/rest/types"
	"github.com/redis/rueidis"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// talkCacheKey holds the serialized talk list. Any write to talks
// invalidates it.
const talkCacheKey = "colony:cache:chai_talks"

// talkCacheTTL bounds staleness if an invalidation is ever missed.
const talkCacheTTL = 5 * time.Minute

// TalkHandler handles chai talk endpoints.
type TalkHandler struct {
	db     database.Client
	cache  rueidis.Client
	logger *zap.Logger
}

// NewTalkHandler creates a new talk handler.
func NewTalkHandler(db database.Client, cache rueidis.Client, logger *zap.Logger) *TalkHandler {
	return &TalkHandler{
		db:     db,
		cache:  cache,
		logger: logger.Named("talk_handler"),
	}
}

// GetTalks lists all talks, newest first, served from the cache when
// possible.
func (h *TalkHandler) GetTalks(w http.ResponseWriter, req bunrouter.Request) error {
	ctx := req.Context()

	if cached := h.cachedTalks(ctx); cached != nil {
		return writeJSON(w, http.StatusOK, cached)
	}

	talks, err := h.db.Model().Talk().List(ctx)
	if err != nil {
		h.logger.Error("Failed to list talks", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to load talks"})
	}

	wireTalks := convert.Talks(talks)
	h.storeTalks(ctx, wireTalks)

	return writeJSON(w, http.StatusOK, wireTalks)
}

// GetTalk retrieves one talk.
func (h *TalkHandler) GetTalk(w http.ResponseWriter, req bunrouter.Request) error {
	talk, err := h.db.Model().Talk().GetByID(req.Context(), req.Param("id"))
	if err != nil {
		if errors.Is(err, dbTypes.ErrTalkNotFound) {
			return writeJSON(w, http.StatusNotFound, restTypes.ErrorResponse{Error: "talk not found"})
		}

		h.logger.Error("Failed to get talk", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to load talk"})
	}

	return writeJSON(w, http.StatusOK, convert.Talk(talk))
}

// CreateTalk lists a new talk.
func (h *TalkHandler) CreateTalk(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.TalkRequest
	if err := decodeBody(req.Request, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	if fieldErrors := validateTalk(&body); len(fieldErrors) > 0 {
		return writeJSON(w, http.StatusUnprocessableEntity, restTypes.ValidationErrorResponse{Errors: fieldErrors})
	}

	talk := talkFromRequest(&body)

	if err := h.db.Model().Talk().Create(req.Context(), talk); err != nil {
		h.logger.Error("Failed to create talk", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to create talk"})
	}

	h.invalidateTalks(req.Context())

	return writeJSON(w, http.StatusCreated, convert.Talk(talk))
}

// UpdateTalk replaces a talk's host-editable fields.
func (h *TalkHandler) UpdateTalk(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.TalkRequest
	if err := decodeBody(req.Request, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	if fieldErrors := validateTalk(&body); len(fieldErrors) > 0 {
		return writeJSON(w, http.StatusUnprocessableEntity, restTypes.ValidationErrorResponse{Errors: fieldErrors})
	}

	talk := talkFromRequest(&body)
	talk.ID = req.Param("id")

	if err := h.db.Model().Talk().Update(req.Context(), talk); err != nil {
		if errors.Is(err, dbTypes.ErrTalkNotFound) {
			return writeJSON(w, http.StatusNotFound, restTypes.ErrorResponse{Error: "talk not found"})
		}

		h.logger.Error("Failed to update talk", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to update talk"})
	}

	h.invalidateTalks(req.Context())

	updated, err := h.db.Model().Talk().GetByID(req.Context(), talk.ID)
	if err != nil {
		h.logger.Error("Failed to reload updated talk", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to update talk"})
	}

	return writeJSON(w, http.StatusOK, convert.Talk(updated))
}

// DeleteTalk removes a talk.
func (h *TalkHandler) DeleteTalk(w http.ResponseWriter, req bunrouter.Request) error {
	if err := h.db.Model().Talk().Delete(req.Context(), req.Param("id")); err != nil {
		if errors.Is(err, dbTypes.ErrTalkNotFound) {
			return writeJSON(w, http.StatusNotFound, restTypes.ErrorResponse{Error: "talk not found"})
		}

		h.logger.Error("Failed to delete talk", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to delete talk"})
	}

	h.invalidateTalks(req.Context())

	return writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// cachedTalks returns the cached list, or nil on a miss or any cache
// failure. Cache problems never fail the request.
func (h *TalkHandler) cachedTalks(ctx context.Context) []restTypes.Talk {
	data, err := h.cache.Do(ctx, h.cache.B().Get().Key(talkCacheKey).Build()).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			h.logger.Warn("Failed to read talk cache", zap.Error(err))
		}

		return nil
	}

	var talks []restTypes.Talk
	if err := sonic.Unmarshal(data, &talks); err != nil {
		h.logger.Warn("Discarding undecodable talk cache", zap.Error(err))

		return nil
	}

	return talks
}

func (h *TalkHandler) storeTalks(ctx context.Context, talks []restTypes.Talk) {
	data, err := sonic.Marshal(talks)
	if err != nil {
		h.logger.Warn("Failed to serialize talk cache", zap.Error(err))

		return
	}

	err = h.cache.Do(ctx, h.cache.B().Set().
		Key(talkCacheKey).
		Value(string(data)).
		Ex(talkCacheTTL).
		Build()).Error()
	if err != nil {
		h.logger.Warn("Failed to write talk cache", zap.Error(err))
	}
}

func (h *TalkHandler) invalidateTalks(ctx context.Context) {
	err := h.cache.Do(ctx, h.cache.B().Del().Key(talkCacheKey).Build()).Error()
	if err != nil {
		h.logger.Warn("Failed to invalidate talk cache", zap.Error(err))
	}
}

func validateTalk(body *restTypes.TalkRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if body.Title == "" {
		fieldErrors["title"] = "Title required"
	}

	talkType := enum.TalkType(body.Type)

	if !talkType.IsValid() {
		fieldErrors["type"] = "Unknown talk type"
	} else if talkType.RequiresCity() && body.City == "" {
		fieldErrors["city"] = "City required for offline talks"
	}

	if body.Date == "" {
		fieldErrors["date"] = "Date required"
	}

	if body.Time == "" {
		fieldErrors["time"] = "Time required"
	}

	if body.HostedBy == "" {
		fieldErrors["hostedBy"] = "Host required"
	}

	if body.LocationOrJoinLink == "" {
		fieldErrors["locationOrJoinLink"] = "Venue or join link required"
	}

	return fieldErrors
}

func talkFromRequest(body *restTypes.TalkRequest) *dbTypes.ChaiTalk {
	return &dbTypes.ChaiTalk{
		Title:              body.Title,
		Type:               enum.TalkType(body.Type),
		City:               body.City,
		Date:               body.Date,
		Time:               body.Time,
		About:              body.About,
		HostedBy:           body.HostedBy,
		LocationOrJoinLink: body.LocationOrJoinLink,
	}
}
