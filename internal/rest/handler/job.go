package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/designerscolony/colony/internal/board"
	"github.com/designerscolony/colony/internal/database"
	dbTypes "github.com/designerscolony/colony/internal/database/types"
	"github.com/designerscolony/colony/internal/database/types/enum"
	"github.com/designerscolony/colony/internal/rest/convert"
	restTypes "github.com/designerscolony/colony/internal/rest/types"
	"github.com/designerscolony/colony/internal/setup/config"
	"github.com/sourcegraph/conc/pool"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// JobHandler handles job feed endpoints.
type JobHandler struct {
	db     database.Client
	cfg    *config.Board
	logger *zap.Logger
}

// NewJobHandler creates a new job handler.
func NewJobHandler(db database.Client, cfg *config.Board, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		db:     db,
		cfg:    cfg,
		logger: logger.Named("job_handler"),
	}
}

func (h *JobHandler) visibleDays() int {
	if h.cfg.VisibleDays > 0 {
		return h.cfg.VisibleDays
	}

	return board.DefaultVisibleDays
}

func (h *JobHandler) pageSize() int {
	if h.cfg.PageSize > 0 {
		return h.cfg.PageSize
	}

	return board.DefaultPageSize
}

// GetJobs serves the feed in the legacy envelope. Postings, the total
// matching count, and the 24h click counts are fetched in parallel.
func (h *JobHandler) GetJobs(w http.ResponseWriter, req bunrouter.Request) error {
	now := time.Now().UTC()
	query := req.URL.Query()

	filters := board.Filters{
		Location:        query.Get("location"),
		ExperienceLevel: query.Get("experienceLevel"),
		WorkMode:        query.Get("workMode"),
	}

	limit := queryInt(query.Get("limit"), h.pageSize())
	offset := queryInt(query.Get("offset"), 0)
	visibleFrom := board.VisibleFrom(now, h.visibleDays())

	var (
		jobs   []*dbTypes.Job
		total  int
		clicks map[string]int
	)

	p := pool.New().WithContext(req.Context()).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		var err error
		jobs, err = h.db.Model().Job().Search(ctx, visibleFrom, filters, limit, offset)

		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		total, err = h.db.Model().Job().CountSearch(ctx, visibleFrom, filters)

		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		clicks, err = h.db.Model().Click().CountsSince(ctx, now.Add(-24*time.Hour))

		return err
	})

	if err := p.Wait(); err != nil {
		h.logger.Error("Failed to load job feed", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.JobsResponse{
			Success: false,
			Error:   "failed to load roles",
		})
	}

	wireJobs := make([]restTypes.Job, 0, len(jobs))

	for _, job := range jobs {
		// The store keeps rows at the exact window boundary; the strict
		// predicate drops them.
		if !board.IsVisible(job, now, h.visibleDays()) {
			continue
		}

		signal := board.Signal(job.CreatedAt, now, clicks[job.ID], h.cfg.HotClickThreshold)
		wireJobs = append(wireJobs, convert.Job(job, signal))
	}

	return writeJSON(w, http.StatusOK, restTypes.JobsResponse{
		Success: true,
		Jobs:    wireJobs,
		Total:   total,
		HasMore: offset+limit < total,
	})
}

// CreateJob inserts a new posting after validation.
func (h *JobHandler) CreateJob(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.CreateJobRequest
	if err := decodeBody(req.Request, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	fieldErrors := make(map[string]string)

	if body.CompanyName == "" {
		fieldErrors["companyName"] = "Company required"
	}

	if body.RoleTitle == "" {
		fieldErrors["roleTitle"] = "Role required"
	}

	if body.Location == "" {
		fieldErrors["location"] = "Location required"
	}

	if body.ApplyURL == "" {
		fieldErrors["applyUrl"] = "Apply link required"
	}

	if !enum.ExperienceLevel(body.ExperienceLevel).IsValid() {
		fieldErrors["experienceLevel"] = "Unknown experience level"
	}

	if !enum.WorkMode(body.WorkMode).IsValid() {
		fieldErrors["workMode"] = "Unknown work mode"
	}

	if len(fieldErrors) > 0 {
		return writeJSON(w, http.StatusUnprocessableEntity, restTypes.ValidationErrorResponse{Errors: fieldErrors})
	}

	job := &dbTypes.Job{
		CompanyName:     body.CompanyName,
		RoleTitle:       body.RoleTitle,
		Location:        body.Location,
		ExperienceLevel: enum.ExperienceLevel(body.ExperienceLevel),
		WorkMode:        enum.WorkMode(body.WorkMode),
		ApplyURL:        body.ApplyURL,
	}

	if err := h.db.Model().Job().Create(req.Context(), job); err != nil {
		h.logger.Error("Failed to create job", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to create posting"})
	}

	now := time.Now().UTC()

	return writeJSON(w, http.StatusCreated, convert.Job(job, board.Signal(job.CreatedAt, now, 0, h.cfg.HotClickThreshold)))
}

// Apply records an apply click and returns the posting's apply URL.
func (h *JobHandler) Apply(w http.ResponseWriter, req bunrouter.Request) error {
	id := req.Param("id")

	job, err := h.db.Model().Job().GetByID(req.Context(), id)
	if err != nil {
		if errors.Is(err, dbTypes.ErrJobNotFound) {
			return writeJSON(w, http.StatusNotFound, restTypes.ErrorResponse{Error: "posting not found"})
		}

		h.logger.Error("Failed to get job for apply", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to record apply"})
	}

	if err := h.db.Model().Click().Record(req.Context(), job.ID); err != nil {
		h.logger.Error("Failed to record apply click", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to record apply"})
	}

	return writeJSON(w, http.StatusOK, restTypes.ApplyResponse{ApplyURL: job.ApplyURL})
}

// queryInt parses a query integer with a default for absent or bad input.
func queryInt(s string, def int) int {
	if s == "" {
		return def
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}

	return n
}
