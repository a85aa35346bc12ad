package api

import (
	"net/http"
	"time"

	"github.com/garnizeh/johnlink/internal/stats"
	"github.com/garnizeh/johnlink/pkg/models"
	"github.com/garnizeh/johnlink/pkg/repository"
)

const (
	defaultActivityCategory = "general"
	defaultActivityStatus   = "completed"
)

type ActivitiesHandler struct {
	activityRepo repository.ActivityRepo
	now          stats.Clock
}

// NewActivitiesHandler builds the handler; now supplies the default date for
// activities created without one and falls back to time.Now.
func NewActivitiesHandler(ar repository.ActivityRepo, now stats.Clock) *ActivitiesHandler {
	if now == nil {
		now = time.Now
	}
	return &ActivitiesHandler{activityRepo: ar, now: now}
}

type activityRequest struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	CompanyID       *looseInt `json:"company_id,omitempty"`
	ProjectID       *looseInt `json:"project_id,omitempty"`
	Category        *string   `json:"category,omitempty"`
	DurationMinutes *looseInt `json:"duration_minutes,omitempty"`
	Date            *string   `json:"date,omitempty"`
	StartTime       *string   `json:"start_time,omitempty"`
	EndTime         *string   `json:"end_time,omitempty"`
	Status          *string   `json:"status,omitempty"`
}

type activityResponse struct {
	ID int64 `json:"id"`
	activityRequest
}

func (req activityRequest) activity(id int64) *models.Activity {
	return &models.Activity{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		CompanyID:       req.CompanyID.int64Ptr(),
		ProjectID:       req.ProjectID.int64Ptr(),
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes.int64Ptr(),
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          req.Status,
	}
}

// withDefaults applies the creation defaults: empty or zero references become
// NULL and empty category, duration, date and status take their default values.
func (h *ActivitiesHandler) withDefaults(a *models.Activity) {
	if a.CompanyID != nil && *a.CompanyID == 0 {
		a.CompanyID = nil
	}
	if a.ProjectID != nil && *a.ProjectID == 0 {
		a.ProjectID = nil
	}
	if !nonEmpty(a.Category) {
		c := defaultActivityCategory
		a.Category = &c
	}
	if a.DurationMinutes == nil {
		var d int64
		a.DurationMinutes = &d
	}
	if !nonEmpty(a.Date) {
		d := stats.Date(h.now())
		a.Date = &d
	}
	if !nonEmpty(a.Status) {
		s := defaultActivityStatus
		a.Status = &s
	}
}

func (h *ActivitiesHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.ActivityFilter{
		Date:      q.Get("date"),
		CompanyID: q.Get("company_id"),
		ProjectID: q.Get("project_id"),
	}
	if l := q.Get("limit"); l != "" {
		// leading digits are used ("5abc" is 5); a non-numeric limit is ignored
		if v, ok := leadingInt(l); ok {
			f.Limit = &v
		}
	}

	acts, err := h.activityRepo.ListActivities(r.Context(), f)
	if err != nil {
		storeError(w, r, "failed to list activities", err)
		return
	}
	if acts == nil {
		acts = []models.ActivityDetail{}
	}

	writeJSON(w, acts, http.StatusOK)
}

func (h *ActivitiesHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	a := req.activity(0)
	h.withDefaults(a)

	id, err := h.activityRepo.CreateActivity(r.Context(), a)
	if err != nil {
		storeError(w, r, "failed to create activity", err)
		return
	}

	writeJSON(w, activityResponse{ID: id, activityRequest: req}, http.StatusOK)
}

// UpdateActivity rewrites the whole row; no defaults are applied.
func (h *ActivitiesHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.activityRepo.UpdateActivity(r.Context(), req.activity(id)); err != nil {
		storeError(w, r, "failed to update activity", err)
		return
	}

	writeSuccess(w)
}

func (h *ActivitiesHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.activityRepo.DeleteActivity(r.Context(), id); err != nil {
		storeError(w, r, "failed to delete activity", err)
		return
	}

	writeSuccess(w)
}
