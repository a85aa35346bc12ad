package api

import (
	"net/http"

	"github.com/garnizeh/johnlink/pkg/models"
	"github.com/garnizeh/johnlink/pkg/repository"
)

const defaultProjectStatus = "active"

type ProjectsHandler struct {
	projectRepo repository.ProjectRepo
}

func NewProjectsHandler(pr repository.ProjectRepo) *ProjectsHandler {
	return &ProjectsHandler{projectRepo: pr}
}

type projectRequest struct {
	Name        *string   `json:"name,omitempty"`
	CompanyID   *looseInt `json:"company_id,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

// projectResponse echoes the fields the client sent alongside the new id.
type projectResponse struct {
	ID int64 `json:"id"`
	projectRequest
}

func (req projectRequest) project(id int64) *models.Project {
	return &models.Project{ID: id, Name: req.Name, CompanyID: req.CompanyID.int64Ptr(), Description: req.Description, Status: req.Status}
}

func (h *ProjectsHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectRepo.ListProjects(r.Context())
	if err != nil {
		storeError(w, r, "failed to list projects", err)
		return
	}
	if projects == nil {
		projects = []models.ProjectDetail{}
	}

	writeJSON(w, projects, http.StatusOK)
}

func (h *ProjectsHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	p := req.project(0)
	if !nonEmpty(p.Status) {
		s := defaultProjectStatus
		p.Status = &s
	}

	id, err := h.projectRepo.CreateProject(r.Context(), p)
	if err != nil {
		storeError(w, r, "failed to create project", err)
		return
	}

	writeJSON(w, projectResponse{ID: id, projectRequest: req}, http.StatusOK)
}

func (h *ProjectsHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.projectRepo.UpdateProject(r.Context(), req.project(id)); err != nil {
		storeError(w, r, "failed to update project", err)
		return
	}

	writeSuccess(w)
}

func (h *ProjectsHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.projectRepo.DeleteProject(r.Context(), id); err != nil {
		storeError(w, r, "failed to delete project", err)
		return
	}

	writeSuccess(w)
}
