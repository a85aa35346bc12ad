package api

import (
	"net/http"

	"github.com/garnizeh/johnlink/pkg/models"
	"github.com/garnizeh/johnlink/pkg/repository"
)

const defaultCompanyColor = "#3B82F6"

type CompaniesHandler struct {
	companyRepo repository.CompanyRepo
}

func NewCompaniesHandler(cr repository.CompanyRepo) *CompaniesHandler {
	return &CompaniesHandler{companyRepo: cr}
}

type companyRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type companyResponse struct {
	ID int64 `json:"id"`
	companyRequest
}

func (h *CompaniesHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyRepo.ListCompanies(r.Context())
	if err != nil {
		storeError(w, r, "failed to list companies", err)
		return
	}
	if companies == nil {
		companies = []models.Company{}
	}

	writeJSON(w, companies, http.StatusOK)
}

func (h *CompaniesHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	color := req.Color
	if !nonEmpty(color) {
		c := defaultCompanyColor
		color = &c
	}

	id, err := h.companyRepo.CreateCompany(r.Context(), &models.Company{Name: req.Name, Description: req.Description, Color: color})
	if err != nil {
		storeError(w, r, "failed to create company", err)
		return
	}

	writeJSON(w, companyResponse{ID: id, companyRequest: req}, http.StatusOK)
}

func (h *CompaniesHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	c := &models.Company{ID: id, Name: req.Name, Description: req.Description, Color: req.Color}
	if err := h.companyRepo.UpdateCompany(r.Context(), c); err != nil {
		storeError(w, r, "failed to update company", err)
		return
	}

	writeSuccess(w)
}

func (h *CompaniesHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.companyRepo.DeleteCompany(r.Context(), id); err != nil {
		storeError(w, r, "failed to delete company", err)
		return
	}

	writeSuccess(w)
}
