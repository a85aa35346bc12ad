package api

import (
	"net/http"

	"github.com/garnizeh/johnlink/pkg/models"
	"github.com/garnizeh/johnlink/pkg/repository"
)

type EmployeesHandler struct {
	employeeRepo repository.EmployeeRepo
}

func NewEmployeesHandler(er repository.EmployeeRepo) *EmployeesHandler {
	return &EmployeesHandler{employeeRepo: er}
}

type employeeRequest struct {
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Role      *string   `json:"role,omitempty"`
	CompanyID *looseInt `json:"company_id,omitempty"`
}

type employeeResponse struct {
	ID int64 `json:"id"`
	employeeRequest
}

func (h *EmployeesHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.ListEmployees(r.Context())
	if err != nil {
		storeError(w, r, "failed to list employees", err)
		return
	}
	if employees == nil {
		employees = []models.EmployeeDetail{}
	}

	writeJSON(w, employees, http.StatusOK)
}

func (h *EmployeesHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	e := &models.Employee{Name: req.Name, Email: req.Email, Role: req.Role, CompanyID: req.CompanyID.int64Ptr()}
	id, err := h.employeeRepo.CreateEmployee(r.Context(), e)
	if err != nil {
		storeError(w, r, "failed to create employee", err)
		return
	}

	writeJSON(w, employeeResponse{ID: id, employeeRequest: req}, http.StatusOK)
}

func (h *EmployeesHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.employeeRepo.DeleteEmployee(r.Context(), id); err != nil {
		storeError(w, r, "failed to delete employee", err)
		return
	}

	writeSuccess(w)
}
