package api

import (
	"net/http"

	"github.com/garnizeh/johnlink/internal/config"
	"github.com/garnizeh/johnlink/internal/db"
	"github.com/garnizeh/johnlink/internal/repository/sqlite"
	"github.com/garnizeh/johnlink/internal/stats"
	"github.com/gorilla/mux"
)

// SetupRoutes wires every handler onto a router backed by d. now is the clock
// used for stats windows and default activity dates; nil means time.Now.
func SetupRoutes(cfg *config.Config, version, buildTime string, d *db.DB, now stats.Clock) *mux.Router {
	r := mux.NewRouter()
	metrics := NewMetrics("johnlink")

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(d, logger).Repository()

	// Create handlers
	systemHandler := &SystemHandler{Store: d}
	companiesHandler := NewCompaniesHandler(repo.Company)
	projectsHandler := NewProjectsHandler(repo.Project)
	activitiesHandler := NewActivitiesHandler(repo.Activity, now)
	employeesHandler := NewEmployeesHandler(repo.Employee)
	statsHandler := NewStatsHandler(stats.NewAggregator(repo.Stats, now, logger))

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods(http.MethodGet)
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	apiR := r.PathPrefix("/api").Subrouter()

	// Companies endpoints
	apiR.HandleFunc("/companies", companiesHandler.ListCompanies).Methods(http.MethodGet)
	apiR.HandleFunc("/companies", companiesHandler.CreateCompany).Methods(http.MethodPost)
	apiR.HandleFunc("/companies/{id:[0-9]+}", companiesHandler.UpdateCompany).Methods(http.MethodPut)
	apiR.HandleFunc("/companies/{id:[0-9]+}", companiesHandler.DeleteCompany).Methods(http.MethodDelete)

	// Projects endpoints
	apiR.HandleFunc("/projects", projectsHandler.ListProjects).Methods(http.MethodGet)
	apiR.HandleFunc("/projects", projectsHandler.CreateProject).Methods(http.MethodPost)
	apiR.HandleFunc("/projects/{id:[0-9]+}", projectsHandler.UpdateProject).Methods(http.MethodPut)
	apiR.HandleFunc("/projects/{id:[0-9]+}", projectsHandler.DeleteProject).Methods(http.MethodDelete)

	// Activities endpoints
	apiR.HandleFunc("/activities", activitiesHandler.ListActivities).Methods(http.MethodGet)
	apiR.HandleFunc("/activities", activitiesHandler.CreateActivity).Methods(http.MethodPost)
	apiR.HandleFunc("/activities/{id:[0-9]+}", activitiesHandler.UpdateActivity).Methods(http.MethodPut)
	apiR.HandleFunc("/activities/{id:[0-9]+}", activitiesHandler.DeleteActivity).Methods(http.MethodDelete)

	// Employees endpoints
	apiR.HandleFunc("/employees", employeesHandler.ListEmployees).Methods(http.MethodGet)
	apiR.HandleFunc("/employees", employeesHandler.CreateEmployee).Methods(http.MethodPost)
	apiR.HandleFunc("/employees/{id:[0-9]+}", employeesHandler.DeleteEmployee).Methods(http.MethodDelete)

	// Stats
	apiR.HandleFunc("/stats", statsHandler.GetStats).Methods(http.MethodGet)

	// Everything else is the single-page app; OPTIONS is answered by CORSMiddleware
	r.PathPrefix("/").Handler(SPAHandler{Dir: cfg.StaticDir}).Methods(http.MethodGet, http.MethodHead, http.MethodOptions)

	return r
}
