package api

import (
	"net/http"

	"github.com/garnizeh/johnlink/internal/stats"
)

type StatsHandler struct {
	aggregator *stats.Aggregator
}

func NewStatsHandler(agg *stats.Aggregator) *StatsHandler {
	return &StatsHandler{aggregator: agg}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.aggregator.Snapshot(r.Context())
	if err != nil {
		storeError(w, r, "failed to compute stats", err)
		return
	}

	writeJSON(w, s, http.StatusOK)
}
