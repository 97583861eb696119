package handlers

import (
	"net/http"

	"github.com/varunbhx/coachdesk/internal/usecase"
)

type DashboardHandler struct {
	MetricsUC *usecase.ComputeMetricsUseCase
}

func NewDashboardHandler(metricsUC *usecase.ComputeMetricsUseCase) *DashboardHandler {
	return &DashboardHandler{MetricsUC: metricsUC}
}

func (h *DashboardHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.MetricsUC.Execute(r.Context()))
}
