package handler

import (
	"net/http"

	"go-vet-clinic/internal/usecase"
	"go-vet-clinic/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardUsecase.GetSummary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard summary")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}
