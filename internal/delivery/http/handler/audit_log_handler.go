package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/internal/usecase"
	"go-vet-clinic/pkg/datefilter"
	"go-vet-clinic/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	location        *time.Location
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, location *time.Location) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		location:        location,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	auditLogID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid audit log ID", nil)
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if err == usecase.ErrAuditLogNotFound {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	page := pagination(r)
	filter := &entity.AuditLogFilter{
		Dates:      dateFilter(r, h.location),
		Action:     strings.TrimSpace(r.URL.Query().Get("action")),
		Pagination: page,
	}

	result, err := h.auditLogUsecase.ListAuditLogs(r.Context(), filter)
	if err != nil {
		if errors.Is(err, datefilter.ErrInvalidDate) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", result.Logs, response.NewMeta(page.Page, page.Limit, result.Total))
}
