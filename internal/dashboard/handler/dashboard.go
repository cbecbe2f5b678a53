package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"transcontrol/internal/dashboard/service"
	httputil "transcontrol/pkg/http"
	"transcontrol/pkg/logger"
)

type DashboardHandler struct {
	service service.DashboardService
	log     *logger.Logger
}

func NewDashboardHandler(service service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

func (h *DashboardHandler) Resumen(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	snap, err := h.service.Resumen(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Resumen", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, snap); err != nil {
		h.log.Error("failed to write success response", "handler", "Resumen", "error", err)
	}
}

func (h *DashboardHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/dashboard", h.Resumen)
}
