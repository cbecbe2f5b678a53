package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"transcontrol/internal/boletas/service"
	httputil "transcontrol/pkg/http"
	"transcontrol/pkg/logger"
	"transcontrol/pkg/model"
	"transcontrol/pkg/sanitizer"
)

type BoletaHandler struct {
	service service.BoletaService
	log     *logger.Logger
}

func NewBoletaHandler(service service.BoletaService, log *logger.Logger) *BoletaHandler {
	return &BoletaHandler{
		service: service,
		log:     log,
	}
}

func (h *BoletaHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var b model.Boleta
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := h.service.Crear(r.Context(), &b); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, b); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *BoletaHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	resumen, err := h.service.Obtener(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resumen); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *BoletaHandler) Verificar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	verificacion, err := h.service.Verificar(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Verificar", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, verificacion); err != nil {
		h.log.Error("failed to write success response", "handler", "Verificar", "error", err)
	}
}

func (h *BoletaHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items, err := h.service.ListarResumen(r.Context(), extractListOptions(r))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, items, len(items)); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "error", err)
	}
}

func (h *BoletaHandler) ExportCSV(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="boletas.csv"`)

	if err := h.service.ExportarCSV(r.Context(), extractListOptions(r), w); err != nil {
		// Headers may already be out; log instead of switching to JSON mid-stream.
		h.log.Error("failed to stream boletas CSV", "handler", "ExportCSV", "error", err)
	}
}

// extractListOptions reads limit and soloConFoto. A missing or non-numeric
// limit stays nil so the sanitizer applies its default; out-of-range values
// are clamped there as well.
func extractListOptions(r *http.Request) sanitizer.ListOptions {
	query := r.URL.Query()

	var limit *int
	if s := query.Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			limit = &v
		}
	}

	soloConFoto := false
	switch query.Get("soloConFoto") {
	case "true", "1":
		soloConFoto = true
	}

	return sanitizer.ListOptions{Limit: limit, SoloConFoto: soloConFoto}
}
