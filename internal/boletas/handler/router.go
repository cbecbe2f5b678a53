package handler

import "github.com/julienschmidt/httprouter"

func (h *BoletaHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/boletas", h.Create)
	router.GET("/api/v1/boletas", h.List)
	router.GET("/api/v1/boletas/:id", h.GetByID)
	router.GET("/api/v1/boletas/:id/verificar", h.Verificar)
	// Lives outside /boletas so the static path cannot collide with :id.
	router.GET("/api/v1/exportes/boletas.csv", h.ExportCSV)
}
