package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// HorarioHandler serves the weekly-schedule endpoints of a room.
type HorarioHandler struct {
	svc    service.HorarioService
	logger *zap.Logger
}

// NewHorarioHandler builds a HorarioHandler.
func NewHorarioHandler(svc service.HorarioService, logger *zap.Logger) *HorarioHandler {
	return &HorarioHandler{svc: svc, logger: logger}
}

// Get handles GET /ambientes/:id/horarios.
func (h *HorarioHandler) Get(c *gin.Context) {
	horario, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAmbienteNotFound) {
			response.NotFound(c, 40406, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, horario)
}

// Replace handles PUT /ambientes/:id/horarios.
func (h *HorarioHandler) Replace(c *gin.Context) {
	var req dto.ReplaceHorarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	horario, err := h.svc.Replace(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		var inv *service.FranjasInvalidasError
		switch {
		case errors.Is(err, service.ErrAmbienteNotFound):
			response.NotFound(c, 40406, err.Error())
		case errors.Is(err, service.ErrAmbienteNoProgramable):
			response.Conflict(c, 40908, err.Error())
		case errors.As(err, &inv):
			details := make([]response.FieldError, 0, len(inv.Detalles))
			for _, d := range inv.Detalles {
				details = append(details, response.FieldError{Field: d.Campo, Message: d.Mensaje})
			}
			response.ErrorWithDetails(c, http.StatusBadRequest, 40010, inv.Error(), details)
		default:
			h.logger.Error("guardar horario fallo", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.OK(c, horario)
}

// ExportICal handles GET /ambientes/:id/horarios/ical.
func (h *HorarioHandler) ExportICal(c *gin.Context) {
	data, nombre, err := h.svc.ExportICal(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAmbienteNotFound) {
			response.NotFound(c, 40406, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}
