package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// TipoAmbienteHandler serves the room-type endpoints.
type TipoAmbienteHandler struct {
	svc    service.TipoAmbienteService
	logger *zap.Logger
}

// NewTipoAmbienteHandler builds a TipoAmbienteHandler.
func NewTipoAmbienteHandler(svc service.TipoAmbienteService, logger *zap.Logger) *TipoAmbienteHandler {
	return &TipoAmbienteHandler{svc: svc, logger: logger}
}

// Create handles POST /tipos-ambiente.
func (h *TipoAmbienteHandler) Create(c *gin.Context) {
	var req dto.CreateTipoAmbienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	tipo, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("crear tipo de ambiente fallo", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, tipo)
}

// Get handles GET /tipos-ambiente/:id.
func (h *TipoAmbienteHandler) Get(c *gin.Context) {
	tipo, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTipoAmbienteNotFound) {
			response.NotFound(c, 40405, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, tipo)
}

// List handles GET /tipos-ambiente.
func (h *TipoAmbienteHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	tipos, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, tipos, total, req.GetPage(), req.GetPageSize())
}

// Update handles PATCH /tipos-ambiente/:id.
func (h *TipoAmbienteHandler) Update(c *gin.Context) {
	var req dto.UpdateTipoAmbienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	tipo, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrTipoAmbienteNotFound) {
			response.NotFound(c, 40405, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, tipo)
}

// Delete handles DELETE /tipos-ambiente/:id.
func (h *TipoAmbienteHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTipoAmbienteNotFound):
			response.NotFound(c, 40405, err.Error())
		case errors.Is(err, service.ErrTipoAmbienteEnUso):
			response.Conflict(c, 40904, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
