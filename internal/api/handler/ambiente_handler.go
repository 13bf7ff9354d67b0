package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// AmbienteHandler serves the room endpoints.
type AmbienteHandler struct {
	svc    service.AmbienteService
	logger *zap.Logger
}

// NewAmbienteHandler builds an AmbienteHandler.
func NewAmbienteHandler(svc service.AmbienteService, logger *zap.Logger) *AmbienteHandler {
	return &AmbienteHandler{svc: svc, logger: logger}
}

// Create handles POST /ambientes.
func (h *AmbienteHandler) Create(c *gin.Context) {
	var req dto.CreateAmbienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	ambiente, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBloqueNotFound):
			response.NotFound(c, 40404, err.Error())
		case errors.Is(err, service.ErrTipoAmbienteNotFound):
			response.NotFound(c, 40405, err.Error())
		case errors.Is(err, service.ErrGrillaInvalida):
			response.BadRequest(c, 40001, err.Error())
		default:
			h.logger.Error("crear ambiente fallo", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.Created(c, ambiente)
}

// Get handles GET /ambientes/:id.
func (h *AmbienteHandler) Get(c *gin.Context) {
	ambiente, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAmbienteNotFound) {
			response.NotFound(c, 40406, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, ambiente)
}

// List handles GET /ambientes.
func (h *AmbienteHandler) List(c *gin.Context) {
	var req dto.AmbienteListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	ambientes, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, ambientes, total, req.GetPage(), req.GetPageSize())
}

// Update handles PATCH /ambientes/:id.
func (h *AmbienteHandler) Update(c *gin.Context) {
	var req dto.UpdateAmbienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	ambiente, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAmbienteNotFound):
			response.NotFound(c, 40406, err.Error())
		case errors.Is(err, service.ErrBloqueNotFound):
			response.NotFound(c, 40404, err.Error())
		case errors.Is(err, service.ErrTipoAmbienteNotFound):
			response.NotFound(c, 40405, err.Error())
		case errors.Is(err, service.ErrGrillaInvalida):
			response.BadRequest(c, 40001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, ambiente)
}

// Delete handles DELETE /ambientes/:id.
func (h *AmbienteHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAmbienteNotFound):
			response.NotFound(c, 40406, err.Error())
		case errors.Is(err, service.ErrAmbienteConBienes):
			response.Conflict(c, 40906, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
