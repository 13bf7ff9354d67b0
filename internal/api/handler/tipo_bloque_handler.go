package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// TipoBloqueHandler serves the block-type endpoints.
type TipoBloqueHandler struct {
	svc    service.TipoBloqueService
	logger *zap.Logger
}

// NewTipoBloqueHandler builds a TipoBloqueHandler.
func NewTipoBloqueHandler(svc service.TipoBloqueService, logger *zap.Logger) *TipoBloqueHandler {
	return &TipoBloqueHandler{svc: svc, logger: logger}
}

// Create handles POST /tipos-bloque.
func (h *TipoBloqueHandler) Create(c *gin.Context) {
	var req dto.CreateTipoBloqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	tipo, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("crear tipo de bloque fallo", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, tipo)
}

// Get handles GET /tipos-bloque/:id.
func (h *TipoBloqueHandler) Get(c *gin.Context) {
	tipo, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTipoBloqueNotFound) {
			response.NotFound(c, 40403, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, tipo)
}

// List handles GET /tipos-bloque.
func (h *TipoBloqueHandler) List(c *gin.Context) {
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

// Update handles PATCH /tipos-bloque/:id.
func (h *TipoBloqueHandler) Update(c *gin.Context) {
	var req dto.UpdateTipoBloqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	tipo, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrTipoBloqueNotFound) {
			response.NotFound(c, 40403, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, tipo)
}

// Delete handles DELETE /tipos-bloque/:id.
func (h *TipoBloqueHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTipoBloqueNotFound):
			response.NotFound(c, 40403, err.Error())
		case errors.Is(err, service.ErrTipoBloqueEnUso):
			response.Conflict(c, 40903, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
