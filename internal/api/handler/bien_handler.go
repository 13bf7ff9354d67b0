package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// BienHandler serves the asset-catalog endpoints.
type BienHandler struct {
	svc    service.BienService
	logger *zap.Logger
}

// NewBienHandler builds a BienHandler.
func NewBienHandler(svc service.BienService, logger *zap.Logger) *BienHandler {
	return &BienHandler{svc: svc, logger: logger}
}

// Create handles POST /bienes.
func (h *BienHandler) Create(c *gin.Context) {
	var req dto.CreateBienRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	bien, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNIADuplicado) {
			response.Conflict(c, 40907, err.Error())
			return
		}
		h.logger.Error("registrar bien fallo", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, bien)
}

// List handles GET /bienes, the search backend of the asset combobox.
func (h *BienHandler) List(c *gin.Context) {
	var req dto.BienListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	bienes, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, bienes, total, req.GetPage(), req.GetPageSize())
}

// ListByAmbiente handles GET /ambientes/:id/bienes.
func (h *BienHandler) ListByAmbiente(c *gin.Context) {
	bienes, err := h.svc.ListByAmbiente(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAmbienteNotFound) {
			response.NotFound(c, 40406, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, bienes)
}

// Asignar handles PUT /ambientes/:id/bienes.
func (h *BienHandler) Asignar(c *gin.Context) {
	var req dto.AsignarBienesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	bienes, err := h.svc.Asignar(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAmbienteNotFound):
			response.NotFound(c, 40406, err.Error())
		case errors.Is(err, service.ErrAmbienteInactivo):
			response.Conflict(c, 40908, err.Error())
		case errors.Is(err, service.ErrNIADesconocida):
			response.NotFound(c, 40407, err.Error())
		default:
			h.logger.Error("asignar bienes fallo", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.OK(c, bienes)
}
