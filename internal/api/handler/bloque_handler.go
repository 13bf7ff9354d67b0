package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// BloqueHandler serves the building endpoints.
type BloqueHandler struct {
	svc    service.BloqueService
	logger *zap.Logger
}

// NewBloqueHandler builds a BloqueHandler.
func NewBloqueHandler(svc service.BloqueService, logger *zap.Logger) *BloqueHandler {
	return &BloqueHandler{svc: svc, logger: logger}
}

// refNotFound maps a missing campus, faculty or type reference to its
// 404, so create and update share one switch.
func refNotFound(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrSedeNotFound):
		response.NotFound(c, 40401, err.Error())
	case errors.Is(err, service.ErrFacultadNotFound):
		response.NotFound(c, 40402, err.Error())
	case errors.Is(err, service.ErrTipoBloqueNotFound):
		response.NotFound(c, 40403, err.Error())
	default:
		return false
	}
	return true
}

// Create handles POST /bloques.
func (h *BloqueHandler) Create(c *gin.Context) {
	var req dto.CreateBloqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	bloque, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		if refNotFound(c, err) {
			return
		}
		h.logger.Error("crear bloque fallo", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, bloque)
}

// Get handles GET /bloques/:id.
func (h *BloqueHandler) Get(c *gin.Context) {
	bloque, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBloqueNotFound) {
			response.NotFound(c, 40404, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, bloque)
}

// List handles GET /bloques.
func (h *BloqueHandler) List(c *gin.Context) {
	var req dto.BloqueListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	bloques, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, bloques, total, req.GetPage(), req.GetPageSize())
}

// Update handles PATCH /bloques/:id.
func (h *BloqueHandler) Update(c *gin.Context) {
	var req dto.UpdateBloqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	bloque, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrBloqueNotFound) {
			response.NotFound(c, 40404, err.Error())
			return
		}
		if refNotFound(c, err) {
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, bloque)
}

// Delete handles DELETE /bloques/:id.
func (h *BloqueHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBloqueNotFound):
			response.NotFound(c, 40404, err.Error())
		case errors.Is(err, service.ErrBloqueConAmbientes):
			response.Conflict(c, 40905, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
