package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// FacultadHandler serves the faculty endpoints.
type FacultadHandler struct {
	svc    service.FacultadService
	logger *zap.Logger
}

// NewFacultadHandler builds a FacultadHandler.
func NewFacultadHandler(svc service.FacultadService, logger *zap.Logger) *FacultadHandler {
	return &FacultadHandler{svc: svc, logger: logger}
}

// Create handles POST /facultades.
func (h *FacultadHandler) Create(c *gin.Context) {
	var req dto.CreateFacultadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	facultad, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("crear facultad fallo", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, facultad)
}

// Get handles GET /facultades/:id.
func (h *FacultadHandler) Get(c *gin.Context) {
	facultad, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrFacultadNotFound) {
			response.NotFound(c, 40402, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, facultad)
}

// List handles GET /facultades.
func (h *FacultadHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	facultades, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, facultades, total, req.GetPage(), req.GetPageSize())
}

// Update handles PATCH /facultades/:id.
func (h *FacultadHandler) Update(c *gin.Context) {
	var req dto.UpdateFacultadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	facultad, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrFacultadNotFound) {
			response.NotFound(c, 40402, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, facultad)
}

// Delete handles DELETE /facultades/:id.
func (h *FacultadHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFacultadNotFound):
			response.NotFound(c, 40402, err.Error())
		case errors.Is(err, service.ErrFacultadConBloques):
			response.Conflict(c, 40902, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
