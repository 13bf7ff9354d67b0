package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// SedeHandler serves the campus endpoints.
type SedeHandler struct {
	svc    service.SedeService
	logger *zap.Logger
}

// NewSedeHandler builds a SedeHandler.
func NewSedeHandler(svc service.SedeService, logger *zap.Logger) *SedeHandler {
	return &SedeHandler{svc: svc, logger: logger}
}

// Create handles POST /sedes.
func (h *SedeHandler) Create(c *gin.Context) {
	var req dto.CreateSedeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	sede, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("crear sede fallo", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, sede)
}

// Get handles GET /sedes/:id.
func (h *SedeHandler) Get(c *gin.Context) {
	sede, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSedeNotFound) {
			response.NotFound(c, 40401, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, sede)
}

// List handles GET /sedes.
func (h *SedeHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	sedes, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, sedes, total, req.GetPage(), req.GetPageSize())
}

// Update handles PATCH /sedes/:id.
func (h *SedeHandler) Update(c *gin.Context) {
	var req dto.UpdateSedeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "parametros invalidos: "+err.Error())
		return
	}

	sede, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrSedeNotFound) {
			response.NotFound(c, 40401, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, sede)
}

// Delete handles DELETE /sedes/:id.
func (h *SedeHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSedeNotFound):
			response.NotFound(c, 40401, err.Error())
		case errors.Is(err, service.ErrSedeConBloques):
			response.Conflict(c, 40901, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
