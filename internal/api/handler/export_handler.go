package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// ExportHandler serves the inventory download.
type ExportHandler struct {
	svc    service.ExportService
	logger *zap.Logger
}

// NewExportHandler builds an ExportHandler.
func NewExportHandler(svc service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, logger: logger}
}

// Inventario handles GET /export/inventario.
func (h *ExportHandler) Inventario(c *gin.Context) {
	buf, nombre, err := h.svc.Inventario(c.Request.Context())
	if err != nil {
		h.logger.Error("exportar inventario fallo", zap.Error(err))
		response.InternalError(c)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
