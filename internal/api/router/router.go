package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/config"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/api/handler"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/api/middleware"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/redis"
)

// New builds the gin engine with every route and middleware wired.
func New(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.Server.CORS.AllowOrigins),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	writeLimit := middleware.RateLimit(rdb, logger, 60, time.Minute)

	v1 := r.Group("/api/v1")
	{
		sedes := v1.Group("/sedes")
		{
			sedes.GET("", h.Sede.List)
			sedes.POST("", writeLimit, h.Sede.Create)
			sedes.GET("/:id", h.Sede.Get)
			sedes.PATCH("/:id", writeLimit, h.Sede.Update)
			sedes.DELETE("/:id", writeLimit, h.Sede.Delete)
		}

		facultades := v1.Group("/facultades")
		{
			facultades.GET("", h.Facultad.List)
			facultades.POST("", writeLimit, h.Facultad.Create)
			facultades.GET("/:id", h.Facultad.Get)
			facultades.PATCH("/:id", writeLimit, h.Facultad.Update)
			facultades.DELETE("/:id", writeLimit, h.Facultad.Delete)
		}

		tiposBloque := v1.Group("/tipos-bloque")
		{
			tiposBloque.GET("", h.TipoBloque.List)
			tiposBloque.POST("", writeLimit, h.TipoBloque.Create)
			tiposBloque.GET("/:id", h.TipoBloque.Get)
			tiposBloque.PATCH("/:id", writeLimit, h.TipoBloque.Update)
			tiposBloque.DELETE("/:id", writeLimit, h.TipoBloque.Delete)
		}

		bloques := v1.Group("/bloques")
		{
			bloques.GET("", h.Bloque.List)
			bloques.POST("", writeLimit, h.Bloque.Create)
			bloques.GET("/:id", h.Bloque.Get)
			bloques.PATCH("/:id", writeLimit, h.Bloque.Update)
			bloques.DELETE("/:id", writeLimit, h.Bloque.Delete)
		}

		tiposAmbiente := v1.Group("/tipos-ambiente")
		{
			tiposAmbiente.GET("", h.TipoAmbiente.List)
			tiposAmbiente.POST("", writeLimit, h.TipoAmbiente.Create)
			tiposAmbiente.GET("/:id", h.TipoAmbiente.Get)
			tiposAmbiente.PATCH("/:id", writeLimit, h.TipoAmbiente.Update)
			tiposAmbiente.DELETE("/:id", writeLimit, h.TipoAmbiente.Delete)
		}

		ambientes := v1.Group("/ambientes")
		{
			ambientes.GET("", h.Ambiente.List)
			ambientes.POST("", writeLimit, h.Ambiente.Create)
			ambientes.GET("/:id", h.Ambiente.Get)
			ambientes.PATCH("/:id", writeLimit, h.Ambiente.Update)
			ambientes.DELETE("/:id", writeLimit, h.Ambiente.Delete)

			ambientes.GET("/:id/bienes", h.Bien.ListByAmbiente)
			ambientes.PUT("/:id/bienes", writeLimit, h.Bien.Asignar)

			ambientes.GET("/:id/horarios", h.Horario.Get)
			ambientes.PUT("/:id/horarios", writeLimit, h.Horario.Replace)
			ambientes.GET("/:id/horarios/ical", h.Horario.ExportICal)
		}

		bienes := v1.Group("/bienes")
		{
			bienes.GET("", h.Bien.List)
			bienes.POST("", writeLimit, h.Bien.Create)
		}

		v1.GET("/export/inventario", h.Export.Inventario)
	}

	return r
}
