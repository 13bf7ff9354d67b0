package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/config"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/api/handler"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/api/router"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/repository"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/database"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/logger"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "ruta del archivo de configuracion")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("configuracion: %v", err)
	}

	zlog, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewDB(&cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zlog.Fatal("no se pudo obtener la conexion sql", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zlog); err != nil {
		zlog.Fatal("no se pudieron aplicar las migraciones", zap.Error(err))
	}

	// Redis is optional: without it the API runs uncached and unthrottled.
	rdb, err := redis.NewClient(&cfg.Redis, zlog)
	if err != nil {
		zlog.Warn("redis no disponible, continuando sin cache", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	repo := repository.NewRepository(db)
	svc := service.NewService(repo, rdb, zlog)
	h := handler.NewHandler(svc, zlog)
	engine := router.New(cfg, h, rdb, zlog)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("servidor iniciado", zap.Int("puerto", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("el servidor se detuvo", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("apagando el servidor")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("apagado forzado", zap.Error(err))
	}
	zlog.Info("servidor detenido")
}
