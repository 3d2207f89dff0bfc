package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Infinite-Leo/CollectiQ/config"
	"github.com/Infinite-Leo/CollectiQ/middlewares"
	"github.com/Infinite-Leo/CollectiQ/routes"
	"github.com/Infinite-Leo/CollectiQ/store"
)

func main() {
	cfg := config.Load()

	log, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	var s store.Store
	switch cfg.StoreKind {
	case "postgres":
		db, err := config.ConnectDB(cfg)
		if err != nil {
			log.Fatal("database connection failed", zap.Error(err))
		}
		if err := config.SeedDevData(db, cfg, log); err != nil {
			log.Warn("dev seed failed", zap.Error(err))
		}
		s = store.NewPostgres(db)
		log.Info("using postgres store")
	default:
		s = store.NewMemory()
		log.Info("using in-memory fixture store", zap.String("hint", "set DATABASE_URL for postgres"))
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.ClientURL},
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	r.Use(middlewares.RateLimit(cfg.RateLimitMax, time.Duration(cfg.RateLimitWindow)*time.Minute))
	r.Use(middlewares.ErrorHandler(log, cfg.Production()))

	routes.Setup(r, s, cfg)

	log.Info("CollectiQ API running", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
