package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	cartapp "github.com/kvellan/gamestore/internal/cart/app"
	cartadapter "github.com/kvellan/gamestore/internal/cart/infra/adapter"
	cartpg "github.com/kvellan/gamestore/internal/cart/infra/postgres"
	cartredis "github.com/kvellan/gamestore/internal/cart/infra/redis"
	cartrest "github.com/kvellan/gamestore/internal/cart/rest"

	catalogapp "github.com/kvellan/gamestore/internal/catalog/app"
	catalogpg "github.com/kvellan/gamestore/internal/catalog/infra/postgres"
	catalogrest "github.com/kvellan/gamestore/internal/catalog/rest"

	checkoutapp "github.com/kvellan/gamestore/internal/checkout/app"
	checkoutadapter "github.com/kvellan/gamestore/internal/checkout/infra/adapter"
	checkoutrest "github.com/kvellan/gamestore/internal/checkout/rest"

	orderapp "github.com/kvellan/gamestore/internal/order/app"
	orderpg "github.com/kvellan/gamestore/internal/order/infra/postgres"
	orderrest "github.com/kvellan/gamestore/internal/order/rest"

	"github.com/kvellan/gamestore/internal/web"
	"github.com/kvellan/gamestore/pkg/config"
	"github.com/kvellan/gamestore/pkg/logger"
	"github.com/kvellan/gamestore/pkg/postgres"
	"github.com/kvellan/gamestore/pkg/redis"
	"github.com/kvellan/gamestore/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "gamestore", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	db := mustDB(cfg, log)
	defer db.Close()

	redisClient := redis.New(cfg.Redis)
	defer redisClient.Close()

	if err := redis.Ping(ctx, redisClient); err != nil {
		log.Error("redis unreachable", slog.Any("err", err))
		os.Exit(1)
	}

	// Catalog
	catalogSvc := catalogapp.NewService(catalogpg.NewGameRepo(db))

	// Cart
	sessionStore := cartredis.NewSessionStore(redisClient, cfg.SessionTTL)
	ownerStore := cartpg.NewOwnerStore(db)
	cartSvc := cartapp.NewService(sessionStore, ownerStore, cartadapter.NewCatalogServiceReader(catalogSvc), log)

	// Orders
	orderSvc := orderapp.NewService(orderpg.NewOrderRepo(db))

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		checkoutadapter.NewOrderServiceWriter(orderSvc),
		cfg.CheckoutWorkers,
	)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), web.RequestLogger(log))

	engine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/readyz", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		if err := redis.Ping(c.Request.Context(), redisClient); err != nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusOK)
	})

	api := engine.Group("/api", web.IdentityMiddleware(cfg.SessionCookie, cfg.SessionTTL))
	catalogrest.NewHandler(catalogSvc).Register(api)
	cartrest.NewHandler(cartSvc).Register(api)
	checkoutrest.NewHandler(checkoutSvc).Register(api)
	orderrest.NewHandler(orderSvc).Register(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

func mustDB(cfg config.Config, log *slog.Logger) *sql.DB {
	db, err := postgres.Open(cfg.Postgres)
	if err != nil {
		log.Error("db open failed", slog.Any("err", err))
		os.Exit(1)
	}
	return db
}
