package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dojodoskages/storefront/internal/config"
	"github.com/dojodoskages/storefront/internal/events"
	"github.com/dojodoskages/storefront/internal/handlers"
	"github.com/dojodoskages/storefront/internal/handlers/cart"
	"github.com/dojodoskages/storefront/internal/logging"
	"github.com/dojodoskages/storefront/internal/repo"
	"github.com/dojodoskages/storefront/internal/search"
	"github.com/dojodoskages/storefront/internal/session"
	httpserver "github.com/dojodoskages/storefront/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LogLevel)
	slog.SetDefault(logger)

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	bus := events.NewBus()

	var producer *events.Producer
	if configuration.KafkaAddress != "" {
		producer = events.NewProducer([]string{configuration.KafkaAddress})
		producer.Attach(bus, logger)
	}

	catalog, err := repo.NewCatalog(db, bus)
	if err != nil {
		log.Fatalf("catalog init error: %v", err)
	}
	carts := repo.NewCart(db, bus)

	var searchHandler *handlers.SearchHandler
	if configuration.ESURL != "" {
		esClient, err := search.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		indexer := &search.Indexer{ES: esClient, Index: search.Index}
		indexer.Attach(bus, logger)
		searchHandler = &handlers.SearchHandler{ES: esClient, Index: search.Index}
	}

	if configuration.SeedDemo {
		if err := catalog.SeedDemo(context.Background()); err != nil {
			log.Fatalf("seed error: %v", err)
		}
	}

	sessions := session.NewStore(configuration.AdminPasswordHash, []byte(configuration.JWTSecret))

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		Sessions:       sessions,
		AuthHandler:    &handlers.AuthHandler{Sessions: sessions},
		ProductHandler: &handlers.ProductHandler{Catalog: catalog},
		CartHandler:    &cart.CartHandler{Carts: carts, Catalog: catalog},
		CheckoutHandler: &cart.CheckoutHandler{
			Carts:          carts,
			Bus:            bus,
			StoreName:      configuration.StoreName,
			WhatsAppNumber: configuration.WhatsAppNumber,
		},
		SearchHandler: searchHandler,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.Port),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
