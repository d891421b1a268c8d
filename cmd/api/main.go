package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	cartapp "github.com/lotusnegra/storefront/internal/cart/app"
	cartmem "github.com/lotusnegra/storefront/internal/cart/infra/memory"
	cartrest "github.com/lotusnegra/storefront/internal/cart/rest"
	catalogapp "github.com/lotusnegra/storefront/internal/catalog/app"
	catalogmem "github.com/lotusnegra/storefront/internal/catalog/infra/memory"
	catalogrest "github.com/lotusnegra/storefront/internal/catalog/rest"
	quoteapp "github.com/lotusnegra/storefront/internal/quote/app"
	"github.com/lotusnegra/storefront/internal/quote/document"
	quoteadapter "github.com/lotusnegra/storefront/internal/quote/infra/adapter"
	quoterest "github.com/lotusnegra/storefront/internal/quote/rest"
	sessionapp "github.com/lotusnegra/storefront/internal/session/app"
	sessionrest "github.com/lotusnegra/storefront/internal/session/rest"
	"github.com/lotusnegra/storefront/pkg/config"
	"github.com/lotusnegra/storefront/pkg/logger"
	"github.com/lotusnegra/storefront/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	catalogRepo := catalogmem.NewProductRepo(catalogmem.DefaultCatalog())
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Cart
	cartRepo := cartmem.NewCartRepo()
	cartSvc := cartapp.NewService(cartRepo)

	// Sessions own the cart lifecycle
	sessions := sessionapp.NewManager(cartSvc)

	// Quote (adapters)
	cartReader := quoteadapter.NewCartServiceReader(cartSvc)
	catalogReader := quoteadapter.NewCatalogServiceReader(catalogSvc)
	quoteSvc := quoteapp.NewService(cartReader, catalogReader, 10)
	builder := document.NewBuilder(cfg.QuoteTitle, cfg.CurrencyPrefix)
	sink := document.NewPDFSink()

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/readyz", func(c *gin.Context) { c.Status(http.StatusOK) })

	v1 := router.Group("/v1")
	catalogrest.NewHandler(catalogSvc).Register(v1)
	sessionrest.NewHandler(sessions).Register(v1)

	authed := v1.Group("", sessionrest.Middleware(sessions))
	cartrest.NewHandler(cartSvc, catalogSvc).Register(authed)
	quoterest.NewHandler(quoteSvc, builder, sink, cfg.QuoteFilename).Register(authed)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}
