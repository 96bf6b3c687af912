package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pdfqa/internal/cache"
	"pdfqa/internal/config"
	"pdfqa/internal/extract"
	handlers "pdfqa/internal/http/handler"
	"pdfqa/internal/http/middleware"
	"pdfqa/internal/llm/gemini"
	"pdfqa/internal/otel"
	"pdfqa/internal/repository/fs"
	"pdfqa/internal/repository/redisrepo"
	"pdfqa/internal/service"
	"pdfqa/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing is best-effort: init failures degrade to a noop provider inside Init.
	shutdownTracing, err := otel.Init(ctx, time.Local)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	// The answer store being down is not fatal: the filesystem tier serves
	// documents and the answer cache is skipped until the store returns.
	rdb, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		log.Printf("warn: answer store unreachable, running on the filesystem tier: %v", err)
	}

	llmClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("failed to initialize answer provider: %v", err)
	}
	defer llmClient.Close()

	// Raw PDF archival is optional; it stays off without an endpoint.
	var archive storage.Archive
	if cfg.Archive.Endpoint != "" {
		archive, err = storage.NewMinIO(cfg.Archive)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}
	svcMetrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Fatalf("failed to register service metrics: %v", err)
	}

	// One repository serves as both the primary document tier and the
	// answer cache; both live in the same store.
	store := redisrepo.NewDocumentRedis(rdb)

	svc := service.NewPDFService(service.Deps{
		Primary:   store,
		Fallback:  fs.NewDocumentFS(cfg.UploadDir),
		Cache:     store,
		Extractor: extract.PDFExtractor{},
		LLM:       llmClient,
		Archive:   archive,
		Metrics:   svcMetrics,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Above the upload cap so the handler produces the FILE_TOO_LARGE
		// envelope instead of Fiber's bare 413.
		BodyLimit: handlers.MaxUploadBytes + 1<<20,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())

	handlers.RegisterRoutes(app, rdb, svc)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Serve until interrupted, then drain in-flight requests.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("warn: shutdown: %v", err)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("warn: tracing shutdown: %v", err)
		}
		if rdb != nil {
			_ = rdb.Close()
		}
	}()

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
