package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"chefanton/internal/auth"
	"chefanton/internal/config"
	"chefanton/internal/handler"
	"chefanton/internal/middleware"
	"chefanton/internal/repository/postgres"
	"chefanton/internal/service/advisor"
	"chefanton/internal/service/assets"
	"chefanton/internal/service/content"
	"chefanton/internal/service/editor"
	"chefanton/internal/service/outreach"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.Debug {
		f, err := config.SetupLogFile("logs", 10)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer f.Close()
		logOut = io.MultiWriter(os.Stdout, f)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Content store pool. A missing or unreachable store is NOT fatal:
	// reads fall back to the default document and only publish fails.
	ctx := context.Background()
	var pool *pgxpool.Pool
	if cfg.SupabaseDBURL == "" {
		logger.Warn("SUPABASE_DB_URL not set, running without a content store")
	} else {
		p, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
		if err != nil {
			logger.Error("content store unreachable at startup, serving fallback content", "error", err)
		} else {
			pool = p
			defer pool.Close()
			logger.Info("database connected")
		}
	}

	// Repository and services
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	contentRepo := postgres.NewContentRepository(repoConfig)

	viewService := content.NewViewService(contentRepo, logger)
	session := editor.NewSession(ctx, contentRepo, logger)

	persona, err := advisor.LoadPersona()
	if err != nil {
		log.Fatalf("Failed to load advisor persona: %v", err)
	}
	var generator advisor.Generator = advisor.UnavailableGenerator{}
	if cfg.AnthropicAPIKey != "" {
		g, err := advisor.NewAnthropicGenerator(cfg.AnthropicAPIKey, persona)
		if err != nil {
			log.Fatalf("Failed to create advice generator: %v", err)
		}
		generator = g
	} else {
		logger.Warn("ANTHROPIC_API_KEY not set, advice endpoint serves fallback only")
	}
	advisorService := advisor.NewService(generator, persona, logger)

	assetStore, err := assets.NewDiskStore(cfg.AssetDir, cfg.AssetBaseURL)
	if err != nil {
		log.Fatalf("Failed to create asset store: %v", err)
	}

	composer := outreach.NewComposer(cfg.WhatsAppNumber)

	// Handlers
	contentHandler := handler.NewContentHandler(viewService, logger)
	editorHandler := handler.NewEditorHandler(session, logger)
	assetHandler := handler.NewAssetHandler(assetStore, logger)
	adviceHandler := handler.NewAdviceHandler(advisorService, logger)
	inquiryHandler := handler.NewInquiryHandler(composer, logger)

	logger.Info("services initialized")

	// Public routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", contentHandler.HealthCheck)
	mux.HandleFunc("GET /api/content", contentHandler.GetContent)
	mux.HandleFunc("GET /api/content/home", contentHandler.GetHome)
	mux.HandleFunc("GET /api/content/classes", contentHandler.GetClasses)
	mux.HandleFunc("POST /api/advice", adviceHandler.GetAdvice)
	mux.HandleFunc("POST /api/inquiry", inquiryHandler.Compose)

	// Locally stored assets are served straight from disk
	if strings.HasPrefix(cfg.AssetBaseURL, "/") {
		prefix := strings.TrimRight(cfg.AssetBaseURL, "/") + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.AssetDir))))
	}

	// Editing surface routes, guarded by Supabase JWT auth
	editorMux := http.NewServeMux()
	editorMux.HandleFunc("GET /api/editor/document", editorHandler.GetDocument)
	editorMux.HandleFunc("PATCH /api/editor/fields", editorHandler.SetField)
	editorMux.HandleFunc("POST /api/editor/lists/{list}", editorHandler.AddListItem)
	editorMux.HandleFunc("PATCH /api/editor/lists/{list}/{id}", editorHandler.SetListItem)
	editorMux.HandleFunc("DELETE /api/editor/lists/{list}/{id}", editorHandler.RemoveListItem)
	editorMux.HandleFunc("POST /api/editor/footers/{group}/links", editorHandler.AddLink)
	editorMux.HandleFunc("PATCH /api/editor/footers/{group}/links/{id}", editorHandler.SetLink)
	editorMux.HandleFunc("DELETE /api/editor/footers/{group}/links/{id}", editorHandler.RemoveLink)
	editorMux.HandleFunc("POST /api/editor/publish", editorHandler.Publish)
	editorMux.HandleFunc("POST /api/editor/restore", editorHandler.Restore)
	editorMux.HandleFunc("POST /api/assets", assetHandler.Upload)

	var editorRoutes http.Handler = editorMux
	if cfg.SupabaseURL != "" {
		jwtVerifier, err := auth.NewJWTVerifier(cfg.SupabaseJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer jwtVerifier.Close()
		editorRoutes = middleware.EditorAuth(jwtVerifier)(editorMux)
	} else if cfg.Environment == "prod" {
		log.Fatalf("SUPABASE_URL is required in prod: editor routes cannot run unauthenticated")
	} else {
		logger.Warn("SUPABASE_URL not set, editor routes are UNAUTHENTICATED (dev only)")
	}
	mux.Handle("/api/editor/", editorRoutes)
	mux.Handle("POST /api/assets", editorRoutes)

	// Middleware chain: CORS → Recovery → Routes
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
