// @title           Portfolio Backend API
// @version         1.0.0
// @description     Backend API for a developer portfolio: published projects, categories, the experience timeline, the admin dashboard and the interactive GitHub terminal.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"portfolio-backend/docs"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/github"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/minio"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/store"
	"portfolio-backend/internal/supabase"
	"portfolio-backend/internal/terminal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("development", "info")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Supabase client")
	}

	dataStore, closeStore := openStore(ctx, cfg, supabaseClient, log)
	defer closeStore()

	objects, err := openObjectStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to initialize object storage")
	}
	storageService := services.NewStorageService(objects, cfg.UploadMaxWidth, log)

	library := terminal.NewLibrary(terminal.DefaultQnA)
	if cfg.QnAFile != "" {
		items, err := terminal.LoadQnAFile(cfg.QnAFile)
		if err != nil {
			log.Warn().Err(err).Str("file", cfg.QnAFile).Msg("using built-in Q&A")
		} else {
			library.Replace(items)
		}
		go func() {
			if err := library.Watch(ctx, cfg.QnAFile, log); err != nil {
				log.Warn().Err(err).Msg("Q&A file watcher stopped")
			}
		}()
	}

	githubClient := github.NewClient(cfg.GitHubAPIURL, cfg.GitHubContributionURL, cfg.GitHubToken)
	newTerminal := func(onEvent func(terminal.Event)) *terminal.Terminal {
		return terminal.New(terminal.Options{
			Username: cfg.GitHubUsername,
			GitHub:   githubClient,
			Library:  library,
			OnEvent:  onEvent,
			Logger:   log.With().Str("component", "terminal").Logger(),
		})
	}

	projectsHandler := handlers.NewProjectsHandler(dataStore)
	categoriesHandler := handlers.NewCategoriesHandler(dataStore)
	experiencesHandler := handlers.NewExperiencesHandler(dataStore)
	dashboardHandler := handlers.NewDashboardHandler(dataStore)
	uploadHandler := handlers.NewUploadHandler(storageService)
	authHandler := handlers.NewAuthHandler(supabase.NewAuthClient(supabaseClient), cfg.SessionCookieName, cfg.IsProduction())
	terminalHandler := handlers.NewTerminalHandler(newTerminal, cfg.AllowedOrigins)

	router := gin.New()
	router.Use(logger.RequestLogger(log))
	router.Use(logger.Recovery(log))
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.SessionGate(cfg))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api")

	api.GET("/projects", projectsHandler.ListProjects)
	api.POST("/projects", projectsHandler.CreateProject)
	api.DELETE("/projects", projectsHandler.DeleteProjectByQuery)
	api.GET("/projects/:id", projectsHandler.GetProject)
	api.PUT("/projects/:id", projectsHandler.UpdateProject)
	api.DELETE("/projects/:id", projectsHandler.DeleteProject)
	api.POST("/projects/:id/toggle-publish", projectsHandler.TogglePublish)

	api.GET("/categories", categoriesHandler.ListCategories)

	api.GET("/experiences", experiencesHandler.ListExperiences)
	api.POST("/experiences", experiencesHandler.CreateExperience)
	api.PUT("/experiences/:id", experiencesHandler.UpdateExperience)
	api.DELETE("/experiences/:id", experiencesHandler.DeleteExperience)

	api.POST("/upload", uploadHandler.Upload)
	api.GET("/dashboard/stats", dashboardHandler.Stats)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/reset-password", authHandler.ResetPassword)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.Me)

	api.GET("/terminal/commands", terminalHandler.Commands)
	api.GET("/terminal/ws", terminalHandler.Connect)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStore prefers a direct Postgres connection, running migrations first,
// and falls back to PostgREST when DATABASE_URL is unset or unusable.
func openStore(ctx context.Context, cfg *config.Config, client *supabase.Client, log zerolog.Logger) (store.Store, func()) {
	rest := supabase.NewRestStore(client)
	if cfg.DatabaseURL == "" {
		log.Info().Msg("DATABASE_URL not set, using PostgREST and skipping migrations")
		return rest, func() {}
	}

	migrator, err := database.NewMigrator(cfg.DatabaseURL, log)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize migrator")
	} else {
		if err := migrator.Run(ctx); err != nil {
			log.Warn().Err(err).Msg("migration failed")
		}
		migrator.Close()
	}

	db, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to database, using PostgREST")
		return rest, func() {}
	}
	return db, func() { db.Close() }
}

func openObjectStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (services.ObjectStore, error) {
	if cfg.StorageDriver == "minio" {
		return minio.NewClient(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL, log)
	}
	return supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseStorageBucket)
}
