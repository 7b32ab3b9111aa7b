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
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "github.com/sbilibin2017/portfolio-hub/docs"
	"github.com/sbilibin2017/portfolio-hub/internal/handlers"
	"github.com/sbilibin2017/portfolio-hub/internal/logger"
	"github.com/sbilibin2017/portfolio-hub/internal/middlewares"
	"github.com/sbilibin2017/portfolio-hub/internal/repositories"
	"github.com/sbilibin2017/portfolio-hub/internal/services"
	"github.com/sbilibin2017/portfolio-hub/internal/sessions"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title portfolio-hub API
// @version 1.0.0
// @description Multi-user portfolio service: signup, login, browse and edit portfolios
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		storageDriver, filePath, mongoURI, mongoDB,
		sessionExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		storageDriver, filePath, mongoURI, mongoDB,
		sessionExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, storage, logging, and session configuration. The mongo URI
// has no default: selecting the mongo driver without one is a startup
// error, not a runtime one.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	storageDriver, filePath, mongoURI, mongoDB string,
	sessionExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config
	storageDriver = getEnv("STORAGE_DRIVER", "file")
	filePath = getEnv("FILE_DB_PATH", "users_db.json")
	mongoURI = getEnv("MONGO_URI", "")
	mongoDB = getEnv("MONGO_DB", "portfolio_hub")

	switch storageDriver {
	case "file":
	case "mongo":
		if mongoURI == "" {
			err = errors.New("MONGO_URI is required when STORAGE_DRIVER=mongo")
			return
		}
	default:
		err = fmt.Errorf("unknown STORAGE_DRIVER %q (expected file or mongo)", storageDriver)
		return
	}

	// Session config
	if sessionExpSecond, err = strconv.Atoi(getEnv("SESSION_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, the selected storage backend, the session
// manager, and the HTTP server. It sets up routes, applies middleware, and
// handles graceful shutdown. A storage backend that cannot be opened or
// reached stops the application before it accepts any request.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	storageDriver, filePath, mongoURI, mongoDB string,
	sessionExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize the user record store
	var (
		finder   services.UserFinder
		inserter services.UserInserter
		searcher services.UserSearcher
		updater  services.UserUpdater
	)

	switch storageDriver {
	case "file":
		logger.Log.Infof("Using file storage at %s", filePath)
		repo, err := repositories.NewFileUserRepository(filePath)
		if err != nil {
			return fmt.Errorf("failed to open user database file: %w", err)
		}
		finder, inserter, searcher, updater = repo, repo, repo, repo

	case "mongo":
		logger.Log.Infof("Connecting to MongoDB database %s", mongoDB)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if err != nil {
			return fmt.Errorf("mongo connection error: %w", err)
		}
		defer client.Disconnect(ctx)
		if err := client.Ping(ctx, nil); err != nil {
			return fmt.Errorf("mongo ping failed: %w", err)
		}

		repo, err := repositories.NewMongoUserRepository(ctx, client.Database(mongoDB).Collection("users"))
		if err != nil {
			return fmt.Errorf("failed to prepare users collection: %w", err)
		}
		finder, inserter, searcher, updater = repo, repo, repo, repo

	default:
		return fmt.Errorf("unknown storage driver %q", storageDriver)
	}

	// Initialize session manager
	sessionManager, err := sessions.New(time.Duration(sessionExpSecond) * time.Second)
	if err != nil {
		return fmt.Errorf("failed to initialize session manager: %w", err)
	}

	// Initialize services
	authService := services.NewAuthService(finder, inserter, sessionManager)
	portfolioService := services.NewPortfolioService(finder, searcher, updater)

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService)
	searchHandler := handlers.NewSearchHandler(portfolioService)
	getPortfolioHandler := handlers.NewGetPortfolioHandler(portfolioService)
	updatePortfolioHandler := handlers.NewUpdatePortfolioHandler(portfolioService)
	setPictureHandler := handlers.NewSetPictureHandler(portfolioService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/signup", signupHandler)
		r.Post("/login", loginHandler)
		r.Get("/portfolios", searchHandler)
		r.Get("/portfolios/{username}", getPortfolioHandler)

		// Protected routes with session middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(sessionManager))
			r.Post("/logout", logoutHandler)
			r.Put("/portfolios/{username}", updatePortfolioHandler)
			r.Post("/portfolios/{username}/picture", setPictureHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
