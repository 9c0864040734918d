package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/classifieds-api/internal/handlers"
	"github.com/sbilibin2017/classifieds-api/internal/jwt"
	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/middlewares"
	"github.com/sbilibin2017/classifieds-api/internal/repositories"
	"github.com/sbilibin2017/classifieds-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title classifieds-api
// @version 1.0.0
// @description Classifieds backend: members register, authenticate and publish ads under fixed categories
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		categoryCacheTTL,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtAccessExp, jwtRefreshExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		categoryCacheTTL,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtAccessExp, jwtRefreshExp,
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	categoryCacheTTL time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecret string, jwtAccessExp, jwtRefreshExp time.Duration,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "classifieds")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	var cacheTTLSecond int
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CATEGORY_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	categoryCacheTTL = time.Duration(cacheTTLSecond) * time.Second

	// Kafka config; empty broker list disables event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "ad-events")

	// JWT config
	jwtSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")

	var accessExpMinute, refreshExpDay int
	if accessExpMinute, err = strconv.Atoi(getEnv("JWT_ACCESS_EXP_MINUTE", "60")); err != nil {
		return
	}
	if refreshExpDay, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_DAY", "30")); err != nil {
		return
	}
	jwtAccessExp = time.Duration(accessExpMinute) * time.Minute
	jwtRefreshExp = time.Duration(refreshExpDay) * 24 * time.Hour

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	categoryCacheTTL time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecret string, jwtAccessExp, jwtRefreshExp time.Duration,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for ad events, optional
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warn("Kafka brokers not configured, ad events will not be published")
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecret, jwtAccessExp, jwtRefreshExp)

	// Initialize repositories
	memberReadRepo := repositories.NewMemberReadRepository(db)
	memberWriteRepo := repositories.NewMemberWriteRepository(db)
	categoryReadRepo := repositories.NewCategoryReadRepository(db)
	categoryWriteRepo := repositories.NewCategoryWriteRepository(db)
	categoryCacheRepo := repositories.NewCategoryCacheRepository(rdb, categoryCacheTTL)
	adReadRepo := repositories.NewAdReadRepository(db)
	adWriteRepo := repositories.NewAdWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(memberReadRepo, memberWriteRepo, jwtSvc)
	profileService := services.NewProfileService(memberReadRepo, memberWriteRepo)
	categoryService := services.NewCategoryService(categoryReadRepo, categoryCacheRepo, categoryWriteRepo)
	adService := services.NewAdService(adReadRepo, adWriteRepo, categoryReadRepo, kafkaWriter)

	// Prepopulate categories; the store may not be migrated yet, so failures
	// are logged and startup proceeds.
	if err := categoryService.Seed(ctx); err != nil {
		logger.Log.Errorw("category seeding failed", "error", err)
	}

	// Initialize handlers
	helloHandler := handlers.NewHelloHandler()
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	refreshHandler := handlers.NewRefreshHandler(authService)
	profileGetHandler := handlers.NewProfileGetHandler()
	profileUpdateHandler := handlers.NewProfileUpdateHandler(profileService)
	categoriesHandler := handlers.NewCategoriesHandler(categoryService)
	adsListHandler := handlers.NewAdsListHandler(adService)
	adsCreateHandler := handlers.NewAdsCreateHandler(adService)
	adsGetHandler := handlers.NewAdsGetHandler(adService)
	adsUpdateHandler := handlers.NewAdsUpdateHandler(adService)
	adsDeleteHandler := handlers.NewAdsDeleteHandler(adService)
	myAdsHandler := handlers.NewMyAdsHandler(adService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/hello", helloHandler)
	r.Post("/auth/register", registerHandler)
	r.Post("/auth/login", loginHandler)
	r.Post("/auth/refresh", refreshHandler)
	r.Get("/categories", categoriesHandler)
	r.Get("/ads", adsListHandler)
	r.Get("/ads/{id}", adsGetHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwtSvc, memberReadRepo)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/profile/me", profileGetHandler)
		r.Get("/my/ads", myAdsHandler)

		// Mutations run inside a request-scoped transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Put("/profile/me", profileUpdateHandler)
			r.Post("/ads", adsCreateHandler)
			r.Put("/ads/{id}", adsUpdateHandler)
			r.Delete("/ads/{id}", adsDeleteHandler)
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
