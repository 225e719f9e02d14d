// cmd/amiuddokta-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/middleware"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/app"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/addresses"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/auth"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/connector"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/imaging"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/persistence"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/schema"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// maxUploadFiles bounds a multipart upload request at this many files of the
// configured maximum size.
const maxUploadFiles = 10

// appDependencies holds all initialized application components
type appDependencies struct {
	db            *gorm.DB
	services      *v1.Services
	closeDenylist func() error
}

func (d *appDependencies) close(log logger.Logger) {
	if err := d.closeDenylist(); err != nil {
		log.Warn("failed to close token denylist", "error", err)
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("failed to close database", "error", err)
	}
}

type repositories struct {
	users          users.Repository
	addresses      addresses.Repository
	publicServices crud.Repository[publicservices.PublicService]
	applications   applications.Repository
	paymentMethods payments.MethodRepository
	recharges      payments.RechargeRepository
	media          media.Repository
	categories     content.CategoryRepository
	posts          content.PostRepository
	careers        content.CareerRepository
	centers        content.CenterRepository
	teamMembers    content.TeamMemberRepository
	contacts       content.ContactRepository
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	denylist, closeDenylist, err := auth.NewDenylist(context.Background(), &cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token denylist: %w", err)
	}
	if cfg.Redis.Address != "" {
		log.Info("Using Redis token denylist", "address", cfg.Redis.Address)
	}

	mediaConnector, err := connector.NewMediaConnector(&cfg.Uploads, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media connector: %w", err)
	}

	services, err := initializeApplicationServices(cfg, repos, denylist, mediaConnector, log)
	if err != nil {
		_ = closeDenylist()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{db: db, services: services, closeDenylist: closeDenylist}, nil
}

// initializeRepositories creates one GORM repository per table
func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	var r repositories
	var err error

	if r.users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, err
	}
	if r.addresses, err = persistence.NewGormAddressRepository(db, log); err != nil {
		return nil, err
	}
	if r.publicServices, err = persistence.NewGormPublicServiceRepository(db, log); err != nil {
		return nil, err
	}
	if r.applications, err = persistence.NewGormApplicationRepository(db, log); err != nil {
		return nil, err
	}
	if r.paymentMethods, err = persistence.NewGormPaymentMethodRepository(db, log); err != nil {
		return nil, err
	}
	if r.recharges, err = persistence.NewGormRechargeRepository(db, log); err != nil {
		return nil, err
	}
	if r.media, err = persistence.NewGormMediaRepository(db, log); err != nil {
		return nil, err
	}
	if r.categories, err = persistence.NewGormCategoryRepository(db, log); err != nil {
		return nil, err
	}
	if r.posts, err = persistence.NewGormPostRepository(db, log); err != nil {
		return nil, err
	}
	if r.careers, err = persistence.NewGormCareerRepository(db, log); err != nil {
		return nil, err
	}
	if r.centers, err = persistence.NewGormCenterRepository(db, log); err != nil {
		return nil, err
	}
	if r.teamMembers, err = persistence.NewGormTeamMemberRepository(db, log); err != nil {
		return nil, err
	}
	if r.contacts, err = persistence.NewGormContactRepository(db, log); err != nil {
		return nil, err
	}
	return &r, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *repositories,
	denylist users.TokenDenylist,
	mediaConnector media.Connector,
	log logger.Logger,
) (*v1.Services, error) {
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	issuer := auth.NewJWTIssuer(&cfg.Auth)
	schemas := schema.NewJSONSchemaValidator()
	processor := imaging.NewWebPProcessor(&cfg.Uploads)

	s := &v1.Services{}
	var err error

	if s.Users, err = app.NewUserService(repos.users, hasher, log); err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	if s.Auth, err = app.NewAuthService(repos.users, hasher, issuer, denylist, log); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if s.Addresses, err = app.NewAddressService(repos.addresses, log); err != nil {
		return nil, fmt.Errorf("failed to create address service: %w", err)
	}
	if s.PublicServices, err = app.NewPublicServiceService(repos.publicServices, schemas, log); err != nil {
		return nil, fmt.Errorf("failed to create public service service: %w", err)
	}
	if s.Applications, err = app.NewApplicationService(repos.applications, repos.publicServices, schemas, log); err != nil {
		return nil, fmt.Errorf("failed to create application service: %w", err)
	}
	if s.PaymentMethods, err = app.NewPaymentMethodService(repos.paymentMethods, log); err != nil {
		return nil, fmt.Errorf("failed to create payment method service: %w", err)
	}
	if s.Recharges, err = app.NewRechargeService(repos.recharges, repos.paymentMethods, log); err != nil {
		return nil, fmt.Errorf("failed to create recharge service: %w", err)
	}
	if s.Media, err = app.NewMediaService(repos.media, mediaConnector, processor, log); err != nil {
		return nil, fmt.Errorf("failed to create media service: %w", err)
	}
	if s.Categories, err = app.NewBlogCategoryService(repos.categories, repos.posts, log); err != nil {
		return nil, fmt.Errorf("failed to create blog category service: %w", err)
	}
	if s.Posts, err = app.NewBlogPostService(repos.posts, repos.categories, log); err != nil {
		return nil, fmt.Errorf("failed to create blog post service: %w", err)
	}
	if s.Careers, err = app.NewCareerService(repos.careers, log); err != nil {
		return nil, fmt.Errorf("failed to create career service: %w", err)
	}
	if s.Centers, err = app.NewCenterService(repos.centers, log); err != nil {
		return nil, fmt.Errorf("failed to create center service: %w", err)
	}
	if s.TeamMembers, err = app.NewTeamMemberService(repos.teamMembers, log); err != nil {
		return nil, fmt.Errorf("failed to create team member service: %w", err)
	}
	if s.Contacts, err = app.NewContactService(repos.contacts, log); err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}
	if s.Dashboard, err = app.NewDashboardService(repos.users, repos.applications, repos.recharges); err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return s, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log))
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return fmt.Errorf("invalid trusted proxies: %w", err)
	}

	// Configure CORS
	corsConfig := cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.AllowOrigins) == 1 && cfg.Server.AllowOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	limiter.StartCleanup(5*time.Minute, stopCleanup)

	// Setup API routes
	v1.SetupRoutes(r, deps.services, v1.Options{
		RateLimiter:      limiter,
		Metrics:          middleware.NewMetrics(),
		Health:           func(ctx context.Context) error { return persistence.Ping(ctx, deps.db) },
		UploadDir:        cfg.Uploads.Dir,
		UploadPublicPath: cfg.Uploads.PublicPath,
		MaxUploadBytes:   maxUploadFiles * (int64(cfg.Uploads.MaxSizeMB) << 20),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	timeout := cfg.Server.ShutdownTimeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
