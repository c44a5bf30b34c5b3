package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/Amber-bisht/notesfind-sub000/internal/app/auth"
	appControllers "github.com/Amber-bisht/notesfind-sub000/internal/app/controllers"
	appMigrations "github.com/Amber-bisht/notesfind-sub000/internal/app/migrations"
	appRepos "github.com/Amber-bisht/notesfind-sub000/internal/app/repositories"
	appRoutes "github.com/Amber-bisht/notesfind-sub000/internal/app/routes"
	appServices "github.com/Amber-bisht/notesfind-sub000/internal/app/services"
	"github.com/Amber-bisht/notesfind-sub000/internal/config"
	"github.com/Amber-bisht/notesfind-sub000/internal/db"
	appMiddleware "github.com/Amber-bisht/notesfind-sub000/internal/middleware"
	pkgAuth "github.com/Amber-bisht/notesfind-sub000/internal/pkg/auth"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/captcha"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/filestorage"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/logger"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/oauth"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/validation"
	"github.com/Amber-bisht/notesfind-sub000/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	Repos *appRepos.Repositories

	JWTService   *pkgAuth.JWTService
	AuthzService *appAuth.AuthorizationService
	FileStorage  *filestorage.LocalStorage
	Signer       *filestorage.Signer

	AuthService        *appServices.AuthService
	CategoryService    *appServices.CategoryService
	SubCategoryService *appServices.SubCategoryService
	NoteService        *appServices.NoteService
	RankService        *appServices.RankService
	UserService        *appServices.UserService
	WebinarService     *appServices.WebinarService
	ContactService     *appServices.ContactService
	AdminService       *appServices.AdminService

	AuthController        *appControllers.AuthController
	CategoryController    *appControllers.CategoryController
	SubCategoryController *appControllers.SubCategoryController
	NoteController        *appControllers.NoteController
	RankController        *appControllers.RankController
	WebinarController     *appControllers.WebinarController
	ContactController     *appControllers.ContactController
	UserController        *appControllers.UserController
	UploadController      *appControllers.UploadController
	AdminController       *appControllers.AdminController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg.Admin.Emails, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and
// controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	fileStorageBaseURL := cfg.Server.BaseURL + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL, cfg.Uploads.MaxSizeMB)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.Signer = filestorage.NewSigner(cfg.Uploads.SigningSecret)

	sessionExp, err := time.ParseDuration(cfg.JWT.SessionExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid session expiration: %w", err)
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:  cfg.JWT.Secret,
		SessionExp: sessionExp,
		Issuer:     cfg.JWT.Issuer,
	})

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.NoteRepository)

	googleProvider := oauth.NewGoogleProvider(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
	captchaVerifier := captcha.NewHTTPVerifier(cfg.Captcha.Secret, cfg.Captcha.Endpoint)

	deps.AuthService = appServices.NewAuthService(googleProvider, deps.Repos.UserRepository, deps.JWTService, cfg.Admin.Emails)
	deps.CategoryService = appServices.NewCategoryService(deps.Repos.CategoryRepository)
	deps.SubCategoryService = appServices.NewSubCategoryService(deps.Repos.SubCategoryRepository, deps.Repos.CategoryRepository)
	deps.NoteService = appServices.NewNoteService(deps.Repos.NoteRepository, deps.Repos.SubCategoryRepository, deps.Repos.UserRepository, deps.AuthzService)
	deps.RankService = appServices.NewRankService(deps.Repos.CategoryRepository, deps.Repos.SubCategoryRepository, deps.Repos.NoteRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.WebinarService = appServices.NewWebinarService(deps.Repos.WebinarRepository)
	deps.ContactService = appServices.NewContactService(deps.Repos.ContactRepository, captchaVerifier)
	deps.AdminService = appServices.NewAdminService(deps.Repos.StatsRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	secureCookie := strings.HasPrefix(cfg.Server.BaseURL, "https://")
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, secureCookie)
	deps.CategoryController = appControllers.NewCategoryController(deps.CategoryService)
	deps.SubCategoryController = appControllers.NewSubCategoryController(deps.SubCategoryService)
	deps.NoteController = appControllers.NewNoteController(deps.NoteService, cfg.Export.Watermark)
	deps.RankController = appControllers.NewRankController(deps.RankService)
	deps.WebinarController = appControllers.NewWebinarController(deps.WebinarService)
	deps.ContactController = appControllers.NewContactController(deps.ContactService)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.NoteService)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage, deps.Signer)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.UserService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterCustomValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CategoryController,
		deps.SubCategoryController,
		deps.NoteController,
		deps.RankController,
		deps.WebinarController,
		deps.ContactController,
		deps.UserController,
		deps.UploadController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Serve stored media at the URLs the upload endpoint hands out. The
	// storage layer created the directory when it was constructed.
	router.Static("/uploads", deps.FileStorage.BasePath())
	lgr.Info().Str("path", deps.FileStorage.BasePath()).Msg("Serving uploads directory")

	return router
}
