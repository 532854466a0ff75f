package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/matchmerit/config"
	"github.com/Dosada05/matchmerit/db"
	"github.com/Dosada05/matchmerit/handlers"
	"github.com/Dosada05/matchmerit/repositories"
	api "github.com/Dosada05/matchmerit/routes"
	"github.com/Dosada05/matchmerit/services"
	"github.com/Dosada05/matchmerit/storage"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type repositorySet struct {
	users   repositories.UserRepository
	groups  repositories.GroupRepository
	matches repositories.MatchRepository
}

// @title MatchMerit API
// @version 1.0
// @description Group sports participation with merit-based ranking.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("storage", cfg.StorageDriver),
		slog.Bool("archive", cfg.Archive != nil),
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("application stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	var archive storage.FileUploader
	if cfg.Archive != nil {
		archive, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.Archive.AccountID,
			AccessKeyID:     cfg.Archive.AccessKeyID,
			SecretAccessKey: cfg.Archive.SecretAccessKey,
			BucketName:      cfg.Archive.BucketName,
			PublicBaseURL:   cfg.Archive.PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Info("Cloudflare R2 archive initialized", slog.String("bucket", cfg.Archive.BucketName))
	}

	// Инициализация сервисов
	authService := services.NewAuthService(repos.users)
	userService := services.NewUserService(repos.users)
	groupService := services.NewGroupService(repos.groups, repos.users, logger)
	matchService := services.NewMatchService(repos.matches, repos.groups, archive, logger)

	// Инициализация обработчиков HTTP
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{JWTSecret: cfg.JWTSecretKey, AllowedOrigins: cfg.CORSAllowedOrigins},
		handlers.NewAuthHandler(authService, cfg.JWTSecretKey, cfg.JWTTTL),
		handlers.NewUserHandler(userService),
		handlers.NewGroupHandler(groupService, matchService),
		handlers.NewMatchHandler(matchService),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
		return nil
	})

	return g.Wait()
}

// openRepositories selects the storage backend. The returned func releases it.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositorySet, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		logger.Warn("using in-memory storage, data will not survive a restart")
		return repositorySet{
			users:   repositories.NewMemoryUserRepository(),
			groups:  repositories.NewMemoryGroupRepository(),
			matches: repositories.NewMemoryMatchRepository(),
		}, func() {}, nil
	}

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
	if err != nil {
		return repositorySet{}, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("database connection established")

	closeDB := func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, dbConn, logger); err != nil {
			closeDB()
			return repositorySet{}, nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	return postgresRepositories(dbConn), closeDB, nil
}

func postgresRepositories(dbConn *sql.DB) repositorySet {
	return repositorySet{
		users:   repositories.NewPostgresUserRepository(dbConn),
		groups:  repositories.NewPostgresGroupRepository(dbConn),
		matches: repositories.NewPostgresMatchRepository(dbConn),
	}
}
