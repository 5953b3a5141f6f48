package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/domain/application"
	"talent-match/internal/domain/project"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/infrastructure/docintel"
	"talent-match/internal/infrastructure/llm"
	"talent-match/internal/infrastructure/oauth"
	"talent-match/internal/infrastructure/storage"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/service/ai"
	"talent-match/internal/service/platform"
	"talent-match/internal/usecase"
	ucauth "talent-match/internal/usecase/auth"
	"talent-match/internal/ws"

	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// Repositories are the Postgres-backed stores shared by the server and the CLI.
type Repositories struct {
	Users         *repository.PostgresUserRepository
	Applicants    *repository.PostgresApplicantProfileRepository
	Recruiters    *repository.PostgresRecruiterProfileRepository
	Projects      *repository.PostgresProjectRepository
	Applications  *repository.PostgresApplicationRepository
	Notifications *repository.PostgresNotificationRepository
	CVs           *repository.PostgresCVRepository
}

func NewRepositories(db database.Querier) Repositories {
	return Repositories{
		Users:         repository.NewPostgresUserRepository(db),
		Applicants:    repository.NewPostgresApplicantProfileRepository(db),
		Recruiters:    repository.NewPostgresRecruiterProfileRepository(db),
		Projects:      repository.NewPostgresProjectRepository(db),
		Applications:  repository.NewPostgresApplicationRepository(db),
		Notifications: repository.NewPostgresNotificationRepository(db),
		CVs:           repository.NewPostgresCVRepository(db),
	}
}

type Usecases struct {
	Auth          *usecase.AuthUsecase
	Profiles      *usecase.ProfileUsecase
	Projects      *usecase.ProjectUsecase
	Applications  *usecase.ApplicationUsecase
	Coaching      *usecase.CoachingUsecase
	Notifications *usecase.NotificationUsecase
	CV            *usecase.CVUsecase
	Prompts       *usecase.PromptUsecase
}

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Redis  *cache.Redis
	Hub    *ws.Hub
	JWT    *jwt.HMACService

	Repos    Repositories
	AI       *ai.Service
	Platform *platform.Provider
	Store    storage.Store
	Usecases Usecases
}

// NewContainer connects Postgres and Redis. Redis is optional; an unreachable
// instance degrades caching and revocation to no-ops.
func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  cache.NewRedis(cfg.Redis, logger.Named("redis")),
		Repos:  NewRepositories(db),
		JWT:    jwt.NewHMACService(cfg.Auth.JWTAccessSecret, cfg.Auth.JWTRefreshSecret, cfg.Auth.AccessExpiresIn, cfg.Auth.RefreshExpiresIn),
	}
	c.Platform = platform.NewProvider(c.Repos.Projects)
	return c, nil
}

// Wire builds the external clients and usecases. It is only needed by the HTTP
// server; CLI commands work off the repositories alone.
func (c *Container) Wire(ctx context.Context) error {
	cfg := c.Config
	logger := c.Logger

	llmClient, err := llm.New(ctx, cfg.AI, logger.Named("llm"))
	switch {
	case errors.Is(err, llm.ErrDisabled):
		logger.Info("ai provider not configured, using rule-based scoring")
	case err != nil:
		return fmt.Errorf("init llm: %w", err)
	default:
		logger.Info("ai provider configured", zap.String("provider", llmClient.Name()))
	}
	c.AI = ai.New(llmClient, logger.Named("ai"))

	var google oauth.Provider
	g, err := oauth.NewGoogle(cfg.Auth)
	switch {
	case errors.Is(err, oauth.ErrNotConfigured):
		logger.Info("google oauth not configured")
	case err != nil:
		return fmt.Errorf("init google oauth: %w", err)
	default:
		google = g
	}

	c.Store, err = storage.New(cfg.Storage, logger.Named("storage"))
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	c.Hub = ws.NewHub(logger.Named("ws"))
	go c.Hub.Run()

	r := c.Repos
	notifications := usecase.NewNotificationUsecase(r.Notifications, c.Hub, logger)

	txRunner := func(ctx context.Context, fn func(q database.Querier) error) error {
		return database.WithTx(ctx, c.DB, fn)
	}
	txRepos := func(q database.Querier) (application.Repository, project.Repository) {
		return repository.NewPostgresApplicationRepository(q), repository.NewPostgresProjectRepository(q)
	}

	c.Usecases = Usecases{
		Auth: usecase.NewAuthUsecase(
			ucauth.NewService(r.Users), r.Users, c.JWT, google,
			cache.NewStateStore(c.Redis), c.Redis, logger,
		),
		Profiles: usecase.NewProfileUsecase(r.Users, r.Applicants, r.Recruiters, notifications, logger),
		Projects: usecase.NewProjectUsecase(r.Users, r.Projects, r.Applications, r.Applicants, notifications, logger).
			WithCache(c.Redis),
		Applications: usecase.NewApplicationUsecase(r.Users, r.Projects, r.Applications, r.Applicants, c.AI, notifications, logger).
			WithTx(txRunner, txRepos),
		Coaching:      usecase.NewCoachingUsecase(r.Applicants, r.Projects, c.AI, c.Redis, notifications, logger),
		Notifications: notifications,
		CV:            usecase.NewCVUsecase(r.CVs, c.Store, docintel.New(cfg.DocIntel, logger.Named("docintel")), c.AI, logger),
		Prompts:       usecase.NewPromptUsecase(c.Platform, c.AI, ai.ActionPrompt, logger),
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Hub != nil {
		c.Hub.Stop()
	}
	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
