package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"

	"portfolio-backend/internal/domains/contact/handler"
	contactService "portfolio-backend/internal/domains/contact/service"
	"portfolio-backend/internal/domains/experience"
	experienceHandler "portfolio-backend/internal/domains/experience/handler"
	experienceRepo "portfolio-backend/internal/domains/experience/repository"
	experienceService "portfolio-backend/internal/domains/experience/service"
	healthHandler "portfolio-backend/internal/domains/health/handler"
	"portfolio-backend/internal/domains/introduction"
	introductionHandler "portfolio-backend/internal/domains/introduction/handler"
	introductionRepo "portfolio-backend/internal/domains/introduction/repository"
	introductionService "portfolio-backend/internal/domains/introduction/service"
	"portfolio-backend/internal/domains/project"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/domains/skill"
	skillHandler "portfolio-backend/internal/domains/skill/handler"
	skillRepo "portfolio-backend/internal/domains/skill/repository"
	skillService "portfolio-backend/internal/domains/skill/service"
	"portfolio-backend/internal/domains/study"
	studyHandler "portfolio-backend/internal/domains/study/handler"
	studyRepo "portfolio-backend/internal/domains/study/repository"
	studyService "portfolio-backend/internal/domains/study/service"
	"portfolio-backend/internal/domains/user"
	userHandler "portfolio-backend/internal/domains/user/handler"
	userRepo "portfolio-backend/internal/domains/user/repository"
	userService "portfolio-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is
// a singleton living for the process lifetime.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Email      email.EmailService
	JWTManager *jwt.Manager

	IntroductionRepo introduction.Repository
	ExperienceRepo   experience.Repository
	StudyRepo        study.Repository
	SkillRepo        skill.Repository
	ProjectRepo      project.Repository
	UserRepo         user.Repository

	IntroductionService introductionService.Service
	ExperienceService   experienceService.Service
	StudyService        studyService.Service
	SkillService        skillService.Service
	ProjectService      projectService.Service
	UserService         userService.Service
	ContactService      contactService.Service

	IntroductionHandler *introductionHandler.IntroductionHandler
	ExperienceHandler   *experienceHandler.ExperienceHandler
	StudyHandler        *studyHandler.StudyHandler
	SkillHandler        *skillHandler.SkillHandler
	ProjectHandler      *projectHandler.ProjectHandler
	UserHandler         *userHandler.UserHandler
	ContactHandler      *handler.ContactHandler
	HealthHandler       *healthHandler.HealthHandler
}

// NewContainer wires the whole graph in dependency order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("config loaded (environment: %s)", cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// Redis is an accelerator, not a dependency. A failed connection
	// leaves every read going straight to Postgres.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Printf("redis connection failed (non-critical): %v", err)
	}
	c.Cache = redisCache

	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = store

	c.Email = email.NewSMTPEmailService(cfg.SMTP, cfg.Contact)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.IntroductionRepo = introductionRepo.NewPostgresRepository(pool)
	c.ExperienceRepo = experienceRepo.NewPostgresRepository(pool)
	c.StudyRepo = studyRepo.NewPostgresRepository(pool)
	c.SkillRepo = skillRepo.NewPostgresRepository(pool)
	c.ProjectRepo = projectRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.IntroductionService = introductionService.NewService(c.IntroductionRepo, c.Cache)
	c.ExperienceService = experienceService.NewService(c.ExperienceRepo, c.Cache)
	c.StudyService = studyService.NewService(c.StudyRepo, c.Cache)
	c.SkillService = skillService.NewService(c.SkillRepo, c.Cache)
	c.ProjectService = projectService.NewService(c.ProjectRepo, c.Cache, c.Storage)
	c.UserService = userService.NewService(c.UserRepo, c.IntroductionRepo, c.JWTManager, c.Storage)
	c.ContactService = contactService.NewService(c.Email)
}

func (c *Container) initHandlers() {
	c.IntroductionHandler = introductionHandler.NewIntroductionHandler(c.IntroductionService)
	c.ExperienceHandler = experienceHandler.NewExperienceHandler(c.ExperienceService)
	c.StudyHandler = studyHandler.NewStudyHandler(c.StudyService)
	c.SkillHandler = skillHandler.NewSkillHandler(c.SkillService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ContactHandler = handler.NewContactHandler(c.ContactService)
	c.HealthHandler = healthHandler.NewHealthHandler(c.DB, c.Cache)
}

// Cleanup releases connections during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("failed to close redis: %v", err)
			}
		}
	}
}
