package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpapp "fosfenos/internal/app/http"
	"fosfenos/internal/config"
	"fosfenos/internal/repository"
	"fosfenos/internal/services/auth"
	brandsvc "fosfenos/internal/services/brand_service"
	catalogsvc "fosfenos/internal/services/catalog_service"
	contentsvc "fosfenos/internal/services/content_service"
	publicsvc "fosfenos/internal/services/public_service"
	"fosfenos/internal/services/reader"
	configsvc "fosfenos/internal/services/site_config_service"
	statssvc "fosfenos/internal/services/stats_service"
	teamsvc "fosfenos/internal/services/team_service"
	uploadsvc "fosfenos/internal/services/upload_service"
	"fosfenos/internal/storage/cache"
	filestorage "fosfenos/internal/storage/filestorage"
	"fosfenos/internal/storage/postgresql"
	redisstore "fosfenos/internal/storage/redis"
	httprouters "fosfenos/internal/transport/http"
)

const cacheNamespace = "fosfenos"

type App struct {
	HTTPServer *httpapp.Server

	log   *slog.Logger
	repo  *repository.Repository
	redis *redisstore.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	pool, err := postgresql.New(ctx, cfg.DSN, postgresql.PoolConfig{
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := &App{log: log, repo: repository.NewRepository(pool)}

	readCache, redisClient, err := NewReadCache(ctx, log, cfg)
	if err != nil {
		a.repo.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.redis = redisClient

	files, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.MaxSize)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rd := reader.New(log, readCache)

	authService := auth.New(log, a.repo.User, cfg.JWTSecret, cfg.TokenTTL)
	teamService := teamsvc.NewTeamService(log, a.repo.Team, rd)
	brandService := brandsvc.NewBrandService(log, a.repo.Brand, rd)
	catalogService := catalogsvc.NewCatalogService(log, a.repo.Service, rd)
	contentService := contentsvc.NewContentService(log, a.repo.Content, rd)
	configService := configsvc.NewSiteConfigService(log, a.repo.SiteConfig, rd)

	routers := httprouters.NewRouter(log, cfg.TokenTTL, httprouters.Services{
		Auth:       authService,
		Team:       teamService,
		Brand:      brandService,
		Catalog:    catalogService,
		Content:    contentService,
		SiteConfig: configService,
		Upload:     uploadsvc.NewUploadService(log, files),
		Stats:      statssvc.NewStatsService(log, a.repo),
		Public: publicsvc.NewPublicService(log, rd,
			teamService, brandService, catalogService, contentService, configService),
	})

	a.HTTPServer, err = httpapp.New(log, httpapp.Options{
		Host:          cfg.HTTP.Host,
		Port:          cfg.HTTP.Port,
		StaticDir:     cfg.FileStorage.BaseDir,
		SessionSecret: cfg.SessionSecret,
		ReadTimeout:   cfg.HTTP.ReadTimeout,
		WriteTimeout:  cfg.HTTP.WriteTimeout,
	}, routers, authService, a.repo)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// NewReadCache builds the read cache selected by cfg.Cache.Driver. The
// returned client is nil unless redis is in use; the caller closes it.
func NewReadCache(ctx context.Context, log *slog.Logger, cfg *config.Config) (cache.Cache, *redisstore.Client, error) {
	if cfg.Cache.Driver != config.CacheRedis {
		return cache.NewMemoryCache(cfg.Cache.TTL), nil, nil
	}

	client, err := redisstore.Connect(ctx, cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	if err != nil {
		return nil, nil, err
	}

	log.Info("using redis read cache", slog.String("addr", cfg.Redis.RedisAddr))

	return cache.NewRedisCache(client, cacheNamespace, cfg.Cache.TTL), client, nil
}

// Stop shuts the HTTP server down and releases the pool and cache clients.
func (a *App) Stop(ctx context.Context) error {
	var errs []error
	if a.HTTPServer != nil {
		errs = append(errs, a.HTTPServer.Stop(ctx))
	}
	errs = append(errs, a.close())

	return errors.Join(errs...)
}

func (a *App) close() error {
	a.repo.Close()
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
