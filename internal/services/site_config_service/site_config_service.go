package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/apperr"
	"fosfenos/internal/lib/logger/sl"
	"fosfenos/internal/repository"
	"fosfenos/internal/services/reader"
)

type SiteConfigService struct {
	log   *slog.Logger
	repo  repository.SiteConfigRepository
	cache reader.Invalidator
}

func NewSiteConfigService(log *slog.Logger, repo repository.SiteConfigRepository, cache reader.Invalidator) *SiteConfigService {
	return &SiteConfigService{log: log, repo: repo, cache: cache}
}

func (s *SiteConfigService) List(ctx context.Context) ([]models.SiteConfig, error) {
	const op = "site_config_service.List"

	configs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list site config", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return configs, nil
}

// Map returns every key with its raw value.
func (s *SiteConfigService) Map(ctx context.Context) (map[string]string, error) {
	const op = "site_config_service.Map"

	configs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(map[string]string, len(configs))
	for _, c := range configs {
		out[c.Key] = c.Value
	}

	return out, nil
}

func (s *SiteConfigService) Get(ctx context.Context, key string) (models.SiteConfig, error) {
	const op = "site_config_service.Get"

	c, err := s.repo.Get(ctx, key)
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// Upsert stores key. The value must parse as the declared type; an empty
// type means TEXT.
func (s *SiteConfigService) Upsert(ctx context.Context, key, value string, typ models.ConfigType) (models.SiteConfig, error) {
	const op = "site_config_service.Upsert"
	log := s.log.With(slog.String("op", op), slog.String("key", key))

	key = strings.TrimSpace(key)
	if key == "" {
		return models.SiteConfig{}, apperr.Validation("key is required", nil)
	}
	if typ == "" {
		typ = models.ConfigTypeText
	}
	if err := checkValue(value, typ); err != nil {
		return models.SiteConfig{}, apperr.Validation(fmt.Sprintf("value is not valid %s", typ), err)
	}

	c, err := s.repo.Upsert(ctx, key, value, typ)
	if err != nil {
		log.Error("failed to save site config", sl.Err(err))
		return models.SiteConfig{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceSiteConfig)
	log.Info("site config saved")

	return c, nil
}

func (s *SiteConfigService) Delete(ctx context.Context, key string) error {
	const op = "site_config_service.Delete"

	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceSiteConfig)

	return nil
}

func checkValue(value string, typ models.ConfigType) error {
	switch typ {
	case models.ConfigTypeText:
		return nil
	case models.ConfigTypeNumber:
		_, err := strconv.ParseFloat(value, 64)
		return err
	case models.ConfigTypeBoolean:
		_, err := strconv.ParseBool(value)
		return err
	case models.ConfigTypeJSON:
		if !json.Valid([]byte(value)) {
			return fmt.Errorf("invalid json")
		}
		return nil
	default:
		return fmt.Errorf("unknown type %q", typ)
	}
}
