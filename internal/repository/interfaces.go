package repository

import (
	"context"

	"fosfenos/internal/domain/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UpsertUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	CountByRole(ctx context.Context, role models.Role) (int, error)
}

type TeamRepository interface {
	GetAll(ctx context.Context, f models.ListFilter) ([]models.TeamMember, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.TeamMember, error)
	Create(ctx context.Context, m models.TeamMember) (models.TeamMember, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.TeamMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, items []models.OrderItem) error
}

type BrandRepository interface {
	GetAll(ctx context.Context, f models.ListFilter) ([]models.Brand, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Brand, error)
	Create(ctx context.Context, b models.Brand) (models.Brand, error)
	Upsert(ctx context.Context, b models.Brand) (models.Brand, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, items []models.OrderItem) error
}

type ContentRepository interface {
	GetAll(ctx context.Context, f models.ListFilter) ([]models.ChildContent, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.ChildContent, error)
	GetBySlug(ctx context.Context, slug string) (models.ChildContent, error)
	SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)
	Create(ctx context.Context, c models.ChildContent) (models.ChildContent, error)
	Update(ctx context.Context, id uuid.UUID, upd models.ContentUpdate) (models.ChildContent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceRepository interface {
	GetAll(ctx context.Context, f models.ListFilter) ([]models.Service, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Service, error)
	Create(ctx context.Context, s models.Service) (models.Service, error)
	Upsert(ctx context.Context, s models.Service) (models.Service, error)
	Update(ctx context.Context, id uuid.UUID, upd models.ServiceUpdate) (models.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, items []models.OrderItem) error
}

type SiteConfigRepository interface {
	List(ctx context.Context) ([]models.SiteConfig, error)
	Get(ctx context.Context, key string) (models.SiteConfig, error)
	Upsert(ctx context.Context, key, value string, typ models.ConfigType) (models.SiteConfig, error)
	Delete(ctx context.Context, key string) error
}

var (
	_ UserRepository       = (*UserRepo)(nil)
	_ TeamRepository       = (*TeamRepo)(nil)
	_ BrandRepository      = (*BrandRepo)(nil)
	_ ContentRepository    = (*ContentRepo)(nil)
	_ ServiceRepository    = (*ServiceRepo)(nil)
	_ SiteConfigRepository = (*SiteConfigRepo)(nil)
)
