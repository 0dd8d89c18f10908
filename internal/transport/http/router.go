package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/apperr"
	"fosfenos/internal/lib/logger/sl"
	publicsvc "fosfenos/internal/services/public_service"
	"fosfenos/internal/storage"
	"fosfenos/internal/transport/http/dto"
	"fosfenos/internal/transport/http/dto/response"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
}

type TeamService interface {
	GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.TeamMember], error)
	GetByID(ctx context.Context, id uuid.UUID) (models.TeamMember, error)
	Create(ctx context.Context, req dto.CreateTeamMemberRequest) (models.TeamMember, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTeamMemberRequest) (models.TeamMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, items []models.OrderItem) error
}

type BrandService interface {
	GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.Brand], error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Brand, error)
	Create(ctx context.Context, req dto.CreateBrandRequest) (models.Brand, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBrandRequest) (models.Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, items []models.OrderItem) error
}

type CatalogService interface {
	GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.Service], error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Service, error)
	Create(ctx context.Context, req dto.CreateServiceRequest) (models.Service, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateServiceRequest) (models.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, items []models.OrderItem) error
}

type ContentService interface {
	GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.ChildContent], error)
	GetByID(ctx context.Context, id uuid.UUID) (models.ChildContent, error)
	Create(ctx context.Context, req dto.CreateChildContentRequest) (models.ChildContent, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateChildContentRequest) (models.ChildContent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SiteConfigService interface {
	List(ctx context.Context) ([]models.SiteConfig, error)
	Get(ctx context.Context, key string) (models.SiteConfig, error)
	Upsert(ctx context.Context, key, value string, typ models.ConfigType) (models.SiteConfig, error)
	Delete(ctx context.Context, key string) error
}

type UploadService interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (models.UploadedFile, error)
}

type StatsService interface {
	Stats(ctx context.Context) (models.Stats, error)
}

type PublicService interface {
	Team(ctx context.Context, f models.ListFilter) (models.Page[models.TeamMember], error)
	Brands(ctx context.Context, f models.ListFilter) (models.Page[models.Brand], error)
	Services(ctx context.Context, f models.ListFilter) (models.Page[models.Service], error)
	Contents(ctx context.Context, f models.ListFilter) (models.Page[models.ChildContent], error)
	ContentBySlug(ctx context.Context, slug string) (models.ChildContent, error)
	SiteConfig(ctx context.Context) (map[string]string, error)
	Home(ctx context.Context) (publicsvc.Home, error)
}

type Routers struct {
	log      *slog.Logger
	tokenTTL time.Duration

	AuthService       AuthService
	TeamService       TeamService
	BrandService      BrandService
	CatalogService    CatalogService
	ContentService    ContentService
	SiteConfigService SiteConfigService
	UploadService     UploadService
	StatsService      StatsService
	PublicService     PublicService
}

// Services groups the dependencies of NewRouter.
type Services struct {
	Auth       AuthService
	Team       TeamService
	Brand      BrandService
	Catalog    CatalogService
	Content    ContentService
	SiteConfig SiteConfigService
	Upload     UploadService
	Stats      StatsService
	Public     PublicService
}

func NewRouter(log *slog.Logger, tokenTTL time.Duration, s Services) *Routers {
	return &Routers{
		log:               log,
		tokenTTL:          tokenTTL,
		AuthService:       s.Auth,
		TeamService:       s.Team,
		BrandService:      s.Brand,
		CatalogService:    s.Catalog,
		ContentService:    s.Content,
		SiteConfigService: s.SiteConfig,
		UploadService:     s.Upload,
		StatsService:      s.Stats,
		PublicService:     s.Public,
	}
}

// CustomValidator adapts validator/v10 to echo.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func bindRequest(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperr.Validation(response.ErrInvalidRequestFormat.Error, err)
	}
	if err := c.Validate(req); err != nil {
		return apperr.Validation("Validation failed", err)
	}
	return nil
}

func validationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
		}
		return out
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprint(he.Message)
	}

	return nil
}

// writeError is the one place service errors become HTTP responses.
// notFound and internal are the route specific messages for those kinds;
// internal causes are logged and never sent to the client.
func writeError(c echo.Context, log *slog.Logger, err error, notFound, internal string) error {
	var appErr *apperr.Error
	isAppErr := errors.As(err, &appErr)

	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return c.JSON(http.StatusNotFound, response.Error(notFound))
	case apperr.KindValidation:
		switch {
		case isAppErr:
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(appErr.Message, validationDetails(appErr.Err)))
		case errors.Is(err, storage.ErrInvalidSort):
			return c.JSON(http.StatusBadRequest, response.Error("Invalid orderBy field"))
		default:
			return c.JSON(http.StatusBadRequest, response.Error("Validation failed"))
		}
	case apperr.KindConflict:
		msg := "Resource already exists"
		if isAppErr {
			msg = appErr.Message
		}
		log.Warn("conflict", sl.Err(err))
		return c.JSON(http.StatusConflict, response.Error(msg))
	case apperr.KindUnauthorized:
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
	case apperr.KindForbidden:
		return c.JSON(http.StatusForbidden, response.ErrForbidden)
	}

	log.Error(internal, sl.Err(err))

	return c.JSON(http.StatusInternalServerError, response.Error(internal))
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// no stored row can carry a malformed id
		return uuid.Nil, fmt.Errorf("parse id %q: %w", c.Param("id"), storage.ErrNotFound)
	}
	return id, nil
}

// parseListFilter reads the common list query. Malformed numbers fall back to
// the service defaults; unknown flag values leave the flag unset.
func parseListFilter(c echo.Context) models.ListFilter {
	return models.ListFilter{
		Search:         c.QueryParam("search"),
		Active:         queryBool(c, "active"),
		Published:      queryBool(c, "published"),
		OrderBy:        c.QueryParam("orderBy"),
		OrderDirection: c.QueryParam("orderDirection"),
		Page:           queryInt(c, "page"),
		PageSize:       queryInt(c, "pageSize"),
	}
}

func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.QueryParam(name)))
	if err != nil {
		return 0
	}
	return n
}

func queryBool(c echo.Context, name string) *bool {
	switch strings.ToLower(strings.TrimSpace(c.QueryParam(name))) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

func toOrderItems(req dto.ReorderRequest) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		id, _ := uuid.Parse(it.ID)
		items = append(items, models.OrderItem{ID: id, Order: it.Order})
	}
	return items
}

func paged[T any](c echo.Context, p models.Page[T]) error {
	return c.JSON(http.StatusOK, response.PagedResponse(p.Data, response.Pagination{
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}))
}
