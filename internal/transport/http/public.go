package http

import (
	"log/slog"
	"net/http"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// PublicTeam godoc
// @Summary Active team members
// @Tags public
// @Produce json
// @Param search query string false "Substring of nombre or cargo"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(50)
// @Param orderBy query string false "order, nombre, createdAt, updatedAt"
// @Param orderDirection query string false "asc or desc"
// @Success 200 {object} response.Response{data=[]models.TeamMember,pagination=response.Pagination}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/public/team [get]
func (r *Routers) PublicTeam(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.PublicTeam"))

	page, err := r.PublicService.Team(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return writeError(c, log, err, "Team member not found", "Failed to fetch team members")
	}

	return paged(c, page)
}

// PublicBrands godoc
// @Summary Active brands
// @Tags public
// @Produce json
// @Param search query string false "Substring of name"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(50)
// @Param orderBy query string false "order, name, createdAt, updatedAt"
// @Param orderDirection query string false "asc or desc"
// @Success 200 {object} response.Response{data=[]models.Brand,pagination=response.Pagination}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/public/brands [get]
func (r *Routers) PublicBrands(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.PublicBrands"))

	page, err := r.PublicService.Brands(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return writeError(c, log, err, "Brand not found", "Failed to fetch brands")
	}

	return paged(c, page)
}

// PublicServices godoc
// @Summary Active services with features
// @Tags public
// @Produce json
// @Param search query string false "Substring of title or description"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(50)
// @Param orderBy query string false "order, title, createdAt, updatedAt"
// @Param orderDirection query string false "asc or desc"
// @Success 200 {object} response.Response{data=[]models.Service,pagination=response.Pagination}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/public/services [get]
func (r *Routers) PublicServices(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.PublicServices"))

	page, err := r.PublicService.Services(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return writeError(c, log, err, "Service not found", "Failed to fetch services")
	}

	return paged(c, page)
}

// PublicContents godoc
// @Summary Published child content
// @Tags public
// @Produce json
// @Param search query string false "Substring of title or synopsis"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param orderBy query string false "order, title, createdAt, updatedAt"
// @Param orderDirection query string false "asc or desc"
// @Success 200 {object} response.Response{data=[]response.PublicChildContent,pagination=response.Pagination}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/public/child-content [get]
func (r *Routers) PublicContents(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.PublicContents"))

	page, err := r.PublicService.Contents(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return writeError(c, log, err, "Content not found", "Failed to fetch child content")
	}

	return paged(c, models.Page[response.PublicChildContent]{
		Data:       response.ToPublicChildContents(page.Data),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	})
}

// PublicContentBySlug godoc
// @Summary Published child content by slug
// @Tags public
// @Produce json
// @Param slug path string true "Content slug"
// @Success 200 {object} response.Response{data=response.PublicChildContent}
// @Failure 404 {object} response.ErrorResponse "Content not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/public/child-content/{slug} [get]
func (r *Routers) PublicContentBySlug(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.PublicContentBySlug"))

	content, err := r.PublicService.ContentBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, log, err, "Content not found", "Failed to fetch content")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(response.ToPublicChildContent(content)))
}

// PublicSiteConfig godoc
// @Summary Site configuration as a key/value map
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=map[string]string}
// @Failure 500 {object} response.ErrorResponse
// @Router /api/public/site-config [get]
func (r *Routers) PublicSiteConfig(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.PublicSiteConfig"))

	cfg, err := r.PublicService.SiteConfig(c.Request().Context())
	if err != nil {
		return writeError(c, log, err, "Config not found", "Failed to fetch site config")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(cfg))
}
