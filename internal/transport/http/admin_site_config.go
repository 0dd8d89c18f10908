package http

import (
	"log/slog"
	"net/http"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/transport/http/dto"
	"fosfenos/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const configNotFound = "Configuración no encontrada"

// ListSiteConfig godoc
// @Summary List site configuration entries
// @Tags admin-site-config
// @Produce json
// @Success 200 {object} response.Response{data=[]models.SiteConfig}
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/site-config [get]
func (r *Routers) ListSiteConfig(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.ListSiteConfig"))

	entries, err := r.SiteConfigService.List(c.Request().Context())
	if err != nil {
		return writeError(c, log, err, configNotFound, "Error al obtener configuración")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(entries))
}

// GetSiteConfig godoc
// @Summary Get one configuration entry
// @Tags admin-site-config
// @Produce json
// @Param key path string true "Config key"
// @Success 200 {object} response.Response{data=models.SiteConfig}
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/site-config/{key} [get]
func (r *Routers) GetSiteConfig(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.GetSiteConfig"))

	entry, err := r.SiteConfigService.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return writeError(c, log, err, configNotFound, "Error al obtener configuración")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(entry))
}

// UpsertSiteConfig godoc
// @Summary Create or replace a configuration entry
// @Tags admin-site-config
// @Accept json
// @Produce json
// @Param key path string true "Config key"
// @Param request body dto.UpsertSiteConfigRequest true "Value and type"
// @Success 200 {object} response.Response{data=models.SiteConfig}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/site-config/{key} [put]
func (r *Routers) UpsertSiteConfig(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.UpsertSiteConfig"))

	var req dto.UpsertSiteConfigRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, configNotFound, "Error al guardar configuración")
	}

	entry, err := r.SiteConfigService.Upsert(c.Request().Context(), c.Param("key"), req.Value, models.ConfigType(req.Type))
	if err != nil {
		return writeError(c, log, err, configNotFound, "Error al guardar configuración")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(entry))
}

// DeleteSiteConfig godoc
// @Summary Delete a configuration entry
// @Tags admin-site-config
// @Produce json
// @Param key path string true "Config key"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/site-config/{key} [delete]
func (r *Routers) DeleteSiteConfig(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.DeleteSiteConfig"))

	if err := r.SiteConfigService.Delete(c.Request().Context(), c.Param("key")); err != nil {
		return writeError(c, log, err, configNotFound, "Error al eliminar configuración")
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Configuración eliminada"))
}
