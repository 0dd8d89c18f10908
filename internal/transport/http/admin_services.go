package http

import (
	"log/slog"
	"net/http"

	"fosfenos/internal/transport/http/dto"
	"fosfenos/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const serviceNotFound = "Servicio no encontrado"

// ListServices godoc
// @Summary List services
// @Tags admin-services
// @Produce json
// @Param search query string false "Substring of title or description"
// @Param active query bool false "Filter by active flag"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param orderBy query string false "order, title, createdAt, updatedAt"
// @Param orderDirection query string false "asc or desc"
// @Success 200 {object} response.Response{data=[]models.Service,pagination=response.Pagination}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/services [get]
func (r *Routers) ListServices(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.ListServices"))

	page, err := r.CatalogService.GetAll(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al obtener servicios")
	}

	return paged(c, page)
}

// GetService godoc
// @Summary Get a service
// @Tags admin-services
// @Produce json
// @Param id path string true "Service ID" format(uuid)
// @Success 200 {object} response.Response{data=models.Service}
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/services/{id} [get]
func (r *Routers) GetService(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.GetService"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al obtener servicio")
	}

	m, err := r.CatalogService.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al obtener servicio")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(m))
}

// CreateService godoc
// @Summary Create a service
// @Tags admin-services
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Service with features"
// @Success 201 {object} response.Response{data=models.Service}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/services [post]
func (r *Routers) CreateService(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.CreateService"))

	var req dto.CreateServiceRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al crear servicio")
	}

	m, err := r.CatalogService.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al crear servicio")
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(m))
}

// UpdateService godoc
// @Summary Partially update a service
// @Tags admin-services
// @Accept json
// @Produce json
// @Param id path string true "Service ID" format(uuid)
// @Param request body dto.UpdateServiceRequest true "Changed fields; features, when present, replace the stored set"
// @Success 200 {object} response.Response{data=models.Service}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/services/{id} [put]
func (r *Routers) UpdateService(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.UpdateService"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al actualizar servicio")
	}

	var req dto.UpdateServiceRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al actualizar servicio")
	}

	m, err := r.CatalogService.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al actualizar servicio")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(m))
}

// DeleteService godoc
// @Summary Delete a service
// @Tags admin-services
// @Produce json
// @Param id path string true "Service ID" format(uuid)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/services/{id} [delete]
func (r *Routers) DeleteService(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.DeleteService"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al eliminar servicio")
	}

	if err := r.CatalogService.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al eliminar servicio")
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Servicio eliminado correctamente"))
}

// ReorderServices godoc
// @Summary Reorder services
// @Description Applies every {id, order} pair in one transaction. An unknown id rolls back the batch.
// @Tags admin-services
// @Accept json
// @Produce json
// @Param request body dto.ReorderRequest true "New order"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/services/reorder [put]
func (r *Routers) ReorderServices(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.ReorderServices"))

	var req dto.ReorderRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al reordenar servicios")
	}

	if err := r.CatalogService.Reorder(c.Request().Context(), toOrderItems(req)); err != nil {
		return writeError(c, log, err, serviceNotFound, "Error al reordenar servicios")
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Orden actualizado"))
}
