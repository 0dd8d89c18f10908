package http

import (
	"log/slog"
	"net/http"

	"fosfenos/internal/transport/http/dto"
	"fosfenos/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const brandNotFound = "Marca no encontrada"

// ListBrands godoc
// @Summary List brands
// @Tags admin-brands
// @Produce json
// @Param search query string false "Substring of name"
// @Param active query bool false "Filter by active flag"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param orderBy query string false "order, name, createdAt, updatedAt"
// @Param orderDirection query string false "asc or desc"
// @Success 200 {object} response.Response{data=[]models.Brand,pagination=response.Pagination}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/brands [get]
func (r *Routers) ListBrands(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.ListBrands"))

	page, err := r.BrandService.GetAll(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return writeError(c, log, err, brandNotFound, "Error al obtener marcas")
	}

	return paged(c, page)
}

// GetBrand godoc
// @Summary Get a brand
// @Tags admin-brands
// @Produce json
// @Param id path string true "Brand ID" format(uuid)
// @Success 200 {object} response.Response{data=models.Brand}
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/brands/{id} [get]
func (r *Routers) GetBrand(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.GetBrand"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, brandNotFound, "Error al obtener marca")
	}

	m, err := r.BrandService.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, log, err, brandNotFound, "Error al obtener marca")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(m))
}

// CreateBrand godoc
// @Summary Create a brand
// @Tags admin-brands
// @Accept json
// @Produce json
// @Param request body dto.CreateBrandRequest true "Brand"
// @Success 201 {object} response.Response{data=models.Brand}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/brands [post]
func (r *Routers) CreateBrand(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.CreateBrand"))

	var req dto.CreateBrandRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, brandNotFound, "Error al crear marca")
	}

	m, err := r.BrandService.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, log, err, brandNotFound, "Error al crear marca")
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(m))
}

// UpdateBrand godoc
// @Summary Partially update a brand
// @Tags admin-brands
// @Accept json
// @Produce json
// @Param id path string true "Brand ID" format(uuid)
// @Param request body dto.UpdateBrandRequest true "Changed fields"
// @Success 200 {object} response.Response{data=models.Brand}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/brands/{id} [put]
func (r *Routers) UpdateBrand(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.UpdateBrand"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, brandNotFound, "Error al actualizar marca")
	}

	var req dto.UpdateBrandRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, brandNotFound, "Error al actualizar marca")
	}

	m, err := r.BrandService.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err, brandNotFound, "Error al actualizar marca")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(m))
}

// DeleteBrand godoc
// @Summary Delete a brand
// @Tags admin-brands
// @Produce json
// @Param id path string true "Brand ID" format(uuid)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/brands/{id} [delete]
func (r *Routers) DeleteBrand(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.DeleteBrand"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, brandNotFound, "Error al eliminar marca")
	}

	if err := r.BrandService.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, log, err, brandNotFound, "Error al eliminar marca")
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Marca eliminada correctamente"))
}

// ReorderBrands godoc
// @Summary Reorder brands
// @Description Applies every {id, order} pair in one transaction. An unknown id rolls back the batch.
// @Tags admin-brands
// @Accept json
// @Produce json
// @Param request body dto.ReorderRequest true "New order"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/brands/reorder [put]
func (r *Routers) ReorderBrands(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.ReorderBrands"))

	var req dto.ReorderRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, brandNotFound, "Error al reordenar marcas")
	}

	if err := r.BrandService.Reorder(c.Request().Context(), toOrderItems(req)); err != nil {
		return writeError(c, log, err, brandNotFound, "Error al reordenar marcas")
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Orden actualizado"))
}
