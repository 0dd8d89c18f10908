package http

import (
	"log/slog"
	"net/http"

	"fosfenos/internal/transport/http/dto"
	"fosfenos/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const contentNotFound = "Contenido no encontrado"

// ListContents godoc
// @Summary List child content
// @Description Admin listing includes unpublished titles and returns the stored shape.
// @Tags admin-child-content
// @Produce json
// @Param search query string false "Substring of title or synopsis"
// @Param published query bool false "Filter by published flag"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param orderBy query string false "order, title, createdAt, updatedAt"
// @Param orderDirection query string false "asc or desc"
// @Success 200 {object} response.Response{data=[]models.ChildContent,pagination=response.Pagination}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/child-content [get]
func (r *Routers) ListContents(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.ListContents"))

	page, err := r.ContentService.GetAll(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return writeError(c, log, err, contentNotFound, "Error al obtener contenidos infantiles")
	}

	return paged(c, page)
}

// GetContent godoc
// @Summary Get child content with relations
// @Tags admin-child-content
// @Produce json
// @Param id path string true "Content ID" format(uuid)
// @Success 200 {object} response.Response{data=models.ChildContent}
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/child-content/{id} [get]
func (r *Routers) GetContent(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.GetContent"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, contentNotFound, "Error al obtener contenido")
	}

	content, err := r.ContentService.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, log, err, contentNotFound, "Error al obtener contenido")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(content))
}

// CreateContent godoc
// @Summary Create child content
// @Description The slug is derived from the title and made unique.
// @Tags admin-child-content
// @Accept json
// @Produce json
// @Param request body dto.CreateChildContentRequest true "Content with nested relations"
// @Success 201 {object} response.Response{data=models.ChildContent}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/child-content [post]
func (r *Routers) CreateContent(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.CreateContent"))

	var req dto.CreateChildContentRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, contentNotFound, "Error al crear contenido infantil")
	}

	content, err := r.ContentService.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, log, err, contentNotFound, "Error al crear contenido infantil")
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(content))
}

// UpdateContent godoc
// @Summary Partially update child content
// @Description Present awards or platforms replace the stored set; technicalInfo and additionalInfo are upserted.
// @Tags admin-child-content
// @Accept json
// @Produce json
// @Param id path string true "Content ID" format(uuid)
// @Param request body dto.UpdateChildContentRequest true "Changed fields"
// @Success 200 {object} response.Response{data=models.ChildContent}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/child-content/{id} [put]
func (r *Routers) UpdateContent(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.UpdateContent"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, contentNotFound, "Error al actualizar contenido")
	}

	var req dto.UpdateChildContentRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, contentNotFound, "Error al actualizar contenido")
	}

	content, err := r.ContentService.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err, contentNotFound, "Error al actualizar contenido")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(content))
}

// DeleteContent godoc
// @Summary Delete child content and its relations
// @Tags admin-child-content
// @Produce json
// @Param id path string true "Content ID" format(uuid)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/child-content/{id} [delete]
func (r *Routers) DeleteContent(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.DeleteContent"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, contentNotFound, "Error al eliminar contenido")
	}

	if err := r.ContentService.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, log, err, contentNotFound, "Error al eliminar contenido")
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Contenido eliminado correctamente"))
}
