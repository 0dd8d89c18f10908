package http

import (
	"log/slog"
	"net/http"

	"fosfenos/internal/transport/http/dto"
	"fosfenos/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const teamNotFound = "Team member not found"

// ListTeam godoc
// @Summary List team members
// @Tags admin-team
// @Produce json
// @Param search query string false "Substring of nombre or cargo"
// @Param active query bool false "Filter by active flag"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param orderBy query string false "order, nombre, createdAt, updatedAt"
// @Param orderDirection query string false "asc or desc"
// @Success 200 {object} response.Response{data=[]models.TeamMember,pagination=response.Pagination}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/team [get]
func (r *Routers) ListTeam(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.ListTeam"))

	page, err := r.TeamService.GetAll(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return writeError(c, log, err, teamNotFound, "Failed to fetch team members")
	}

	return paged(c, page)
}

// GetTeamMember godoc
// @Summary Get a team member
// @Tags admin-team
// @Produce json
// @Param id path string true "Team member ID" format(uuid)
// @Success 200 {object} response.Response{data=models.TeamMember}
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/team/{id} [get]
func (r *Routers) GetTeamMember(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.GetTeamMember"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, teamNotFound, "Failed to fetch team member")
	}

	m, err := r.TeamService.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, log, err, teamNotFound, "Failed to fetch team member")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(m))
}

// CreateTeamMember godoc
// @Summary Create a team member
// @Tags admin-team
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamMemberRequest true "Team member"
// @Success 201 {object} response.Response{data=models.TeamMember}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/team [post]
func (r *Routers) CreateTeamMember(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.CreateTeamMember"))

	var req dto.CreateTeamMemberRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, teamNotFound, "Failed to create team member")
	}

	m, err := r.TeamService.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, log, err, teamNotFound, "Failed to create team member")
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(m))
}

// UpdateTeamMember godoc
// @Summary Partially update a team member
// @Tags admin-team
// @Accept json
// @Produce json
// @Param id path string true "Team member ID" format(uuid)
// @Param request body dto.UpdateTeamMemberRequest true "Changed fields"
// @Success 200 {object} response.Response{data=models.TeamMember}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/team/{id} [put]
func (r *Routers) UpdateTeamMember(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.UpdateTeamMember"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, teamNotFound, "Failed to update team member")
	}

	var req dto.UpdateTeamMemberRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, teamNotFound, "Failed to update team member")
	}

	m, err := r.TeamService.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err, teamNotFound, "Failed to update team member")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(m))
}

// DeleteTeamMember godoc
// @Summary Delete a team member
// @Tags admin-team
// @Produce json
// @Param id path string true "Team member ID" format(uuid)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/team/{id} [delete]
func (r *Routers) DeleteTeamMember(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.DeleteTeamMember"))

	id, err := parseID(c)
	if err != nil {
		return writeError(c, log, err, teamNotFound, "Failed to delete team member")
	}

	if err := r.TeamService.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, log, err, teamNotFound, "Failed to delete team member")
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Team member deleted successfully"))
}

// ReorderTeam godoc
// @Summary Reorder team members
// @Description Applies every {id, order} pair in one transaction. An unknown id rolls back the batch.
// @Tags admin-team
// @Accept json
// @Produce json
// @Param request body dto.ReorderRequest true "New order"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/team/reorder [put]
func (r *Routers) ReorderTeam(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.ReorderTeam"))

	var req dto.ReorderRequest
	if err := bindRequest(c, &req); err != nil {
		return writeError(c, log, err, teamNotFound, "Error al reordenar miembros")
	}

	if err := r.TeamService.Reorder(c.Request().Context(), toOrderItems(req)); err != nil {
		return writeError(c, log, err, teamNotFound, "Error al reordenar miembros")
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Orden actualizado"))
}
