package http

import (
	"log/slog"
	"net/http"
	"time"

	"fosfenos/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// Upload godoc
// @Summary Upload an image
// @Description Stores a JPEG, PNG, WebP or GIF up to 5MB under the public static directory.
// @Tags admin-upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Param folder formData string false "Target folder" default(uploads)
// @Success 200 {object} response.Response{data=models.UploadedFile}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/upload [post]
func (r *Routers) Upload(c echo.Context) error {
	const op = "http.routers.Upload"

	log := r.log.With(
		slog.String("op", op),
	)

	startTime := time.Now()
	defer func() {
		log.Info("request completed", slog.Duration("duration", time.Since(startTime)))
	}()

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("empty file in request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, response.Error("No se ha enviado ningún archivo"))
	}

	saved, err := r.UploadService.Upload(c.Request().Context(), file, c.FormValue("folder"))
	if err != nil {
		return writeError(c, log, err, "Archivo no encontrado", "Error al subir el archivo")
	}

	return c.JSON(http.StatusOK, response.Response{
		Success: true,
		Data:    saved,
		Message: "Archivo subido correctamente",
	})
}

// Stats godoc
// @Summary Dashboard counts
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=models.Stats}
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/stats [get]
func (r *Routers) Stats(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.Stats"))

	stats, err := r.StatsService.Stats(c.Request().Context())
	if err != nil {
		return writeError(c, log, err, "Not found", "Error al obtener estadísticas")
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(stats))
}
