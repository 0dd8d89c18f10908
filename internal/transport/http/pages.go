package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/apperr"
	"fosfenos/internal/lib/logger/sl"
	"fosfenos/internal/middleware"
	"fosfenos/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

const (
	pageHome      = "home"
	pageContent   = "content"
	pageNotFound  = "not_found"
	pageLogin     = "login"
	pageDashboard = "dashboard"
)

// TemplateRenderer renders a page inside the shared base layout.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*TemplateRenderer, error) {
	r := &TemplateRenderer{pages: make(map[string]*template.Template)}

	for _, name := range []string{pageHome, pageContent, pageNotFound, pageLogin, pageDashboard} {
		tmpl, err := template.New(name).Funcs(funcMap()).ParseFS(templateFS,
			"templates/layouts/base.html",
			"templates/pages/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"awardLabel": func(s models.AwardStatus) string {
			switch s {
			case models.AwardGanador:
				return "Ganador"
			case models.AwardMencion:
				return "Mención"
			default:
				return "Nominación"
			}
		},
	}
}

func (r *Routers) HomePage(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.HomePage"))

	home, err := r.PublicService.Home(c.Request().Context())
	if err != nil {
		log.Error("failed to load home", sl.Err(err))
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, pageHome, home)
}

func (r *Routers) ContentPage(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.ContentPage"))

	content, err := r.PublicService.ContentBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return c.Render(http.StatusNotFound, pageNotFound, nil)
		}
		log.Error("failed to load content", sl.Err(err))
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, pageContent, response.ToPublicChildContent(content))
}

func (r *Routers) LoginPage(c echo.Context) error {
	if user, ok := middleware.CurrentUser(c); ok && user.Role == models.RoleAdmin {
		return c.Redirect(http.StatusSeeOther, adminHome)
	}

	return c.Render(http.StatusOK, pageLogin, struct{ Error bool }{
		Error: c.QueryParam("error") != "",
	})
}

func (r *Routers) DashboardPage(c echo.Context) error {
	log := r.log.With(slog.String("op", "http.routers.DashboardPage"))

	stats, err := r.StatsService.Stats(c.Request().Context())
	if err != nil {
		log.Error("failed to load stats", sl.Err(err))
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	user, _ := middleware.CurrentUser(c)

	return c.Render(http.StatusOK, pageDashboard, struct {
		User  models.SessionUser
		Stats models.Stats
	}{User: user, Stats: stats})
}
