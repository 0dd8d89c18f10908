package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/logger/sl"
	mw "fosfenos/internal/middleware"
	httprouters "fosfenos/internal/transport/http"
	"fosfenos/internal/transport/http/dto/response"

	_ "fosfenos/docs"

	"github.com/arl/statsviz"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	Host          string
	Port          string
	StaticDir     string
	SessionSecret string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
}

type Server struct {
	m        *http.ServeMux
	log      *slog.Logger
	e        *echo.Echo
	routers  *httprouters.Routers
	verifier mw.TokenVerifier
	db       Pinger
	opts     Options
}

func New(log *slog.Logger, opts Options, routers *httprouters.Routers, verifier mw.TokenVerifier, db Pinger) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = opts.ReadTimeout
	e.Server.WriteTimeout = opts.WriteTimeout

	e.Validator = httprouters.NewValidator()
	e.HTTPErrorHandler = errorHandler(log)

	renderer, err := httprouters.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			)

			return nil
		},
	}))

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(opts.SessionSecret))))
	e.Use(mw.Authenticate(verifier))

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Info("statsviz start with error", sl.Err(err))
	}

	return &Server{
		m:        mux,
		log:      log,
		e:        e,
		routers:  routers,
		verifier: verifier,
		db:       db,
		opts:     opts,
	}, nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	const op = "http.Server.Stop"

	s.log.Info("stopping http server", slog.String("op", op))

	if err := s.e.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.opts.Host, s.opts.Port)
}

func (s *Server) BuildRouters() {
	r := s.routers

	s.e.GET("/health", s.health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.e.GET("/swagger/*", echoSwagger.WrapHandler)

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	public := s.e.Group("/api/public")
	{
		public.GET("/team", r.PublicTeam)
		public.GET("/brands", r.PublicBrands)
		public.GET("/services", r.PublicServices)
		public.GET("/child-content", r.PublicContents)
		public.GET("/child-content/:slug", r.PublicContentBySlug)
		public.GET("/site-config", r.PublicSiteConfig)
	}

	authGroup := s.e.Group("/api/auth")
	{
		authGroup.POST("/signin", r.SignIn)
		authGroup.POST("/signout", r.SignOut)
		authGroup.GET("/session", r.Session)
	}

	admin := s.e.Group("/api/admin", mw.RequireRole(models.RoleAdmin))
	{
		team := admin.Group("/team")
		team.GET("", r.ListTeam)
		team.POST("", r.CreateTeamMember)
		team.PUT("/reorder", r.ReorderTeam)
		team.GET("/:id", r.GetTeamMember)
		team.PUT("/:id", r.UpdateTeamMember)
		team.DELETE("/:id", r.DeleteTeamMember)

		brands := admin.Group("/brands")
		brands.GET("", r.ListBrands)
		brands.POST("", r.CreateBrand)
		brands.PUT("/reorder", r.ReorderBrands)
		brands.GET("/:id", r.GetBrand)
		brands.PUT("/:id", r.UpdateBrand)
		brands.DELETE("/:id", r.DeleteBrand)

		services := admin.Group("/services")
		services.GET("", r.ListServices)
		services.POST("", r.CreateService)
		services.PUT("/reorder", r.ReorderServices)
		services.GET("/:id", r.GetService)
		services.PUT("/:id", r.UpdateService)
		services.DELETE("/:id", r.DeleteService)

		content := admin.Group("/child-content")
		content.GET("", r.ListContents)
		content.POST("", r.CreateContent)
		content.GET("/:id", r.GetContent)
		content.PUT("/:id", r.UpdateContent)
		content.DELETE("/:id", r.DeleteContent)

		config := admin.Group("/site-config")
		config.GET("", r.ListSiteConfig)
		config.GET("/:key", r.GetSiteConfig)
		config.PUT("/:key", r.UpsertSiteConfig)
		config.DELETE("/:key", r.DeleteSiteConfig)

		admin.POST("/upload", r.Upload)
		admin.GET("/stats", r.Stats)
	}

	s.e.GET("/", r.HomePage)
	s.e.GET("/contenido-infantil/:slug", r.ContentPage)
	s.e.GET("/admin/login", r.LoginPage)
	s.e.GET("/admin", r.DashboardPage, mw.RequireRoleOrRedirect(models.RoleAdmin, "/admin/login"))

	if s.opts.StaticDir != "" {
		s.e.Static("/", s.opts.StaticDir)
	}
}

func (s *Server) health(c echo.Context) error {
	if s.db != nil {
		if err := s.db.Ping(c.Request().Context()); err != nil {
			s.log.Warn("health check failed", sl.Err(err))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorHandler answers API routes with the JSON envelope and leaves HTML
// routes to echo's default handler.
func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if !strings.HasPrefix(c.Request().URL.Path, "/api/") {
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}

		code := http.StatusInternalServerError
		msg := response.ErrInternal.Error

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = http.StatusText(code)
		} else {
			log.Error("unhandled error", sl.Err(err))
		}

		if err := c.JSON(code, response.Error(msg)); err != nil {
			log.Error("failed to write error response", sl.Err(err))
		}
	}
}
