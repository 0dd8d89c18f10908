package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fosfenos/internal/lib/logger/sl"
	"fosfenos/internal/middleware"
	"fosfenos/internal/services/auth"
	"fosfenos/internal/transport/http/dto/request"
	"fosfenos/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const (
	adminHome = "/admin"
	loginPage = "/admin/login"
)

// SignIn godoc
// @Summary Sign in
// @Description Checks email and password and issues a session token. The token is returned in the body and bound to the cookie session. Form posts are redirected instead.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=models.Session}
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/auth/signin [post]
func (r *Routers) SignIn(c echo.Context) error {
	const op = "http.routers.SignIn"

	log := r.log.With(
		slog.String("op", op),
	)

	form := strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm)

	fail := func() error {
		if form {
			return c.Redirect(http.StatusSeeOther, loginPage+"?error=1")
		}
		return c.JSON(http.StatusUnauthorized, response.ErrInvalidCredentials)
	}

	var req request.LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("malformed credentials", sl.Err(err))
		return fail()
	}
	if err := c.Validate(req); err != nil {
		log.Warn("invalid credentials format", sl.Err(err))
		return fail()
	}

	sess, err := r.AuthService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fail()
		}

		log.Error("login failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	if err := middleware.SaveSession(c, sess.Token, int(r.tokenTTL.Seconds())); err != nil {
		log.Error("failed to save session", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	if form {
		return c.Redirect(http.StatusSeeOther, adminHome)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sess))
}

// SignOut godoc
// @Summary Sign out
// @Description Clears the cookie session. Bearer tokens stay valid until they expire.
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/auth/signout [post]
func (r *Routers) SignOut(c echo.Context) error {
	const op = "http.routers.SignOut"

	if err := middleware.ClearSession(c); err != nil {
		r.log.With(slog.String("op", op)).Warn("failed to clear session", sl.Err(err))
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Signed out"))
}

// Session godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response{data=models.SessionUser}
// @Failure 401 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/session [get]
func (r *Routers) Session(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(user))
}
