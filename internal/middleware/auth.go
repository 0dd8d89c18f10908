package middleware

import (
	"net/http"
	"strings"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/transport/http/dto/response"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	SessionName = "fosfenos_session"

	sessionTokenKey = "token"
	userContextKey  = "session_user"
)

type TokenVerifier interface {
	Verify(token string) (models.SessionUser, error)
}

// Authenticate binds the caller to the echo context when a valid token is
// presented, first as a Bearer header and then through the cookie session.
// It never rejects a request; RequireRole does.
func Authenticate(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, ok := bearerUser(c, v); ok {
				c.Set(userContextKey, user)
				return next(c)
			}

			if token := SessionToken(c); token != "" {
				if user, err := v.Verify(token); err == nil {
					c.Set(userContextKey, user)
				}
			}

			return next(c)
		}
	}
}

func bearerUser(c echo.Context, v TokenVerifier) (models.SessionUser, bool) {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return models.SessionUser{}, false
	}

	user, err := v.Verify(strings.TrimSpace(h[7:]))
	if err != nil {
		return models.SessionUser{}, false
	}

	return user, true
}

func CurrentUser(c echo.Context) (models.SessionUser, bool) {
	user, ok := c.Get(userContextKey).(models.SessionUser)
	return user, ok
}

// RequireRole answers 401 without a bound user and 403 for any other role.
func RequireRole(role models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
			}
			if user.Role != role {
				return c.JSON(http.StatusForbidden, response.ErrForbidden)
			}
			return next(c)
		}
	}
}

// RequireRoleOrRedirect is RequireRole for HTML pages.
func RequireRoleOrRedirect(role models.Role, to string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok || user.Role != role {
				return c.Redirect(http.StatusSeeOther, to)
			}
			return next(c)
		}
	}
}

func SessionToken(c echo.Context) string {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[sessionTokenKey].(string)
	return token
}

// SaveSession stores token in the cookie session for maxAge seconds.
func SaveSession(c echo.Context, token string, maxAge int) error {
	sess, err := session.Get(SessionName, c)
	if err != nil && sess == nil {
		return err
	}

	sess.Options = sessionOptions(c, maxAge)
	sess.Values[sessionTokenKey] = token

	return sess.Save(c.Request(), c.Response())
}

func ClearSession(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil && sess == nil {
		return err
	}

	sess.Options = sessionOptions(c, -1)
	delete(sess.Values, sessionTokenKey)

	return sess.Save(c.Request(), c.Response())
}

func sessionOptions(c echo.Context, maxAge int) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	}
}
