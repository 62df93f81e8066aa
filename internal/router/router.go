package router

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"feedbackboard/internal/auth"
	apperrors "feedbackboard/internal/errors"
	"feedbackboard/internal/flash"
	"feedbackboard/internal/handler"
	"feedbackboard/internal/view"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *auth.SessionManager,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	feedbackHandler *handler.FeedbackHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Renderer = view.Must()
	e.HTTPErrorHandler = errorBoundary

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// The session guard resolves the cookie token, threads the identity
	// through the request context and bounces anonymous requests to the
	// login page.
	sessionGuard := echojwt.WithConfig(echojwt.Config{
		ContextKey:  auth.IdentityContextKey,
		TokenLookup: "cookie:" + auth.SessionCookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return sessions.Resolve(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			flash.Set(c, "Please log-in first.")
			return c.Redirect(http.StatusFound, "/login")
		},
	})

	// Public routes
	e.GET("/", authHandler.Home)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// Routes that redirect anonymous requests to /login
	e.GET("/users/:username", userHandler.Show, sessionGuard)
	e.GET("/feedback/:id/update", feedbackHandler.UpdatePage, sessionGuard)
	e.POST("/feedback/:id/update", feedbackHandler.Update, sessionGuard)
	e.POST("/feedback/:id/delete", feedbackHandler.Delete, sessionGuard)

	// Owner-only routes that bounce to the landing page instead; the
	// handlers check identity themselves.
	e.POST("/users/:username/delete", userHandler.Delete)
	e.GET("/users/:username/feedback/add", feedbackHandler.AddPage)
	e.POST("/users/:username/feedback/add", feedbackHandler.Add)
}

// errorBoundary renders the generic error page for anything the routes did
// not recover: 404s and storage failures.
func errorBoundary(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := apperrors.StatusFor(err)
	message := "Something went wrong."
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}
	if code == http.StatusNotFound {
		message = "We could not find what you were looking for."
	}

	if renderErr := c.Render(code, "error.html", echo.Map{
		"Code":    code,
		"Message": message,
	}); renderErr != nil {
		c.Logger().Error(renderErr)
	}
}
