package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"feedbackboard/internal/auth"
	apperrors "feedbackboard/internal/errors"
	"feedbackboard/internal/flash"
	"feedbackboard/internal/forms"
	"feedbackboard/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	users    service.UserService
	sessions *auth.SessionManager
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(users service.UserService, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// Home redirects the landing page to registration.
func (h *AuthHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/register")
}

// RegisterPage shows the registration form. Logged-in users go straight to
// their profile.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if username := h.sessions.CurrentIdentity(c); username != "" {
		return c.Redirect(http.StatusFound, "/users/"+username)
	}
	return c.Render(http.StatusOK, "register.html", echo.Map{
		"Flash":  flash.Pop(c),
		"Form":   forms.RegisterForm{},
		"Errors": forms.FieldErrors{},
	})
}

// Register creates the account, starts a session and redirects to the new
// profile. Shape and uniqueness failures re-render the form with field
// errors.
func (h *AuthHandler) Register(c echo.Context) error {
	if username := h.sessions.CurrentIdentity(c); username != "" {
		return c.Redirect(http.StatusFound, "/users/"+username)
	}

	var form forms.RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	fieldErrors := forms.Validate(&form)
	if fieldErrors.Any() {
		return h.renderRegister(c, form, fieldErrors)
	}

	ctx := c.Request().Context()
	user, err := h.users.Register(ctx, form.Username, form.Password, form.Email, form.FirstName, form.LastName)
	switch {
	case errors.Is(err, apperrors.ErrUsernameTaken):
		fieldErrors.Add("username", "Username is not available, please pick another.")
		return h.renderRegister(c, form, fieldErrors)
	case errors.Is(err, apperrors.ErrEmailTaken):
		fieldErrors.Add("email", "Email is already registered.")
		return h.renderRegister(c, form, fieldErrors)
	case err != nil:
		return err
	}

	token, err := h.sessions.Issue(ctx, user.Username)
	if err != nil {
		return err
	}
	h.sessions.SetCookie(c, token)
	flash.Set(c, fmt.Sprintf("Welcome %s, your account has been created", user.Username))
	return c.Redirect(http.StatusFound, "/users/"+user.Username)
}

func (h *AuthHandler) renderRegister(c echo.Context, form forms.RegisterForm, fieldErrors forms.FieldErrors) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{
		"Flash":  flash.Pop(c),
		"Form":   form,
		"Errors": fieldErrors,
	})
}

// LoginPage shows the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Flash":  flash.Pop(c),
		"Form":   forms.LoginForm{},
		"Errors": forms.FieldErrors{},
	})
}

// Login authenticates and starts a session. A bad username and a bad
// password get the same generic message on both fields.
func (h *AuthHandler) Login(c echo.Context) error {
	var form forms.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	fieldErrors := forms.Validate(&form)
	if !fieldErrors.Any() {
		ctx := c.Request().Context()
		user, err := h.users.Authenticate(ctx, form.Username, form.Password)
		if err == nil {
			token, err := h.sessions.Issue(ctx, user.Username)
			if err != nil {
				return err
			}
			h.sessions.SetCookie(c, token)
			flash.Set(c, fmt.Sprintf("Welcome back %s!", user.Username))
			return c.Redirect(http.StatusFound, "/users/"+user.Username)
		}
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			return err
		}
		fieldErrors.Add("username", apperrors.ErrInvalidCredentials.Error())
		fieldErrors.Add("password", apperrors.ErrInvalidCredentials.Error())
	}

	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Flash":  flash.Pop(c),
		"Form":   form,
		"Errors": fieldErrors,
	})
}

// Logout revokes the session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		_ = h.sessions.Revoke(c.Request().Context(), cookie.Value)
	}
	h.sessions.ClearCookie(c)
	flash.Set(c, "Goodbye!")
	return c.Redirect(http.StatusFound, "/")
}
