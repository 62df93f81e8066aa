package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"feedbackboard/internal/auth"
	"feedbackboard/internal/flash"
	"feedbackboard/internal/service"
)

// UserHandler handles profile pages and account deletion.
type UserHandler struct {
	users    service.UserService
	sessions *auth.SessionManager
}

// NewUserHandler creates a user handler.
func NewUserHandler(users service.UserService, sessions *auth.SessionManager) *UserHandler {
	return &UserHandler{users: users, sessions: sessions}
}

// Show renders a profile with its feedback list. The route sits behind the
// session guard; any logged-in user may view any profile.
func (h *UserHandler) Show(c echo.Context) error {
	identity := auth.Identity(c)
	if !auth.CanViewProfile(identity) {
		flash.Set(c, "Please log-in first.")
		return c.Redirect(http.StatusFound, "/login")
	}

	user, err := h.users.Get(c.Request().Context(), c.Param("username"))
	if err != nil {
		return notFoundOr(err)
	}

	return c.Render(http.StatusOK, "profile.html", echo.Map{
		"Flash":    flash.Pop(c),
		"User":     user,
		"Identity": identity,
	})
}

// Delete removes the account and all its feedback, then revokes every live
// session the account holds so no other browser keeps a working login.
// Only the owner may do this; anyone else is bounced to the landing page.
func (h *UserHandler) Delete(c echo.Context) error {
	target := c.Param("username")
	identity := h.sessions.CurrentIdentity(c)
	if !auth.CanModifyUser(identity, target) {
		flash.Set(c, "You must be logged in to perform this action.")
		return c.Redirect(http.StatusFound, "/")
	}

	ctx := c.Request().Context()
	if err := h.users.Delete(ctx, target); err != nil {
		return err
	}
	_ = h.sessions.RevokeAllFor(ctx, target)
	h.sessions.ClearCookie(c)
	return c.Redirect(http.StatusFound, "/")
}

// notFoundOr maps missing records to a 404 and passes storage failures
// through to the error boundary.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return err
}
