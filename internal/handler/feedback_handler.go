package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"feedbackboard/internal/auth"
	"feedbackboard/internal/flash"
	"feedbackboard/internal/forms"
	"feedbackboard/internal/model"
	"feedbackboard/internal/service"
)

// FeedbackHandler handles feedback create, update and delete.
type FeedbackHandler struct {
	feedback service.FeedbackService
	users    service.UserService
	sessions *auth.SessionManager
}

// NewFeedbackHandler creates a feedback handler.
func NewFeedbackHandler(feedback service.FeedbackService, users service.UserService, sessions *auth.SessionManager) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, users: users, sessions: sessions}
}

// AddPage shows the add-feedback form. Unknown profile → 404; non-owner →
// flash and back to the landing page.
func (h *FeedbackHandler) AddPage(c echo.Context) error {
	username := c.Param("username")
	if _, err := h.users.Get(c.Request().Context(), username); err != nil {
		return notFoundOr(err)
	}
	if !auth.CanModifyUser(h.sessions.CurrentIdentity(c), username) {
		flash.Set(c, "You must be logged in to perform this action.")
		return c.Redirect(http.StatusFound, "/")
	}
	return h.renderAdd(c, username, forms.FeedbackForm{}, forms.FieldErrors{})
}

// Add creates feedback owned by the profile user and redirects to the
// profile.
func (h *FeedbackHandler) Add(c echo.Context) error {
	username := c.Param("username")
	ctx := c.Request().Context()
	if _, err := h.users.Get(ctx, username); err != nil {
		return notFoundOr(err)
	}
	identity := h.sessions.CurrentIdentity(c)
	if !auth.CanModifyUser(identity, username) {
		flash.Set(c, "You must be logged in to perform this action.")
		return c.Redirect(http.StatusFound, "/")
	}

	var form forms.FeedbackForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	fieldErrors := forms.Validate(&form)
	if fieldErrors.Any() {
		return h.renderAdd(c, username, form, fieldErrors)
	}

	if _, err := h.feedback.Add(ctx, form.Title, form.Content, identity); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/users/"+username)
}

func (h *FeedbackHandler) renderAdd(c echo.Context, username string, form forms.FeedbackForm, fieldErrors forms.FieldErrors) error {
	return c.Render(http.StatusOK, "feedback_add.html", echo.Map{
		"Flash":    flash.Pop(c),
		"Username": username,
		"Form":     form,
		"Errors":   fieldErrors,
	})
}

// UpdatePage shows the edit form prefilled with the current values. The
// route sits behind the session guard.
func (h *FeedbackHandler) UpdatePage(c echo.Context) error {
	fb, err := h.lookup(c)
	if err != nil {
		return err
	}
	if !auth.CanModifyFeedback(auth.Identity(c), fb) {
		flash.Set(c, "You must be logged in to perform this action.")
		return c.Redirect(http.StatusFound, "/login")
	}
	form := forms.FeedbackForm{Title: fb.Title, Content: fb.Content}
	return h.renderUpdate(c, fb, form, forms.FieldErrors{})
}

// Update mutates title and content, owner only.
func (h *FeedbackHandler) Update(c echo.Context) error {
	fb, err := h.lookup(c)
	if err != nil {
		return err
	}
	if !auth.CanModifyFeedback(auth.Identity(c), fb) {
		flash.Set(c, "You must be logged in to perform this action.")
		return c.Redirect(http.StatusFound, "/login")
	}

	var form forms.FeedbackForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	fieldErrors := forms.Validate(&form)
	if fieldErrors.Any() {
		return h.renderUpdate(c, fb, form, fieldErrors)
	}

	if err := h.feedback.Update(c.Request().Context(), fb.ID, form.Title, form.Content); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/users/"+fb.Username)
}

// Delete removes a feedback row, owner only.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	fb, err := h.lookup(c)
	if err != nil {
		return err
	}
	if !auth.CanModifyFeedback(auth.Identity(c), fb) {
		flash.Set(c, "You must be logged in to perform this action.")
		return c.Redirect(http.StatusFound, "/login")
	}

	if err := h.feedback.Delete(c.Request().Context(), fb.ID); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/users/"+fb.Username)
}

func (h *FeedbackHandler) renderUpdate(c echo.Context, fb *model.Feedback, form forms.FeedbackForm, fieldErrors forms.FieldErrors) error {
	return c.Render(http.StatusOK, "feedback_update.html", echo.Map{
		"Flash":    flash.Pop(c),
		"Feedback": fb,
		"Form":     form,
		"Errors":   fieldErrors,
	})
}

// lookup resolves the :id path parameter to a feedback row or a 404.
func (h *FeedbackHandler) lookup(c echo.Context) (*model.Feedback, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	fb, err := h.feedback.Get(c.Request().Context(), uint(id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return fb, nil
}
