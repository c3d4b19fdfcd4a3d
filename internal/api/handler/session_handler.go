package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mukhtar-travel/trip-platform/internal/api/metrics"
	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

type SessionHandler struct {
	sessions ports.SessionService
	resets   ports.ResetService
	tokens   *TokenIssuer
}

func NewSessionHandler(sessions ports.SessionService, resets ports.ResetService, tokens *TokenIssuer) *SessionHandler {
	return &SessionHandler{sessions: sessions, resets: resets, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty"`
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=tourist organizer"`
}

type updateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token string `json:"token" validate:"required"`
}

type sessionResponse struct {
	Token string           `json:"token,omitempty"`
	User  *domain.Identity `json:"user,omitempty"`
}

// Login starts a session for the given email.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	identity, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(identity)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(identity.Role)).Inc()
	return c.JSON(http.StatusOK, sessionResponse{Token: token, User: identity})
}

// Signup registers a new account and starts a session.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *SessionHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	identity, err := h.sessions.Signup(c.Request().Context(), ports.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(identity)
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(identity.Role)).Inc()
	return c.JSON(http.StatusCreated, sessionResponse{Token: token, User: identity})
}

// Logout ends the current session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204   "No Content"
// @Router       /auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current session identity.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/me [get]
func (h *SessionHandler) Me(c echo.Context) error {
	snap := h.sessions.Snapshot()
	if snap.Identity == nil {
		return domain.ErrNoSession
	}
	return c.JSON(http.StatusOK, sessionResponse{User: snap.Identity})
}

// UpdateProfile merges the provided fields into the current identity.
//
// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/profile [put]
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	identity, err := h.sessions.UpdateIdentity(c.Request().Context(), domain.IdentityPatch{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if err != nil {
		return err
	}
	if identity == nil {
		return domain.ErrNoSession
	}

	return c.JSON(http.StatusOK, sessionResponse{User: identity})
}

// ForgotPassword issues a password reset link by email.
//
// @Summary      Request password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /auth/forgot-password [post]
func (h *SessionHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.resets.Request(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, map[string]string{"status": "reset link sent"})
}

// ResetPassword consumes a token from a mailed reset link.
//
// @Summary      Confirm password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Reset token"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /auth/reset-password [post]
func (h *SessionHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.resets.Confirm(c.Request().Context(), req.Token); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "reset confirmed"})
}
