// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strings"

	"contacts/config"
	"contacts/internal/delivery/http/response"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" form:"email" validate:"required,email,max=100"`
	Password string `json:"password" form:"password" validate:"required,min=6,maxbytes=72"`
}

// LoginRequest accepts both OAuth2 password form posts and JSON bodies.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// EmailRequest is the body of POST /api/auth/request_email.
type EmailRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset_password.
type ResetPasswordRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6,maxbytes=72"`
}

// AuthHandler serves the account endpoints under /api/auth.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	baseURL string
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		baseURL: strings.TrimRight(cfg.HTTP.BaseURL, "/"),
	}
}

// Register opens an unconfirmed account and mails a confirmation link.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		BaseURL:  h.requestBaseURL(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User registered successfully")
}

// Login exchanges credentials for a bearer access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, token, "Login successful")
}

// ConfirmEmail is the target of the link mailed after registration.
func (h *AuthHandler) ConfirmEmail(c echo.Context) error {
	message, err := h.uc.ConfirmEmail(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: message}, message)
}

// RequestEmail sends a new confirmation link.
func (h *AuthHandler) RequestEmail(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.RequestEmail(c.Request().Context(), req.Email, h.requestBaseURL(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: message}, message)
}

// ResetPassword mails a link that applies the new password once followed.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password reset input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.RequestPasswordReset(c.Request().Context(), &usecase.PasswordResetInput{
		Email:       req.Email,
		NewPassword: req.Password,
		BaseURL:     h.requestBaseURL(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: message}, message)
}

// ConfirmResetPassword applies the password carried by a reset token.
func (h *AuthHandler) ConfirmResetPassword(c echo.Context) error {
	message, err := h.uc.ConfirmPasswordReset(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: message}, message)
}

// requestBaseURL prefers the configured public origin over the request's own.
func (h *AuthHandler) requestBaseURL(c echo.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	return c.Scheme() + "://" + c.Request().Host
}
