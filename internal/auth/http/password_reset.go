package http

import (
	"errors"
	"net/http"

	"github.com/talentsift/talentsift/internal/auth/service"
	"github.com/talentsift/talentsift/pkg/authsdk"
	"github.com/talentsift/talentsift/pkg/httpx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

// ForgotPasswordHandler serves POST /v1/auth/forgot-password.
type ForgotPasswordHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Request a password reset
//	@Description	Emails a single-use reset link. The response is identical whether or not the
//	@Description	address has an account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.EmailRequest	true	"Email address"
//	@Success		200		{object}	authsdk.GenericResponse	"message"
//	@Failure		400		{object}	authsdk.APIError		"validation_error"
//	@Failure		429		{object}	authsdk.APIError		"rate_limit_exceeded"
//	@Failure		500		{object}	authsdk.APIError		"server_error"
//	@Router			/v1/auth/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req emailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.AccountService.ForgotPassword(ctx, req.Email); err != nil {
		slogx.FromContext(ctx).Error("forgot password failed", "error", err)
		authsdk.ErrServer.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.GenericResponse{
		Message: "if the address has an account, a password reset email has been sent",
	})
}

// ResetPasswordHandler serves POST /v1/auth/reset-password.
type ResetPasswordHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
	CookieSecure   bool
}

// ServeHTTP godoc
//
//	@Summary		Reset the password
//	@Description	Consumes a reset token and replaces the password. The token is single use and any
//	@Description	existing session is revoked. On success the account is signed in with fresh tokens.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.ResetPasswordRequest	true	"Reset token and new password"
//	@Success		200		{object}	authsdk.AuthResponse			"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	authsdk.APIError				"validation_error"
//	@Failure		401		{object}	authsdk.APIError				"authentication_error - invalid or expired token"
//	@Failure		429		{object}	authsdk.APIError				"rate_limit_exceeded"
//	@Failure		500		{object}	authsdk.APIError				"server_error"
//	@Router			/v1/auth/reset-password [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req resetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.AccountService.ResetPassword(ctx, req.Token, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			authsdk.ErrAuthentication.WithMessage("invalid reset token").WriteError(w)
		case errors.Is(err, service.ErrTokenExpired):
			authsdk.ErrAuthentication.WithMessage("reset token has expired").WriteError(w)
		default:
			log.Error("password reset failed", "error", err)
			authsdk.ErrServer.WriteError(w)
		}
		return
	}

	pair, err := h.TokenService.IssueForUser(ctx, user)
	if err != nil {
		log.Error("token issuance after reset failed", "error", err)
		authsdk.ErrServer.WriteError(w)
		return
	}

	writeAuthResponse(w, pair, user, h.CookieSecure)
}
