package http

import (
	"errors"
	"net/http"

	"github.com/talentsift/talentsift/internal/auth/service"
	"github.com/talentsift/talentsift/pkg/authsdk"
	"github.com/talentsift/talentsift/pkg/httpx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

// VerifyEmailHandler serves POST /v1/auth/verify-email.
type VerifyEmailHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
	CookieSecure   bool
}

// ServeHTTP godoc
//
//	@Summary		Verify an email address
//	@Description	Consumes a verification token from the emailed link. The token is single use.
//	@Description	On success the account is signed in and a token pair is issued.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.VerifyEmailRequest	true	"Verification token"
//	@Success		200		{object}	authsdk.AuthResponse		"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	authsdk.APIError			"validation_error"
//	@Failure		401		{object}	authsdk.APIError			"authentication_error - invalid or expired token"
//	@Failure		409		{object}	authsdk.APIError			"conflict - email already verified"
//	@Failure		429		{object}	authsdk.APIError			"rate_limit_exceeded"
//	@Failure		500		{object}	authsdk.APIError			"server_error"
//	@Router			/v1/auth/verify-email [post].
func (h *VerifyEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req verifyEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.AccountService.VerifyEmail(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			authsdk.ErrAuthentication.WithMessage("invalid verification token").WriteError(w)
		case errors.Is(err, service.ErrTokenExpired):
			authsdk.ErrAuthentication.WithMessage("verification token has expired").WriteError(w)
		case errors.Is(err, service.ErrAlreadyVerified):
			authsdk.ErrConflict.WithMessage("email address is already verified").WriteError(w)
		default:
			log.Error("email verification failed", "error", err)
			authsdk.ErrServer.WriteError(w)
		}
		return
	}

	pair, err := h.TokenService.IssueForUser(ctx, user)
	if err != nil {
		log.Error("token issuance after verification failed", "error", err)
		authsdk.ErrServer.WriteError(w)
		return
	}

	writeAuthResponse(w, pair, user, h.CookieSecure)
}

// ResendVerificationHandler serves POST /v1/auth/resend-verification.
type ResendVerificationHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Resend the verification email
//	@Description	Issues a fresh verification token, invalidating the previous one. The response is
//	@Description	identical whether or not the address has an account, so it cannot be used to probe
//	@Description	for registered emails.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.EmailRequest	true	"Email address"
//	@Success		200		{object}	authsdk.GenericResponse	"message"
//	@Failure		400		{object}	authsdk.APIError		"validation_error"
//	@Failure		429		{object}	authsdk.APIError		"rate_limit_exceeded"
//	@Failure		500		{object}	authsdk.APIError		"server_error"
//	@Router			/v1/auth/resend-verification [post].
func (h *ResendVerificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req emailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.AccountService.ResendVerification(ctx, req.Email); err != nil {
		slogx.FromContext(ctx).Error("resend verification failed", "error", err)
		authsdk.ErrServer.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.GenericResponse{
		Message: "if the address has an unverified account, a new verification email has been sent",
	})
}
