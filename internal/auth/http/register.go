package http

import (
	"errors"
	"net/http"

	"github.com/talentsift/talentsift/internal/auth/service"
	"github.com/talentsift/talentsift/pkg/authsdk"
	"github.com/talentsift/talentsift/pkg/httpx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

// RegisterHandler serves POST /v1/auth/register.
type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account with an unverified email address and sends a verification link.
//	@Description	The account cannot access usage endpoints until the emailed token is consumed.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RegisterRequest		true	"Registration details"
//	@Success		201		{object}	authsdk.RegisterResponse	"user, message"
//	@Failure		400		{object}	authsdk.APIError			"validation_error"
//	@Failure		409		{object}	authsdk.APIError			"conflict - email already registered"
//	@Failure		429		{object}	authsdk.APIError			"rate_limit_exceeded"
//	@Failure		500		{object}	authsdk.APIError			"server_error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.AccountService.Register(ctx, req.Email, req.Password, req.Name, req.Organization)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			authsdk.ErrConflict.WithMessage("an account with this email already exists").WriteError(w)
		default:
			log.Error("registration failed", "error", err)
			authsdk.ErrServer.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.RegisterResponse{
		User:    userSummary(user),
		Message: "account created, check your email for a verification link",
	})
}
