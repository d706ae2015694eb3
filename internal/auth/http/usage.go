package http

import (
	"errors"
	"net/http"

	"github.com/talentsift/talentsift/internal/auth/domain"
	"github.com/talentsift/talentsift/internal/auth/service"
	"github.com/talentsift/talentsift/internal/auth/store"
	"github.com/talentsift/talentsift/pkg/authsdk"
	"github.com/talentsift/talentsift/pkg/httpx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

// UsageHandler serves GET /v1/usage.
type UsageHandler struct {
	UsageService *service.UsageService
}

// ServeHTTP godoc
//
//	@Summary		Current usage counters
//	@Description	Returns the caller's usage counters together with the configured limits and the
//	@Description	remaining headroom for capped counters.
//	@Tags			Usage
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.UsageResponse	"counters, limits, remaining"
//	@Failure		401	{object}	authsdk.APIError		"authentication_error"
//	@Failure		403	{object}	authsdk.APIError		"verification_required"
//	@Failure		429	{object}	authsdk.APIError		"rate_limit_exceeded"
//	@Failure		500	{object}	authsdk.APIError		"server_error"
//	@Router			/v1/usage [get].
func (h *UsageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	usage, err := h.UsageService.Snapshot(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token subject no longer maps to an account.
			authsdk.ErrAuthentication.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("usage snapshot failed", "error", err)
		authsdk.ErrServer.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, usageResponse(usage))
}

// IncrementHandler serves POST /v1/usage/increment.
type IncrementHandler struct {
	UsageService *service.UsageService
}

// ServeHTTP godoc
//
//	@Summary		Advance a usage counter
//	@Description	Atomically increments one counter for the account identified by email and returns
//	@Description	the updated snapshot. Capped counters refuse increments that would pass the ceiling
//	@Description	and leave the counter untouched.
//	@Tags			Usage
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		authsdk.IncrementRequest	true	"Counter increment"
//	@Success		200		{object}	authsdk.UsageResponse		"counters, limits, remaining"
//	@Failure		400		{object}	authsdk.APIError			"validation_error"
//	@Failure		401		{object}	authsdk.APIError			"authentication_error"
//	@Failure		403		{object}	authsdk.APIError			"verification_required"
//	@Failure		404		{object}	authsdk.APIError			"not_found - no account for email"
//	@Failure		429		{object}	authsdk.APIError			"rate_limit_exceeded - counter ceiling reached"
//	@Failure		500		{object}	authsdk.APIError			"server_error"
//	@Router			/v1/usage/increment [post].
func (h *IncrementHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req incrementRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	counter, err := domain.ParseCounter(req.Counter)
	if err != nil {
		authsdk.ErrValidation.WithDetails(map[string]string{"counter": "unknown counter"}).WriteError(w)
		return
	}

	amount := req.Amount
	if amount == 0 {
		amount = 1
	}

	usage, err := h.UsageService.Increment(ctx, req.Email, counter, amount)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			authsdk.ErrNotFound.WithMessage("no account for this email").WriteError(w)
		case errors.Is(err, store.ErrLimitReached):
			authsdk.ErrRateLimited.WithMessage("counter limit reached").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("usage increment failed", "error", err)
			authsdk.ErrServer.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, usageResponse(usage))
}

func usageResponse(u domain.Usage) authsdk.UsageResponse {
	return authsdk.UsageResponse{
		Counters:  u.Counters,
		Limits:    u.Limits,
		Remaining: u.Remaining,
	}
}
