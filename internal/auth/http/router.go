package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/talentsift/talentsift/internal/auth/service"
	"github.com/talentsift/talentsift/internal/auth/store"
	"github.com/talentsift/talentsift/pkg/httpx"
	"github.com/talentsift/talentsift/pkg/jwtx"
	"github.com/talentsift/talentsift/pkg/slogx"

	_ "github.com/talentsift/talentsift/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookieSecure bool

	store          store.Store
	TokenService   *service.TokenService
	AccountService *service.AccountService
	UsageService   *service.UsageService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	cookieSecure bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		cookieSecure: cookieSecure,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsage()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TalentSift Auth & Usage API
//	@version		0.1.0
//	@description	Authentication and usage metering service for the TalentSift resume screening
//	@description	platform. Issues HS256-signed JWT access tokens with http-only refresh token
//	@description	cookies, and tracks per-account feature usage counters.
//
//	@contact.name				TalentSift Engineering
//	@contact.url				https://github.com/talentsift/talentsift
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /register - strict rate limit by IP (account creation)
	registerHandler := &RegisterHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (brute force prevention)
	loginHandler := &LoginHandler{TokenService: r.TokenService, CookieSecure: r.cookieSecure}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /refresh - moderate rate limit (cookie-authenticated rotation)
	refreshHandler := &RefreshHandler{TokenService: r.TokenService, CookieSecure: r.cookieSecure}
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /logout - moderate rate limit
	logoutHandler := &LogoutHandler{TokenService: r.TokenService, CookieSecure: r.cookieSecure}
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /verify-email - strict rate limit by IP (token guessing)
	verifyHandler := &VerifyEmailHandler{
		AccountService: r.AccountService,
		TokenService:   r.TokenService,
		CookieSecure:   r.cookieSecure,
	}
	r.Mux.Handle("POST /v1/auth/verify-email",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /resend-verification - strict rate limit by IP (email sending)
	resendHandler := &ResendVerificationHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/auth/resend-verification",
		httpx.Chain(resendHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /forgot-password - strict rate limit by IP (email sending)
	forgotHandler := &ForgotPasswordHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/auth/forgot-password",
		httpx.Chain(forgotHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /reset-password - strict rate limit by IP (token guessing)
	resetHandler := &ResetPasswordHandler{
		AccountService: r.AccountService,
		TokenService:   r.TokenService,
		CookieSecure:   r.cookieSecure,
	}
	r.Mux.Handle("POST /v1/auth/reset-password",
		httpx.Chain(resetHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsage() {
	// The usage endpoints sit behind bearer auth plus the verified-email
	// guard, rate limited per user.
	verified := httpx.RequireVerifiedEmail(r.AccountService.IsEmailVerified)

	usageHandler := &UsageHandler{UsageService: r.UsageService}
	r.Mux.Handle("GET /v1/usage",
		httpx.Chain(usageHandler,
			httpx.AuthnMiddleware(r.verifier),
			verified,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	incrementHandler := &IncrementHandler{UsageService: r.UsageService}
	r.Mux.Handle("POST /v1/usage/increment",
		httpx.Chain(incrementHandler,
			httpx.AuthnMiddleware(r.verifier),
			verified,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
