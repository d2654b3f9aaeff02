package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/teamgatehq/teamgate/internal/tenant/service"
	"github.com/teamgatehq/teamgate/internal/tenant/store"
	"github.com/teamgatehq/teamgate/pkg/httpx"
	"github.com/teamgatehq/teamgate/pkg/slogx"

	_ "github.com/teamgatehq/teamgate/api/tenant" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	// PublicBaseURL is the externally reachable base URL, used to build
	// shareable invitation links.
	PublicBaseURL string

	GuardService      *service.GuardService
	OnboardingService *service.OnboardingService
	InvitationService *service.InvitationService
	UserService       *service.UserService
	CompanyService    *service.CompanyService
	AuthHandler       *AuthHandler
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
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
	r.registerOnboarding()
	r.registerAuth()
	r.registerInvitations()
	r.registerUsers()
	r.registerCompany()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TeamGate Tenant Service API
//	@version		0.1.0
//	@description	Multi-tenant company onboarding and access control: company signup, role-based
//	@description	authorization (admin, manager, employee) and an email-token invitation lifecycle.
//	@description
//	@description				Session tokens are EdDSA-signed JWTs backed by revocable server-side sessions.
//
//	@contact.name				TeamGate Team
//	@contact.url				https://github.com/teamgatehq/teamgate
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
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerOnboarding() {
	// POST /onboarding/company-signup - strict rate limit by IP (public
	// account-creation endpoint)
	signupHandler := &CompanySignupHandler{OnboardingService: r.OnboardingService}
	r.Mux.Handle("POST /onboarding/company-signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAuth() {
	// POST /auth/register - strict rate limit by IP (public endpoint)
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(r.AuthHandler.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (credential endpoint)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(r.AuthHandler.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/logout - moderate rate limit by IP. Not behind
	// AuthnMiddleware: accounts without a member record can still log out.
	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(http.HandlerFunc(r.AuthHandler.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	issueHandler := &InvitationIssueHandler{
		InvitationService: r.InvitationService,
		PublicBaseURL:     r.PublicBaseURL,
	}
	listHandler := &InvitationListHandler{InvitationService: r.InvitationService}
	resolveHandler := &InvitationResolveHandler{InvitationService: r.InvitationService}
	acceptHandler := &InvitationAcceptHandler{
		InvitationService: r.InvitationService,
		Identity:          r.AuthHandler.Identity,
	}

	// POST /invitations - moderate rate limit by user (admin operation)
	r.Mux.Handle("POST /invitations",
		httpx.Chain(issueHandler,
			AuthnMiddleware(r.GuardService),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)

	// GET /invitations - lenient rate limit by user (admin read)
	r.Mux.Handle("GET /invitations",
		httpx.Chain(listHandler,
			AuthnMiddleware(r.GuardService),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	// POST /invitations/accept - strict rate limit by IP (public signup
	// endpoint; registered before the {token} pattern so it can't be
	// shadowed)
	r.Mux.Handle("POST /invitations/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /invitations/{token} - moderate rate limit by IP (public token
	// lookup; moderate rather than lenient to slow token scanning)
	r.Mux.Handle("GET /invitations/{token}",
		httpx.Chain(resolveHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}
	meHandler := &MeHandler{
		GuardService:   r.GuardService,
		CompanyService: r.CompanyService,
	}

	// GET /users - lenient rate limit by user (read)
	r.Mux.Handle("GET /users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			AuthnMiddleware(r.GuardService),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	// PUT /users/{id}/role - moderate rate limit by user (admin mutation)
	r.Mux.Handle("PUT /users/{id}/role",
		httpx.Chain(http.HandlerFunc(h.HandleChangeRole),
			AuthnMiddleware(r.GuardService),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)

	// DELETE /users/{id} - moderate rate limit by user (admin mutation)
	r.Mux.Handle("DELETE /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			AuthnMiddleware(r.GuardService),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)

	// GET /me - lenient rate limit by user
	r.Mux.Handle("GET /me",
		httpx.Chain(meHandler,
			AuthnMiddleware(r.GuardService),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerCompany() {
	h := &CompanyHandler{CompanyService: r.CompanyService}

	// GET /company - lenient rate limit by user (read)
	r.Mux.Handle("GET /company",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			AuthnMiddleware(r.GuardService),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	// PUT /company - moderate rate limit by user (admin mutation)
	r.Mux.Handle("PUT /company",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			AuthnMiddleware(r.GuardService),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
