package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/clientdesk/clientdesk/internal/report/service"
	"github.com/clientdesk/clientdesk/internal/report/store"
	"github.com/clientdesk/clientdesk/pkg/httpx"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	SessionService *service.SessionService
	LedgerService  *service.LedgerService
	TokenService   *service.TokenService
	AuditService   *service.AuditService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerLedger()
	r.registerPortal()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSession() {
	h := &SessionHandler{SessionService: r.SessionService}

	// POST /session - strict rate limit by IP (brute force prevention)
	r.Mux.Handle("POST /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// DELETE /session - session required
	r.Mux.Handle("DELETE /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RequireSession(r.SessionService),
		),
	)
}

func (r *Router) registerLedger() {
	clients := &ClientsHandler{
		LedgerService: r.LedgerService,
		TokenService:  r.TokenService,
	}
	projects := &ProjectsHandler{LedgerService: r.LedgerService}
	payments := &PaymentsHandler{LedgerService: r.LedgerService}
	audit := &AuditHandler{AuditService: r.AuditService}

	// Every admin endpoint requires a live session; mutation endpoints get a
	// moderate per-IP limit on top.
	admin := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h,
			httpx.RequireSession(r.SessionService),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/clients", admin(clients.HandleList))
	r.Mux.Handle("POST /v1/clients", admin(clients.HandleCreate))
	r.Mux.Handle("POST /v1/clients/{id}/link", admin(clients.HandleIssueLink))

	r.Mux.Handle("GET /v1/projects", admin(projects.HandleList))
	r.Mux.Handle("POST /v1/projects", admin(projects.HandleCreate))
	r.Mux.Handle("PATCH /v1/projects/{id}", admin(projects.HandleSetStatus))

	r.Mux.Handle("GET /v1/payments", admin(payments.HandleList))
	r.Mux.Handle("POST /v1/payments", admin(payments.HandleCreate))

	r.Mux.Handle("GET /v1/overview", admin(projects.HandleOverview))
	r.Mux.Handle("GET /v1/audit", admin(audit.HandleList))
}

func (r *Router) registerPortal() {
	h := &PortalHandler{
		SessionService: r.SessionService,
		LedgerService:  r.LedgerService,
	}

	// GET /portal/{token} - public endpoint, rate limited by IP
	r.Mux.Handle("GET /v1/portal/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleAccess),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
