package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/clicktionary-backend/internal/config"
	"github.com/heartmarshall/clicktionary-backend/internal/transport/middleware"
)

// Rate limit scopes.
const (
	ScopeLookup = "lookup"
	ScopeImport = "import"
)

// RouterDeps collects what NewRouter mounts. Metrics, Gatherer and Limiter
// are optional.
type RouterDeps struct {
	Reader     *ReaderHandler
	Words      *WordHandler
	Vocabulary *VocabularyHandler
	Health     *HealthHandler

	Metrics   *middleware.Metrics
	Gatherer  prometheus.Gatherer
	Limiter   *middleware.RateLimiter
	RateLimit config.RateLimitConfig
}

type router struct {
	mux  *http.ServeMux
	deps RouterDeps
}

// NewRouter registers every route on a new ServeMux. Request-wide
// middleware (request ID, auth, logging) is applied by the caller.
func NewRouter(deps RouterDeps) *http.ServeMux {
	rt := &router{mux: http.NewServeMux(), deps: deps}

	lookupLimit := rt.limit(ScopeLookup, deps.RateLimit.LookupPerMinute)
	importLimit := rt.limit(ScopeImport, deps.RateLimit.ImportPerMinute)

	rt.handle("POST /api/analyze", deps.Reader.Analyze)
	rt.handle("POST /api/import", deps.Reader.Import, importLimit)
	rt.handle("POST /api/translate", deps.Reader.Translate, lookupLimit)

	rt.handle("GET /api/words/{word}", deps.Words.Lookup, lookupLimit)
	rt.handle("GET /api/languages", deps.Words.Languages)

	rt.handle("GET /api/vocabulary", deps.Vocabulary.List, middleware.RequireUser)
	rt.handle("POST /api/vocabulary", deps.Vocabulary.Create, middleware.RequireUser)
	rt.handle("GET /api/vocabulary/export", deps.Vocabulary.Export, middleware.RequireUser)
	rt.handle("POST /api/vocabulary/import", deps.Vocabulary.Import, middleware.RequireUser, importLimit)
	rt.handle("GET /api/vocabulary/{id}", deps.Vocabulary.Get, middleware.RequireUser)
	rt.handle("PATCH /api/vocabulary/{id}", deps.Vocabulary.UpdateNote, middleware.RequireUser)
	rt.handle("DELETE /api/vocabulary/{id}", deps.Vocabulary.Delete, middleware.RequireUser)

	rt.mux.HandleFunc("GET /live", deps.Health.Live)
	rt.mux.HandleFunc("GET /ready", deps.Health.Ready)
	rt.mux.HandleFunc("GET /health", deps.Health.Health)

	if deps.Gatherer != nil {
		rt.mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	return rt.mux
}

func (rt *router) handle(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
	var instrument middleware.Middleware
	if rt.deps.Metrics != nil {
		instrument = rt.deps.Metrics.Instrument(pattern)
	}
	chain := middleware.Chain(append([]middleware.Middleware{instrument}, mws...)...)
	rt.mux.Handle(pattern, chain(h))
}

func (rt *router) limit(scope string, perMinute int) middleware.Middleware {
	if rt.deps.Limiter == nil || !rt.deps.RateLimit.Enabled {
		return nil
	}
	return rt.deps.Limiter.Limit(scope, perMinute)
}
