// Package module wires recommendation generation into the API using modkit
package module

import (
	"net/http"

	modkit "reposcout/internal/modkit"
	"reposcout/internal/modkit/httpkit"
	str "reposcout/internal/platform/strings"
	insightsvc "reposcout/internal/services/insight/service"
	linksvc "reposcout/internal/services/linkcheck/service"
	rechttp "reposcout/internal/services/recommend/http"
	recsvc "reposcout/internal/services/recommend/service"
	signalsvc "reposcout/internal/services/signal/service"
)

// Module implements the recommend module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc recsvc.Service
}

// New constructs the recommend module. The generative tier degrades to the
// deterministic heuristic when no model client is configured
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("recommend"), modkit.WithPrefix("/recommendations")}, opts...)...)

	var gen recsvc.GeneratorPort
	if deps.Gen != nil {
		gen = deps.Gen
	}
	svc := recsvc.New(
		signalsvc.New(deps.GitHub),
		insightsvc.New(deps.Qloo),
		linksvc.New(deps.GitHub),
		gen,
	)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptRecommendPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		rechttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
