// Package api provides the HTTP API for the application
package api

import (
	"reposcout/internal/adapters/gemini"
	"reposcout/internal/adapters/github"
	"reposcout/internal/adapters/qloo"
	"reposcout/internal/platform/config"
	"reposcout/internal/platform/logger"
	phttp "reposcout/internal/platform/net/http"

	"reposcout/internal/modkit"
	"reposcout/internal/modkit/httpkit"
	"reposcout/internal/modkit/module"
	"reposcout/internal/modkit/swaggerkit"

	insightmod "reposcout/internal/services/insight/module"
	linkmod "reposcout/internal/services/linkcheck/module"
	recommendmod "reposcout/internal/services/recommend/module"
	signalmod "reposcout/internal/services/signal/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger

	GitHub *github.Client
	Qloo   *qloo.Client
	Gen    *gemini.Client

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		GitHub: opt.GitHub,
		Qloo:   opt.Qloo,
		Gen:    opt.Gen,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		signalmod.New(deps),
		insightmod.New(deps),
		linkmod.New(deps),
		recommendmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
