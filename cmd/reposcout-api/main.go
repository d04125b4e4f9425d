// @title         RepoScout API
// @version       0.1.0
// @description   Repository recommendations fusing technical and cultural signals

package main

import (
	"context"

	"reposcout/internal/adapters/gemini"
	"reposcout/internal/adapters/github"
	"reposcout/internal/adapters/qloo"
	"reposcout/internal/platform/config"
	"reposcout/internal/platform/logger"
	phttp "reposcout/internal/platform/net/http"

	"reposcout/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ghCfg := root.Prefix("GITHUB_")
	qlooCfg := root.Prefix("QLOO_")
	genCfg := root.Prefix("GENAI_")

	// bring up logging early
	l := logger.Get()

	gh := github.NewClient(github.Options{
		BaseURL:    ghCfg.MayString("BASE_URL", ""),
		TokensCSV:  ghCfg.MayString("TOKENS", ""),
		Timeout:    ghCfg.MayDuration("TIMEOUT", 0),
		MaxRetries: ghCfg.MayInt("MAX_RETRIES", 0),
	})

	ql := qloo.NewClient(qloo.Options{
		BaseURL: qlooCfg.MayString("BASE_URL", ""),
		APIKey:  qlooCfg.MayString("API_KEY", ""),
		Timeout: qlooCfg.MayDuration("TIMEOUT", 0),
	})

	// the generative tier is optional; without a key every request resolves
	// through the deterministic heuristic
	var gen *gemini.Client
	if key := genCfg.MayString("API_KEY", ""); key != "" {
		g, err := gemini.NewClient(context.Background(), gemini.Options{
			APIKey:            key,
			Model:             genCfg.MayString("MODEL", ""),
			StructuredTimeout: genCfg.MayDuration("STRUCTURED_TIMEOUT", 0),
			TextTimeout:       genCfg.MayDuration("TEXT_TIMEOUT", 0),
		})
		if err != nil {
			l.Panic().Err(err).Msg("genai client init failed")
		}
		gen = g
	} else {
		l.Warn().Msg("GENAI_API_KEY not set, serving heuristic recommendations only")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			GitHub:         gh,
			Qloo:           ql,
			Gen:            gen,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
