// Package modkit provides module wiring and core deps
package modkit

import (
	"reposcout/internal/adapters/gemini"
	"reposcout/internal/adapters/github"
	"reposcout/internal/adapters/qloo"
	"reposcout/internal/platform/config"
	"reposcout/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// upstream clients; modules nil check the ones they use
	GitHub *github.Client
	Qloo   *qloo.Client
	Gen    *gemini.Client
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional upstreams
func (d Deps) ZeroOK() bool { return true }
