package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"obsidianlist/internal/model"
	"obsidianlist/pkg/log"
	"obsidianlist/pkg/scope"
)

const (
	scopeCacheSize = 1024
	scopeCacheTTL  = 5 * time.Minute
)

type Middleware struct {
	l          log.Logger
	jwtManager *scope.Manager
	// scopeCache avoids re-verifying the same bearer token on every request
	scopeCache *expirable.LRU[string, model.Scope]
}

func New(l log.Logger, jwtManager *scope.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		scopeCache: expirable.NewLRU[string, model.Scope](scopeCacheSize, nil, scopeCacheTTL),
	}
}
