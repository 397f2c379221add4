package health

import (
	"context"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
	Name() string
}

// Payload is the body of GET /health.
type Payload struct {
	OK    bool   `json:"ok"`
	Cache string `json:"cache"`
}

// Service encapsulates health-related checks.
type Service struct {
	cache Pinger
}

// NewService constructs a new health service. cache may be nil.
func NewService(cache Pinger) *Service {
	return &Service{cache: cache}
}

// Status reports liveness and cache reachability. In-process caches report
// their backend name instead of a ping result. OK stays true when the cache
// is down.
func (s *Service) Status(ctx context.Context) Payload {
	if s.cache == nil {
		return Payload{OK: true, Cache: "none"}
	}
	switch name := s.cache.Name(); name {
	case "memory", "none":
		return Payload{OK: true, Cache: name}
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.cache.Ping(ctx); err != nil {
		return Payload{OK: true, Cache: "down"}
	}
	return Payload{OK: true, Cache: "ok"}
}
