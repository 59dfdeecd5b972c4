package bookstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mesh-intelligence/madang/pkg/types"
)

// Pricing bounds the sale price input.
type Pricing struct {
	Min  int64 // smallest accepted price; never below 1
	Step int64 // increment used by interactive inputs
}

// DefaultPricing matches the bookstore's price widget: minimum 1, step 1000.
var DefaultPricing = Pricing{Min: 1, Step: 1000}

// Options configures a Service. Zero values select defaults.
type Options struct {
	Logger  *slog.Logger
	Now     func() time.Time
	Pricing Pricing
}

// Service runs the bookstore flows against one database handle.
type Service struct {
	exec    *Executor
	surface Surface
	log     *slog.Logger
	now     func() time.Time
	pricing Pricing

	catalogOnce sync.Once
	catalog     Catalog
}

// New creates a Service that reports to surface.
func New(db types.Database, surface Surface, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	pricing := opts.Pricing
	if pricing.Min < 1 {
		pricing.Min = DefaultPricing.Min
	}
	if pricing.Step < 1 {
		pricing.Step = DefaultPricing.Step
	}
	return &Service{
		exec:    NewExecutor(db, surface, log),
		surface: surface,
		log:     log,
		now:     now,
		pricing: pricing,
	}
}

// Pricing returns the effective price bounds.
func (s *Service) Pricing() Pricing {
	return s.pricing
}

// Catalog returns the book list, loading it on the first call only. Books
// inserted later do not appear until the process restarts.
func (s *Service) Catalog(ctx context.Context) Catalog {
	s.catalogOnce.Do(func() {
		s.catalog = LoadCatalog(ctx, s.exec)
	})
	return s.catalog
}
