package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hecho/catalog_api/internal/cache"
	"github.com/hecho/catalog_api/internal/i18n"
	"github.com/hecho/catalog_api/internal/service"
	"github.com/hecho/catalog_api/internal/utils"
)

// FacetWorker keeps the cached facet sidebar warm. It rewarms the default
// (empty-term) facets for both locales on a fixed interval, and on catalog
// changes it drops the cache and rewarms after a debounce window so a burst
// of admin edits costs one recompute.
type FacetWorker struct {
	catalog   *service.CatalogService
	facets    *cache.FacetCache
	interval  time.Duration
	debouncer *utils.Debouncer
}

// NewFacetWorker constructs a FacetWorker.
func NewFacetWorker(catalog *service.CatalogService, facets *cache.FacetCache, interval, debounce time.Duration) *FacetWorker {
	w := &FacetWorker{
		catalog:  catalog,
		facets:   facets,
		interval: interval,
	}
	w.debouncer = utils.NewDebouncer(debounce, func(string) {
		w.rewarm(context.Background())
	})
	return w
}

// Start begins the warmup loop and listens for context cancellation.
func (w *FacetWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting facet worker")

	w.rewarm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.rewarm(ctx)
		case <-ctx.Done():
			w.debouncer.Stop()
			log.Info().Msg("Facet worker stopped")
			return
		}
	}
}

// RefreshFacets is called by admin handlers when products, categories or
// promotions change. The cache is dropped immediately so the next read is
// fresh; the rewarm is debounced.
func (w *FacetWorker) RefreshFacets() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := w.facets.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("Facet cache invalidation failed")
	}
	w.debouncer.Trigger("")
}

// rewarm recomputes and caches the default facets for both locales.
func (w *FacetWorker) rewarm(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, locale := range []i18n.Locale{i18n.LocalePT, i18n.LocaleES} {
		w.catalog.CategoryFacets(ctx, i18n.New(locale), "")
	}
	log.Debug().Msg("Facet cache rewarmed")
}
