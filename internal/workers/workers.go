package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. The cache warmer only runs
// when a cache is configured, since without one it would just poll storage.
func NewWorkers(products ProductLister, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.Workers.CacheWarmInterval > 0 && cfg.Storage.Cache.Enabled() {
		ws.workers = append(ws.workers, NewCacheWarmer(products, cfg.Workers.CacheWarmInterval, logger))
	}

	logger.Info().Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		worker := worker
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
