package conversation

import (
	"context"
	"log/slog"

	"github.com/diogo/helpline/internal/present"
)

// ResourceLoader fills the resource list once at startup.
type ResourceLoader struct {
	service  ResourceService
	renderer ResourceRenderer
	logger   *slog.Logger
}

// NewResourceLoader creates a loader painting into renderer.
func NewResourceLoader(service ResourceService, renderer ResourceRenderer, opts ...Option) *ResourceLoader {
	o := buildOptions(opts)
	return &ResourceLoader{
		service:  service,
		renderer: renderer,
		logger:   o.logger,
	}
}

// Load fetches the catalog and paints it. On failure a single "unavailable" entry
// is painted instead. The painted entries are returned.
func (l *ResourceLoader) Load(ctx context.Context) []present.ResourceEntry {
	resources, err := l.service.FetchResources(ctx)
	if err != nil {
		l.logger.Warn("resources unavailable", slog.String("error", err.Error()))
		entries := present.UnavailableResources()
		l.renderer.SetResources(entries)
		return entries
	}

	entries := present.FormatResources(resources)
	l.renderer.SetResources(entries)
	return entries
}
