package main

import (
	"github.com/hibiken/asynq"

	catalogJob "b2b-showcase-backend/internal/domains/catalog/job"
	"b2b-showcase-backend/internal/shared"
	"b2b-showcase-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	cacheMirror *catalogJob.CacheMirrorHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		cacheMirror: catalogJob.NewCacheMirrorHandler(c.CatalogStore, c.CatalogCache),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeCatalogCacheMirror, h.cacheMirror.ProcessTask)
}
