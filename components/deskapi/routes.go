package deskapi

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes mounts the catalogue, preview, and document handlers
// under basePath on mux. It returns the registered patterns.
func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("deskapi: missing mux")
	}
	if c == nil {
		return nil, fmt.Errorf("deskapi: missing component")
	}

	patterns := []string{
		mountPath(basePath, c.opts.CatalogPath),
		mountPath(basePath, c.opts.PreviewPath),
		mountPath(basePath, c.opts.DocumentPath),
	}
	mux.Handle(patterns[0], c.catalogHandler())
	mux.Handle(patterns[1], c.previewHandler())
	mux.Handle(patterns[2], c.documentHandler())
	return patterns, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
