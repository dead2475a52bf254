package deskapi

import (
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/rodrigobarrosparreira/br-desk/internal/pdf"
	"github.com/rodrigobarrosparreira/br-desk/pkg/catalog"
)

// GuardFunc rejects a request before it is handled. A nil error lets the
// request through.
type GuardFunc func(r *http.Request) error

type Options struct {
	CatalogPath  string
	PreviewPath  string
	DocumentPath string
	Guard        GuardFunc

	Catalog  *catalog.Catalog
	Renderer *pdf.Renderer

	// Sanitizer cleans resolved markup before it is previewed. Documents
	// are never sanitized; only the preview surface is.
	Sanitizer *bluemonday.Policy

	// Now stamps generated file names. Overridable for tests.
	Now func() time.Time
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		CatalogPath:  "/api/catalog",
		PreviewPath:  "/api/preview",
		DocumentPath: "/api/documents",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.CatalogPath == "" {
		opts.CatalogPath = "/api/catalog"
	}
	if opts.PreviewPath == "" {
		opts.PreviewPath = "/api/preview"
	}
	if opts.DocumentPath == "" {
		opts.DocumentPath = "/api/documents"
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = pdf.NewRenderer()
	}
	if opts.Sanitizer == nil {
		opts.Sanitizer = bluemonday.UGCPolicy()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

func WithCatalogPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CatalogPath = path
	}
}

func WithPreviewPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PreviewPath = path
	}
}

func WithDocumentPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DocumentPath = path
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithCatalog(cat *catalog.Catalog) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Catalog = cat
	}
}

func WithRenderer(r *pdf.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = r
	}
}

func WithSanitizer(p *bluemonday.Policy) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sanitizer = p
	}
}

func WithNow(now func() time.Time) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Now = now
	}
}
