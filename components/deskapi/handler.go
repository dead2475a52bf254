package deskapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
	"github.com/rodrigobarrosparreira/br-desk/pkg/pdfdoc"
	"github.com/rodrigobarrosparreira/br-desk/pkg/schema"
	"github.com/rodrigobarrosparreira/br-desk/pkg/template"
)

// HTTPError lets guards pick the status code of a rejection.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError is an error with an HTTP status code attached.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type catalogResponse struct {
	Data []schema.Department `json:"data"`
}

type submoduleResponse struct {
	Data schema.Submodule `json:"data"`
}

type previewRequest struct {
	Submodule string         `json:"submodule"`
	Data      map[string]any `json:"data"`
}

type previewResponse struct {
	Content string `json:"content"`
	HTML    bool   `json:"html"`
	Export  string `json:"export"`
}

type documentRequest struct {
	Type pdfdoc.DocType `json:"type"`
	Data map[string]any `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// catalogHandler serves the department tree, or one submodule when the
// request carries a submodule query parameter.
func (c *Component) catalogHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if !c.guard(w, r) {
			return
		}

		if id := r.URL.Query().Get("submodule"); id != "" {
			sub, ok := c.opts.Catalog.Submodule(id)
			if !ok {
				writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("unknown submodule %q", id)})
				return
			}
			writeJSON(w, http.StatusOK, submoduleResponse{Data: sub})
			return
		}

		writeJSON(w, http.StatusOK, catalogResponse{Data: c.opts.Catalog.Departments()})
	})
}

// previewHandler resolves a submodule's message template against submitted
// form data. HTML output is sanitized before it reaches the client; the
// raw resolved text is never altered for export.
func (c *Component) previewHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if !c.guard(w, r) {
			return
		}

		var req previewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		sub, ok := c.opts.Catalog.Submodule(req.Submodule)
		if !ok {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("unknown submodule %q", req.Submodule)})
			return
		}

		tmpl, ok := c.opts.Catalog.Message(req.Submodule)
		if !ok || tmpl.IsZero() {
			writeJSON(w, http.StatusOK, previewResponse{})
			return
		}

		data := formdata.FromMap(req.Data)
		formdata.Normalize(data, sub)

		resolved, err := resolve(tmpl, data)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}

		resp := previewResponse{HTML: template.IsMarkup(resolved)}
		if resp.HTML {
			resp.Content = c.opts.Sanitizer.Sanitize(resolved)
			resp.Export = resolved
		} else {
			resp.Content = resolved
			resp.Export = template.WrapForHTMLExport(resolved)
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

// resolve runs template resolution, converting a template panic into an
// error so the previous preview stays untouched on the client.
func resolve(tmpl template.Template, data *formdata.Data) (resolved string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("template resolution failed: %v", rec)
		}
	}()
	return template.Resolve(tmpl, data), nil
}

// documentHandler assembles and renders a PDF document. Only one render
// runs at a time; concurrent requests are turned away.
func (c *Component) documentHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if !c.guard(w, r) {
			return
		}

		if !c.generating.CompareAndSwap(false, true) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: "another document is being generated"})
			return
		}
		defer c.generating.Store(false)

		var req documentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		if !pdfdoc.Known(req.Type) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown document type %q", req.Type)})
			return
		}

		data := formdata.FromMap(req.Data)
		if sub, ok := c.opts.Catalog.SubmoduleByDocType(string(req.Type)); ok {
			formdata.Normalize(data, sub)
		}

		doc, err := pdfdoc.Build(req.Type, data)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		rendered, err := c.opts.Renderer.Render(doc)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		name := pdfdoc.Filename(req.Type, pdfdoc.SubjectName(data), pdfdoc.Plate(data), c.opts.Now())
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(rendered)
	})
}

func (c *Component) guard(w http.ResponseWriter, r *http.Request) bool {
	if c.opts.Guard == nil {
		return true
	}
	err := c.opts.Guard(r)
	if err == nil {
		return true
	}

	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
	return false
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}
