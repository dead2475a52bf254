package deskapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
	"github.com/rodrigobarrosparreira/br-desk/pkg/template"
)

func newTestServer(t *testing.T, fns ...OptionFn) *httptest.Server {
	t.Helper()
	c := New(fns...)
	mux := http.NewServeMux()
	if _, err := c.RegisterRoutes(mux, ""); err != nil {
		t.Fatalf("RegisterRoutes failed: %v", err)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	res, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return res
}

func decodeJSON(t *testing.T, res *http.Response, out any) {
	t.Helper()
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestRegisterRoutes_Patterns(t *testing.T) {
	c := New()
	mux := http.NewServeMux()

	patterns, err := c.RegisterRoutes(mux, "/desk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"/desk/api/catalog", "/desk/api/preview", "/desk/api/documents"}
	for i, p := range want {
		if patterns[i] != p {
			t.Fatalf("expected pattern %q, got %q", p, patterns[i])
		}
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := New().RegisterRoutes(nil, ""); err == nil {
		t.Fatalf("expected an error for a nil mux")
	}
}

func TestMountPath(t *testing.T) {
	tests := []struct {
		base  string
		route string
		want  string
	}{
		{"", "/api/catalog", "/api/catalog"},
		{"/", "/api/catalog", "/api/catalog"},
		{"/desk", "/api/catalog", "/desk/api/catalog"},
		{"desk/", "api/catalog", "/desk/api/catalog"},
		{"/desk", "", "/desk/"},
	}
	for _, tc := range tests {
		if got := mountPath(tc.base, tc.route); got != tc.want {
			t.Fatalf("mountPath(%q, %q) = %q, want %q", tc.base, tc.route, got, tc.want)
		}
	}
}

func TestCatalogHandler_ListsDepartments(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/catalog")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var payload struct {
		Data []struct {
			ID         string `json:"id"`
			Submodules []struct {
				ID string `json:"id"`
			} `json:"submodules"`
		} `json:"data"`
	}
	decodeJSON(t, res, &payload)

	if len(payload.Data) == 0 {
		t.Fatalf("expected departments in the catalogue")
	}
	found := false
	for _, dept := range payload.Data {
		for _, sub := range dept.Submodules {
			if sub.ID == "adesao" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected the adesao submodule in the tree")
	}
}

func TestCatalogHandler_SubmoduleDetail(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/catalog?submodule=adesao")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var payload struct {
		Data struct {
			ID     string `json:"id"`
			Fields []struct {
				ID string `json:"id"`
			} `json:"fields"`
		} `json:"data"`
	}
	decodeJSON(t, res, &payload)

	if payload.Data.ID != "adesao" || len(payload.Data.Fields) == 0 {
		t.Fatalf("expected the adesao submodule with fields, got %+v", payload.Data)
	}
}

func TestCatalogHandler_UnknownSubmodule(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/catalog?submodule=nope")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestCatalogHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Post(srv.URL+"/api/catalog", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.StatusCode)
	}
}

func TestGuard_RejectsRequests(t *testing.T) {
	srv := newTestServer(t, WithGuard(func(r *http.Request) error {
		return fmt.Errorf("nope")
	}))

	res, err := http.Get(srv.URL + "/api/catalog")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.StatusCode)
	}
}

func TestGuard_StatusErrorPicksCode(t *testing.T) {
	srv := newTestServer(t, WithGuard(func(r *http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: fmt.Errorf("no token")}
	}))

	res, err := http.Get(srv.URL + "/api/catalog")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

func TestPreviewHandler_PlainTextMessage(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/api/preview", map[string]any{
		"submodule": "adesao",
		"data": map[string]any{
			"associado":       "João",
			"genero":          "masculino",
			"forma-pagamento": "boleto",
			"placa":           "XYZ9876",
		},
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var payload previewResponse
	decodeJSON(t, res, &payload)

	if payload.HTML {
		t.Fatalf("expected a plain text preview")
	}
	if !strings.HasPrefix(payload.Content, "🎉 Bem-vindo, João!") {
		t.Fatalf("unexpected content start: %q", payload.Content[:40])
	}
	if !strings.HasSuffix(payload.Content, template.BoletoNotice) {
		t.Fatalf("expected the boleto reminder in the preview")
	}
	if !strings.HasPrefix(payload.Export, "<pre") {
		t.Fatalf("expected the export to be wrapped for HTML, got %q", payload.Export[:20])
	}
}

func TestPreviewHandler_MarkupIsSanitized(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/api/preview", map[string]any{
		"submodule": "cancelamento",
		"data": map[string]any{
			"associado": "Maria",
			"placa":     "ABC1234",
			"data_hoje": "2025-11-07",
		},
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var payload previewResponse
	decodeJSON(t, res, &payload)

	if !payload.HTML {
		t.Fatalf("expected the cancellation term to classify as markup")
	}
	if strings.Contains(payload.Content, "<style") || strings.Contains(payload.Content, "<html") {
		t.Fatalf("expected style and document tags to be stripped from the preview")
	}
	if !strings.Contains(payload.Export, "<style") {
		t.Fatalf("expected the raw markup to survive in the export")
	}
	if !strings.Contains(payload.Content, "TERMO DE CANCELAMENTO") {
		t.Fatalf("expected the term text to survive sanitization")
	}
}

func TestPreviewHandler_UnknownSubmodule(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/api/preview", map[string]any{"submodule": "nope"})
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestPreviewHandler_BlankSubmodule(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/api/preview", map[string]any{"submodule": "termo_entrega_pecas"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var payload previewResponse
	decodeJSON(t, res, &payload)
	if payload.Content != "" || payload.HTML {
		t.Fatalf("expected an empty preview for a document-only submodule, got %+v", payload)
	}
}

func TestResolve_RecoversTemplatePanic(t *testing.T) {
	tmpl := template.Dynamic(func(data *formdata.Data) string {
		panic("boom")
	})

	_, err := resolve(tmpl, formdata.New())
	if err == nil {
		t.Fatalf("expected the panic to surface as an error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected the panic value in the error, got %v", err)
	}
}

func TestDocumentHandler_RendersPDFWithFilename(t *testing.T) {
	fixed := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)
	srv := newTestServer(t, WithNow(func() time.Time { return fixed }))

	res := postJSON(t, srv.URL+"/api/documents", map[string]any{
		"type": "termo_cancelamento",
		"data": map[string]any{
			"associado": "Maria da Silva",
			"placa":     "abc-1234",
			"data_hoje": "2025-11-07",
		},
	})
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if got := res.Header.Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	want := `attachment; filename="TCP-MDS-ABC1234-251107.pdf"`
	if got := res.Header.Get("Content-Disposition"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	head := make([]byte, 4)
	if _, err := res.Body.Read(head); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(head) != "%PDF" {
		t.Fatalf("expected a PDF body, got %q", head)
	}
}

func TestDocumentHandler_SparseRepeaterEntries(t *testing.T) {
	srv := newTestServer(t)

	// Records created in the UI but never touched arrive sparse; the
	// handler fixes their shape before assembly.
	res := postJSON(t, srv.URL+"/api/documents", map[string]any{
		"type": "termo_pecas",
		"data": map[string]any{
			"responsavel": "Maria da Silva",
			"pecas": []any{
				map[string]any{"produto": "Farol"},
				map[string]any{},
			},
		},
	})
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	head := make([]byte, 4)
	if _, err := res.Body.Read(head); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(head) != "%PDF" {
		t.Fatalf("expected a PDF body, got %q", head)
	}
}

func TestDocumentHandler_UnknownType(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/api/documents", map[string]any{"type": "nota_fiscal"})
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestDocumentHandler_ConcurrentGenerationRejected(t *testing.T) {
	c := New()
	c.generating.Store(true)

	mux := http.NewServeMux()
	if _, err := c.RegisterRoutes(mux, ""); err != nil {
		t.Fatalf("RegisterRoutes failed: %v", err)
	}
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res := postJSON(t, srv.URL+"/api/documents", map[string]any{"type": "recibo"})
	res.Body.Close()
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 while another render is in flight, got %d", res.StatusCode)
	}
}
