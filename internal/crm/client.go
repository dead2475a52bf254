// Package crm talks to the spreadsheet-backed service desk API. The backend
// answers JSON wrapped in whatever the hosting layer prepends, so responses
// are trimmed to the outermost JSON object before decoding.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
)

// statusOK is the success marker in every backend response.
const statusOK = "sucesso"

// ErrInvalidResponse reports a body with no JSON object in it.
var ErrInvalidResponse = fmt.Errorf("crm: no JSON object in response")

// Client is the HTTP client for the desk backend. All calls carry the
// access token and are sent as a single POST with an action discriminator.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// Option adjusts a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient builds a Client for the given endpoint and access token.
func NewClient(endpoint, token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   endpoint,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ticket is one service-desk attendance row.
type Ticket struct {
	Protocolo       string `json:"protocolo"`
	Status          string `json:"status"`
	Atendente       string `json:"atendente"`
	Solicitante     string `json:"solicitante"`
	Placa           string `json:"placa"`
	Servico         string `json:"servico"`
	HoraSolicitacao string `json:"hora_solicitacao"`
}

// Provider is one roadside-assistance provider hit.
type Provider struct {
	Nome      string  `json:"nome"`
	Telefone  string  `json:"telefone"`
	Endereco  string  `json:"endereco"`
	Distancia float64 `json:"distancia"`
}

// File is an upload attachment. Conteudo carries the base64 payload
// without the data URL prefix.
type File struct {
	Nome     string `json:"nome"`
	MimeType string `json:"mimeType"`
	Conteudo string `json:"conteudo"`
}

type response struct {
	Status     string         `json:"status"`
	Msg        string         `json:"msg"`
	Lista      []Ticket       `json:"lista"`
	Dados      map[string]any `json:"dados"`
	Resultados []Provider     `json:"resultados"`
}

// SaveOrUpdate writes an attendance record, keyed by its protocol. The
// record is sent as-is plus the action and token envelope.
func (c *Client) SaveOrUpdate(ctx context.Context, record map[string]any) error {
	payload := make(map[string]any, len(record)+2)
	for k, v := range record {
		payload[k] = v
	}
	payload["action"] = "salvar_ou_atualizar"

	_, err := c.post(ctx, payload)
	return err
}

// ListTickets fetches the attendance rows assigned to an attendant.
func (c *Client) ListTickets(ctx context.Context, attendant string) ([]Ticket, error) {
	resp, err := c.post(ctx, map[string]any{
		"action":    "listar_atendimentos",
		"atendente": attendant,
	})
	if err != nil {
		return nil, err
	}
	return resp.Lista, nil
}

// ProtocolDetails fetches the stored form data of one protocol.
func (c *Client) ProtocolDetails(ctx context.Context, protocol string) (*formdata.Data, error) {
	resp, err := c.post(ctx, map[string]any{
		"action":    "buscar_detalhes_protocolo",
		"protocolo": protocol,
	})
	if err != nil {
		return nil, err
	}
	return formdata.FromMap(resp.Dados), nil
}

// SearchProviders looks up assistance providers near an address.
func (c *Client) SearchProviders(ctx context.Context, address, serviceType string, radiusKM int) ([]Provider, error) {
	resp, err := c.post(ctx, map[string]any{
		"action":       "buscar_prestadores",
		"endereco":     address,
		"tipo_servico": serviceType,
		"raio":         radiusKM,
	})
	if err != nil {
		return nil, err
	}
	return resp.Resultados, nil
}

// UploadFiles attaches files to a protocol. It returns the backend's
// confirmation message.
func (c *Client) UploadFiles(ctx context.Context, protocol string, files []File) (string, error) {
	resp, err := c.post(ctx, map[string]any{
		"action":    "upload_arquivo",
		"protocolo": protocol,
		"arquivos":  files,
	})
	if err != nil {
		return "", err
	}
	return resp.Msg, nil
}

func (c *Client) post(ctx context.Context, payload map[string]any) (*response, error) {
	payload["token_acesso"] = c.token

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("crm: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("crm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crm: %s: %w", payload["action"], err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("crm: read response: %w", err)
	}

	clean, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp response
	if err := json.Unmarshal(clean, &resp); err != nil {
		return nil, fmt.Errorf("crm: decode response: %w", err)
	}
	if resp.Status != statusOK {
		return nil, fmt.Errorf("crm: %s: %s", payload["action"], resp.Msg)
	}
	return &resp, nil
}

// extractJSON trims a body to the outermost JSON object. The hosting layer
// sometimes wraps the payload in HTML or redirect noise.
func extractJSON(body []byte) ([]byte, error) {
	start := bytes.IndexByte(body, '{')
	end := bytes.LastIndexByte(body, '}')
	if start < 0 || end < start {
		return nil, ErrInvalidResponse
	}
	return body[start : end+1], nil
}
