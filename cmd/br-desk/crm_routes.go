package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rodrigobarrosparreira/br-desk/internal/crm"
)

// registerCRMRoutes mounts thin JSON endpoints over the CRM client so the
// dashboard never holds the access token.
func registerCRMRoutes(mux *http.ServeMux, client *crm.Client) {
	mux.Handle("/api/crm/tickets", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		attendant := r.URL.Query().Get("atendente")
		if attendant == "" {
			writeError(w, http.StatusBadRequest, "missing atendente")
			return
		}
		tickets, err := client.ListTickets(r.Context(), attendant)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writePayload(w, map[string]any{"data": tickets})
	}))

	mux.Handle("/api/crm/protocol", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		protocol := r.URL.Query().Get("protocolo")
		if protocol == "" {
			writeError(w, http.StatusBadRequest, "missing protocolo")
			return
		}
		data, err := client.ProtocolDetails(r.Context(), protocol)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writePayload(w, map[string]any{"data": data.ToMap()})
	}))

	mux.Handle("/api/crm/save", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		var record map[string]any
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := client.SaveOrUpdate(r.Context(), record); err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writePayload(w, map[string]any{"status": "ok"})
	}))

	mux.Handle("/api/crm/providers", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		address := r.URL.Query().Get("endereco")
		if address == "" {
			writeError(w, http.StatusBadRequest, "missing endereco")
			return
		}
		radius := 50
		if raw := r.URL.Query().Get("raio"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeError(w, http.StatusBadRequest, "invalid raio")
				return
			}
			radius = parsed
		}
		providers, err := client.SearchProviders(r.Context(), address, r.URL.Query().Get("tipo_servico"), radius)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writePayload(w, map[string]any{"data": providers})
	}))
}

func writePayload(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
