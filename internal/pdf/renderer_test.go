package pdf

import (
	"bytes"
	"testing"

	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
	"github.com/rodrigobarrosparreira/br-desk/pkg/pdfdoc"
)

func sampleData(t *testing.T) *formdata.Data {
	t.Helper()
	data := formdata.FromMap(map[string]any{
		"associado":          "Maria da Silva",
		"nome_devedor":       "Maria da Silva",
		"responsavel":        "Maria da Silva",
		"prestador":          "Oficina Central",
		"estagiario":         "Pedro Alves",
		"instalador":         "Carlos Técnico",
		"terceiro":           "José Santos",
		"terceiro_nome":      "José Santos",
		"cpf":                "000.000.000-00",
		"placa":              "ABC1234",
		"valor":              "1500",
		"data_hoje":          "2025-11-07",
		"numero_negociacao":  "42",
		"total_debito":       "3000",
		"valor_entrada":      "500",
		"parcelas_restantes": "5",
		"valor_parcela":      "500",
	})
	data.SetEntries("pecas", []formdata.Entry{
		{"codigo": "C-01", "produto": "Parachoque", "quantidade": "1", "valor": "350,00"},
	})
	data.SetEntries("equipamentos", []formdata.Entry{
		{"imei": "356938035643809"},
	})
	data.SetEntries("boletos", []formdata.Entry{
		{"data_vencimento": "10/01/2025", "valor": "150,00"},
	})
	return data
}

func TestRender_EveryDocumentType(t *testing.T) {
	r := NewRenderer()
	data := sampleData(t)

	for _, dt := range pdfdoc.Types() {
		doc, err := pdfdoc.Build(dt, data)
		if err != nil {
			t.Fatalf("Build(%q) failed: %v", dt, err)
		}

		out, err := r.Render(doc)
		if err != nil {
			t.Fatalf("Render(%q) failed: %v", dt, err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF")) {
			t.Fatalf("Render(%q) did not produce a PDF, got prefix %q", dt, out[:8])
		}
	}
}

func TestRender_EmptyPartsTable(t *testing.T) {
	doc, err := pdfdoc.Build(pdfdoc.TypeTermoPecas, formdata.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewRenderer().Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF output for an empty parts table")
	}
}

func TestRender_UnknownBlockKind(t *testing.T) {
	doc := pdfdoc.Document{
		Type:   pdfdoc.TypeRecibo,
		Blocks: []pdfdoc.Block{{Kind: pdfdoc.BlockKind("marquee")}},
	}

	if _, err := NewRenderer().Render(doc); err == nil {
		t.Fatalf("expected an error for an unknown block kind")
	}
}
