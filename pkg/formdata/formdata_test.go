package formdata

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rodrigobarrosparreira/br-desk/pkg/schema"
)

func TestData_GetAbsentIsEmpty(t *testing.T) {
	d := New()
	if got := d.Get("nunca"); got != "" {
		t.Fatalf("expected empty string for absent field, got %q", got)
	}
}

func TestData_EmptyAndReset(t *testing.T) {
	d := New()
	if !d.Empty() {
		t.Fatalf("fresh store must be empty")
	}

	d.Set("associado", "Ana")
	if d.Empty() {
		t.Fatalf("store with a value must not be empty")
	}

	d.Reset()
	if !d.Empty() {
		t.Fatalf("reset store must be empty again")
	}
}

func TestData_CloneIsIndependent(t *testing.T) {
	d := New()
	d.Set("placa", "ABC1234")
	d.AppendEntry("boletos", Entry{"valor": "100"})

	clone := d.Clone()
	clone.Set("placa", "XYZ9876")
	clone.Entries("boletos")[0]["valor"] = "999"

	if d.Get("placa") != "ABC1234" {
		t.Fatalf("clone mutation leaked into scalar: %q", d.Get("placa"))
	}
	if d.Entries("boletos")[0].Get("valor") != "100" {
		t.Fatalf("clone mutation leaked into entries")
	}
}

func TestFromMap_ScalarsEntriesAndNumbers(t *testing.T) {
	d := FromMap(map[string]any{
		"associado": "João",
		"parcelas":  float64(3),
		"valor":     12.5,
		"ativo":     true,
		"vazio":     nil,
		"boletos": []any{
			map[string]any{"data_vencimento": "2025-01-10", "valor": float64(150)},
			map[string]any{"data_vencimento": "2025-02-10"},
		},
	})

	if got := d.Get("associado"); got != "João" {
		t.Fatalf("expected João, got %q", got)
	}
	if got := d.Get("parcelas"); got != "3" {
		t.Fatalf("whole number must stringify without fraction, got %q", got)
	}
	if got := d.Get("valor"); got != "12.5" {
		t.Fatalf("expected 12.5, got %q", got)
	}
	if got := d.Get("ativo"); got != "true" {
		t.Fatalf("expected true, got %q", got)
	}
	if got := d.Get("vazio"); got != "" {
		t.Fatalf("expected empty for null, got %q", got)
	}

	want := []Entry{
		{"data_vencimento": "2025-01-10", "valor": "150"},
		{"data_vencimento": "2025-02-10"},
	}
	if diff := cmp.Diff(want, d.Entries("boletos")); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_FixedShapeRecords(t *testing.T) {
	sub := schema.Submodule{
		ID: "mensagem_cobranca",
		Fields: []schema.Field{
			{ID: "associado", Label: "Associado"},
			{ID: "boletos", Label: "Boletos", Type: schema.FieldTypeRepeater, SubFields: []schema.Field{
				{ID: "data_vencimento", Label: "Vencimento"},
				{ID: "valor", Label: "Valor"},
			}},
		},
	}

	d := New()
	d.SetEntries("boletos", []Entry{
		{"valor": "100", "fantasma": "x"},
		{},
	})
	Normalize(d, sub)

	want := []Entry{
		{"data_vencimento": "", "valor": "100"},
		{"data_vencimento": "", "valor": ""},
	}
	if diff := cmp.Diff(want, d.Entries("boletos")); diff != "" {
		t.Fatalf("normalized entries mismatch (-want +got):\n%s", diff)
	}
}

func TestVisible_ScalarAndListRules(t *testing.T) {
	d := New()
	d.Set("adimplencia", "atrasado")

	plain := schema.Field{ID: "protocolo"}
	if !Visible(d, plain) {
		t.Fatalf("field without showIf must always be visible")
	}

	listed := schema.Field{
		ID:     "excepcionalidade",
		ShowIf: &schema.ShowIf{Field: "adimplencia", Values: []string{"inadimplente", "atrasado"}},
	}
	if !Visible(d, listed) {
		t.Fatalf("expected visible for listed value")
	}

	scalar := schema.Field{
		ID:     "motivo",
		ShowIf: &schema.ShowIf{Field: "excepcionalidade", Value: "apto"},
	}
	if Visible(d, scalar) {
		t.Fatalf("expected hidden while controlling field is unset")
	}
	d.Set("excepcionalidade", "apto")
	if !Visible(d, scalar) {
		t.Fatalf("expected visible once controlling field matches")
	}
}

func TestData_JSONRoundTrip(t *testing.T) {
	d := New()
	d.Set("associado", "Maria")
	d.AppendEntry("pecas", Entry{"produto": "farol", "valor": "350"})

	raw, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	back := New()
	if err := back.UnmarshalJSON(raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Get("associado") != "Maria" {
		t.Fatalf("scalar lost in round trip")
	}
	if back.Entries("pecas")[0].Get("produto") != "farol" {
		t.Fatalf("entry lost in round trip")
	}
}
