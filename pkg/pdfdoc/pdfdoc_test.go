package pdfdoc

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
)

func TestFilename_CancellationTerm(t *testing.T) {
	now := time.Date(2025, time.November, 7, 10, 30, 0, 0, time.UTC)

	got := Filename(TypeTermoCancelamento, "Maria da Silva", "abc-1234", now)
	if got != "TCP-MDS-ABC1234-251107.pdf" {
		t.Fatalf("expected TCP-MDS-ABC1234-251107.pdf, got %q", got)
	}
}

func TestFilename_WithoutPlate(t *testing.T) {
	now := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)

	got := Filename(TypeTermoReciboEstagio, "Ana Beatriz", "", now)
	if got != "RES-AB-250309.pdf" {
		t.Fatalf("expected RES-AB-250309.pdf, got %q", got)
	}
}

func TestFilename_Fallbacks(t *testing.T) {
	now := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	got := Filename(DocType("inexistente"), "", "", now)
	if got != "DOC-BR-241231.pdf" {
		t.Fatalf("expected DOC-BR-241231.pdf, got %q", got)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Maria da Silva", "MDS"},
		{"João Pedro de Souza Lima", "JPD"},
		{"ana", "A"},
		{"  ", "BR"},
		{"", "BR"},
		{"Ágata Íris", "ÁÍ"},
	}
	for _, tc := range tests {
		if got := Initials(tc.name); got != tc.want {
			t.Fatalf("Initials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPrefix_EveryKnownTypeIsMapped(t *testing.T) {
	seen := make(map[string]DocType)
	for _, dt := range Types() {
		p := Prefix(dt)
		if p == fallbackPrefix {
			t.Fatalf("type %q has no file name prefix", dt)
		}
		if other, dup := seen[p]; dup {
			t.Fatalf("prefix %q is shared by %q and %q", p, other, dt)
		}
		seen[p] = dt
	}
}

func TestSubjectName_ProbeOrder(t *testing.T) {
	data := formdata.New()
	data.Set("nome", "Último")
	data.Set("prestador", "Prestador")
	if got := SubjectName(data); got != "Prestador" {
		t.Fatalf("expected the earlier probe field to win, got %q", got)
	}

	data.Set("associado", "Associado")
	if got := SubjectName(data); got != "Associado" {
		t.Fatalf("expected associado to win, got %q", got)
	}

	if got := SubjectName(formdata.New()); got != "" {
		t.Fatalf("expected empty subject for empty form, got %q", got)
	}
}

func TestPlate_ProbeOrder(t *testing.T) {
	data := formdata.New()
	data.Set("veiculo_placa", "DEF5678")
	if got := Plate(data); got != "DEF5678" {
		t.Fatalf("expected the fallback plate field, got %q", got)
	}

	data.Set("placa", "ABC1234")
	if got := Plate(data); got != "ABC1234" {
		t.Fatalf("expected placa to win, got %q", got)
	}
}

func TestBuild_UnknownType(t *testing.T) {
	_, err := Build(DocType("nota_fiscal"), formdata.New())
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestBuild_EveryKnownType(t *testing.T) {
	for _, dt := range Types() {
		doc, err := Build(dt, formdata.New())
		if err != nil {
			t.Fatalf("Build(%q) failed: %v", dt, err)
		}
		if doc.Type != dt {
			t.Fatalf("expected document type %q, got %q", dt, doc.Type)
		}
		if len(doc.Blocks) == 0 {
			t.Fatalf("expected blocks for %q", dt)
		}
	}
}

func findTable(t *testing.T, doc Document) Block {
	t.Helper()
	for _, b := range doc.Blocks {
		if b.Kind == KindTable {
			return b
		}
	}
	t.Fatalf("document has no table block")
	return Block{}
}

func TestBuild_TermoPecasTable(t *testing.T) {
	data := formdata.New()
	data.SetEntries("pecas", []formdata.Entry{
		{"codigo": "C-01", "produto": "Parachoque", "quantidade": "1", "valor": "350,00"},
		{"item": "B", "codigo": "C-02", "produto": "Farol"},
	})

	doc, err := Build(TypeTermoPecas, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table := findTable(t, doc)
	if diff := cmp.Diff([]string{"ITEM", "CÓDIGO", "PRODUTO", "QTD", "VALOR"}, table.Header); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}

	want := [][]string{
		{"1", "C-01", "Parachoque", "1", "R$ 350,00"},
		{"B", "C-02", "Farol", "", ""},
	}
	if diff := cmp.Diff(want, table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_TermoPecasEmptyRepeater(t *testing.T) {
	doc, err := Build(TypeTermoPecas, formdata.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table := findTable(t, doc)
	if len(table.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(table.Rows))
	}
	if table.Empty != "Nenhuma peça listada." {
		t.Fatalf("expected the empty placeholder row, got %q", table.Empty)
	}
}

func TestBuild_RecebimentoRastreadorListsEquipment(t *testing.T) {
	data := formdata.New()
	data.Set("instalador", "Técnico")
	data.SetEntries("equipamentos", []formdata.Entry{
		{"imei": "111"},
		{"imei": "222"},
	})

	doc, err := Build(TypeTermoRecebimentoRastreador, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var listed int
	for _, b := range doc.Blocks {
		if b.Kind == KindParagraph && (b.Text == "Equipamento 1: IMEI 111" || b.Text == "Equipamento 2: IMEI 222") {
			listed++
		}
	}
	if listed != 2 {
		t.Fatalf("expected both equipment paragraphs, got %d", listed)
	}
}
