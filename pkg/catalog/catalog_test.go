package catalog

import (
	"strings"
	"testing"

	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
	"github.com/rodrigobarrosparreira/br-desk/pkg/template"
)

func TestNew_BuildsWithoutError(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("expected the built-in catalogue to validate, got %v", err)
	}
	if len(cat.Departments()) == 0 {
		t.Fatalf("expected at least one department")
	}
}

func TestDefault_ReturnsSharedInstance(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("expected Default to return the same instance")
	}
}

func TestCatalog_EveryMessageHasSubmodule(t *testing.T) {
	cat := Default()
	for id := range messages() {
		if _, ok := cat.Submodule(id); !ok {
			t.Fatalf("message template %q has no submodule", id)
		}
	}
}

func TestCatalog_EverySubmoduleResolvesOrIsBlank(t *testing.T) {
	cat := Default()
	data := formdata.New()
	for _, sub := range cat.Submodules() {
		msg, ok := cat.Message(sub.ID)
		if !ok {
			if sub.IsBlank || sub.DocType != "" {
				continue
			}
			t.Fatalf("submodule %q has no message template", sub.ID)
		}
		if msg.IsZero() {
			continue
		}
		template.Resolve(msg, data)
	}
}

func TestResolve_AdesaoBoletoMasculine(t *testing.T) {
	cat := Default()
	msg, ok := cat.Message("adesao")
	if !ok {
		t.Fatalf("adesao template missing")
	}

	data := formdata.New()
	data.Set("associado", "João")
	data.Set("genero", "masculino")
	data.Set("forma-pagamento", "boleto")
	data.Set("placa", "XYZ9876")
	data.Set("vencimento", "10")

	got := template.Resolve(msg, data)

	if !strings.HasPrefix(got, "🎉 Bem-vindo, João!") {
		t.Fatalf("expected masculine greeting prefix, got %q", got[:60])
	}
	if !strings.Contains(got, "XYZ9876") {
		t.Fatalf("expected the plate to be substituted")
	}
	if !strings.Contains(got, "Forma de pagamento da mensalidade: Boleto") {
		t.Fatalf("expected the boleto payment paragraph")
	}
	if strings.Contains(got, "Cobrança recorrente no cartão") {
		t.Fatalf("unexpected cartão paragraph in boleto message")
	}
	if !strings.Contains(got, "Vencimento escolhido: dia 10 de cada mês.") {
		t.Fatalf("expected the chosen due day to be substituted")
	}
	if !strings.HasSuffix(got, template.BoletoNotice) {
		t.Fatalf("expected the boleto reminder at the end of the message")
	}
	if strings.Count(got, template.BoletoNotice) != 1 {
		t.Fatalf("expected exactly one boleto reminder")
	}
}

func TestResolve_AdesaoFeminineCartao(t *testing.T) {
	msg, _ := Default().Message("adesao")

	data := formdata.New()
	data.Set("associado", "Ana")
	data.Set("genero", "feminino")
	data.Set("forma-pagamento", "cartao")

	got := template.Resolve(msg, data)

	if !strings.HasPrefix(got, "🎉 Bem-vinda, Ana!") {
		t.Fatalf("expected feminine greeting, got %q", got[:40])
	}
	if !strings.Contains(got, "Cobrança recorrente no cartão") {
		t.Fatalf("expected the cartão paragraph")
	}
	if strings.Contains(got, template.BoletoNotice) {
		t.Fatalf("unexpected boleto reminder for cartão")
	}
}

func TestResolve_ConfirmarRecebimentoBranches(t *testing.T) {
	msg, _ := Default().Message("confirmar-recebimento")

	data := formdata.New()
	data.Set("associado", "Carlos")
	data.Set("select", "sim")
	if got := template.Resolve(msg, data); !strings.HasPrefix(got, "Carlos, somos felizes") {
		t.Fatalf("unexpected sim branch: %q", got[:40])
	}

	data.Set("select", "nao")
	if got := template.Resolve(msg, data); !strings.Contains(got, "lamentamos saber") {
		t.Fatalf("expected the nao branch text")
	}

	data.Set("select", "")
	data.Set("recebido_por", "Pedro")
	data.Set("data", "2025-01-15")
	got := template.Resolve(msg, data)
	if !strings.Contains(got, "recebido por Pedro, no dia 15/01/2025") {
		t.Fatalf("expected the default confirmation branch with formatted date, got %q", got)
	}
}

func TestResolve_MensagemCobrancaListsBoletos(t *testing.T) {
	msg, _ := Default().Message("mensagem_cobranca")

	data := formdata.New()
	data.Set("associado", "Maria")
	data.Set("genero", "feminino")
	data.Set("placa", "ABC1D23")
	data.SetEntries("boletos", []formdata.Entry{
		{"data_vencimento": "10/01/2025", "valor": "R$ 150,00"},
		{"data_vencimento": "10/02/2025", "valor": "R$ 150,00"},
	})

	got := template.Resolve(msg, data)

	if !strings.Contains(got, "Sra. Maria") {
		t.Fatalf("expected feminine salutation")
	}
	if strings.Count(got, "Vencimento:") != 2 {
		t.Fatalf("expected two listed boletos")
	}
	if !strings.Contains(got, "Vencimento: 10/01/2025\nValor: R$ 150,00") {
		t.Fatalf("expected first boleto line")
	}
}

func TestResolve_OrientacoesLocamiIsMarkup(t *testing.T) {
	msg, _ := Default().Message("orientacoes-rastreamento")

	data := formdata.New()
	data.Set("associado", "Lucas")
	data.Set("plataforma", "locami")
	data.Set("login", "lucas")
	data.Set("senha", "123")

	got := template.Resolve(msg, data)

	if !template.IsMarkup(got) {
		t.Fatalf("expected the locami message to classify as markup")
	}
	if !strings.Contains(got, "https://track.grupo360graus.com") {
		t.Fatalf("expected the locami server instruction")
	}
	if !strings.Contains(got, "/images/locami1.webp") {
		t.Fatalf("expected the locami walkthrough images")
	}
}

func TestResolve_OrientacoesRedelocPlainText(t *testing.T) {
	msg, _ := Default().Message("orientacoes-rastreamento")

	data := formdata.New()
	data.Set("associado", "Lucas")
	data.Set("plataforma", "redeloc")
	data.Set("os", "android")

	got := template.Resolve(msg, data)

	if template.IsMarkup(got) {
		t.Fatalf("expected plain text for redeloc")
	}
	if !strings.Contains(got, "REDELOC") {
		t.Fatalf("expected the platform name")
	}
	if !strings.Contains(got, "play.google.com") || strings.Contains(got, "apps.apple.com") {
		t.Fatalf("expected only the Android link for os=android")
	}
}

func TestResolve_AberturaAppendsSupervisorOpinion(t *testing.T) {
	msg, _ := Default().Message("abertura_assistencia")

	data := formdata.New()
	data.Set("protocolo", "12345")
	got := template.Resolve(msg, data)
	if strings.Contains(got, "Parecer do Supervisor") {
		t.Fatalf("unexpected supervisor section without excepcionalidade")
	}

	data.Set("excepcionalidade", "apto")
	data.Set("motivo_excepcionalidade", "liberação pontual")
	got = template.Resolve(msg, data)
	if !strings.Contains(got, "*Parecer do Supervisor:* apto") {
		t.Fatalf("expected the supervisor opinion to be appended")
	}
	if !strings.Contains(got, "*Motivo:* liberação pontual") {
		t.Fatalf("expected the opinion reason to be appended")
	}
}

func TestSubmoduleByDocType(t *testing.T) {
	cat := Default()

	sub, ok := cat.SubmoduleByDocType("termo_pecas")
	if !ok || sub.ID != "termo_entrega_pecas" {
		t.Fatalf("expected the parts term submodule, got %+v ok=%v", sub, ok)
	}

	// cobranca and recibo are layouts without a catalogued form.
	if _, ok := cat.SubmoduleByDocType("recibo"); ok {
		t.Fatalf("expected no submodule for recibo")
	}
	if _, ok := cat.SubmoduleByDocType(""); ok {
		t.Fatalf("expected no submodule for an empty document type")
	}
}

func TestMessage_TermoPecasIsZero(t *testing.T) {
	msg, ok := Default().Message("termo_entrega_pecas")
	if !ok {
		t.Fatalf("expected a catalogue entry for termo_entrega_pecas")
	}
	if !msg.IsZero() {
		t.Fatalf("expected the parts term to have no chat message")
	}
}
