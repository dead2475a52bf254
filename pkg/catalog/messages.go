package catalog

import (
	"fmt"
	"strings"

	"github.com/rodrigobarrosparreira/br-desk/pkg/format"
	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
	"github.com/rodrigobarrosparreira/br-desk/pkg/template"
)

// Association identity shared by several documents.
const (
	associationName = "ASSOCIAÇÃO BR CLUBE DE BENEFÍCIOS"
	associationCNPJ = "40.410.992/0001-40"
	signatureImage  = "/images/assinatura.png"
	logoImage       = "/images/logo.png"
)

// messages binds each submodule to its outgoing message template. Static
// entries keep their placeholders until resolution; dynamic entries build
// the whole text themselves, including any substitution they need.
func messages() map[string]template.Template {
	return map[string]template.Template{
		"assistance_request": template.Static("🚨 *BR CLUBE - NOVO ACIONAMENTO* 🚨\n\n" +
			"*Protocolo:* {{protocolo}}\n*Data/Horário:* {{data-hora}}\n*Placa:* {{placa}}\n*Modelo:* {{modelo}}\n*Cor:* {{cor}}\n" +
			"*Solicitante:* {{solicitante}}\n*Telefone:* {{telefone}}\n*Fator Gerador:* {{fator-gerador}}\n" +
			"*Observações do Fator Gerador:* {{obs-gerador}}\n*Chave e Documento no local?:* {{chave-documento}}\n" +
			"*Veículo de fácil acesso?:* {{facil-acesso}}\n*Serviço:* {{servico}}\n*Endereço de Origem:* {{endereco-origem}}\n" +
			"*Referência de Origem:* {{referencia-origem}}\n*Endereço de Destino:* {{endereco-destino}}\n" +
			"*Referência de Destino:* {{referencia-destino}}\n*Quilometragem:* {{quilometragem}}\n" +
			"*Quilometragem Total:* {{quilometragem-total}}"),

		"abertura_assistencia": template.Dynamic(aberturaAssistencia),

		"fechamento_assistencia": template.Static("✅ *BR CLUBE - ATENDIMENTO ENCERRADO* ✅\n\n" +
			"*Protocolo:* {{protocolo}}\n*Prestador:* {{prestador}}\n*Saída do Prestador:* {{hora_prestador}}\n" +
			"*Chegada ao Local:* {{chegada_prestador}}\n*Encerramento:* {{encerramento_atendimento}}\n\n" +
			"*Observações:* {{observacoes}}"),

		"adesao": template.Dynamic(adesaoWelcome),

		"br-power": template.Static("🚙 ⚡ Seja bem-vindo ao BR Power {{associado}}!\n\n" +
			"Parabéns! Agora, sua proteção está ainda mais completa.\n" +
			"Quando a vida útil da bateria {{codigo}}, {{marca}}, {{amperagem}} do seu carro chegar ao fim, e ela não segurar mais carga, a BR Clube vai cuidar de tudo.\n\n" +
			"Você não vai precisar desembolsar nada a mais no momento da troca.\n\n" +
			"Nossa equipe técnica vai até você, com rapidez e eficiência, para resolver o problema.\n\n" +
			"💡 Com o BR Power, você protege seu carro e suas finanças.\n\n" +
			"Qualquer dúvida, conte com a gente.\n\n" +
			"🤝 BR Clube — Proteja do seu jeito. Inspire uma nova era."),

		"cancelamento": template.Dynamic(termoCancelamento),

		"mensagem_cobranca": template.Dynamic(mensagemCobranca),

		"termo_acordo": template.Dynamic(termoAcordo),

		"enviar-associado": template.Static(`<div style="border: 1px solid black; padding: 10px;">
<img src="` + logoImage + `" alt="Logo Destinatário" style="width: 80px; height: auto;"><br>
<strong>Destinatário:</strong> {{destinatario}}<br>
<strong>Endereço: </strong> {{endereco}}<br>
<strong>CEP:</strong> {{cep}}<br>
<strong>Ponto de referência:</strong> {{referencia}}<br>
</div>
<br>

<div style="border: 1px solid black; padding: 10px;">
<img src="` + logoImage + `" alt="Logo Destinatário" style="width: 80px; height: auto;"><br>
<strong>Remetente:</strong> ` + associationName + `<br>
<strong>Endereço:</strong> Edifício New Business Style: Sala 141-A | Av. Dep. Jamel Cecílio, 2496 - Jardim Goiás, Goiânia-GO.<br>
<strong>CEP:</strong> 74810-100<br>
<strong>Telefone:</strong> 4020-0164<br>
</div>
`),

		"confirmar-recebimento": template.Dynamic(confirmarRecebimento),

		"agendamento-oficina": template.Dynamic(agendamentoOficina),

		"termo-entrega-veiculo": template.Dynamic(termoEntregaVeiculo),

		"termo-acionamento": template.Static("📍 *BR CLUBE - AGENDAMENTO DE RASTREIO*\n\n" +
			"Olá *{{associado}}*,\nSeu agendamento para oficina foi confirmado para o dia *{{agendamento}}*.\n\n" +
			"📍 Local: {{local}}\n\nTécnico Responsável: {{tecnico}}"),

		"termo-acordo-terceiro": template.Dynamic(termoAcordoTerceiro),

		// Peças é um termo direto em PDF, sem mensagem de WhatsApp.
		"termo_entrega_pecas": template.Template{},

		"termo-recebimento-rastreador": template.Dynamic(termoRecebimentoRastreador),

		"protocolo-instalar-rastreador": template.Dynamic(protocoloRastreador),

		"orientacoes-rastreamento": template.Dynamic(orientacoesRastreamento),

		"recibo-prestador": template.Dynamic(reciboPrestador),
		"recibo-estagio": template.Dynamic(func(data *formdata.Data) string {
			return reciboEstagio(data, "a título de bolsa estágio")
		}),
		"recibo-transporte": template.Dynamic(func(data *formdata.Data) string {
			return reciboEstagio(data, "a título de vale transporte")
		}),
		"recibo-cheque":                template.Dynamic(reciboCheque),
		"termo-indenizacao-pecuniaria": template.Dynamic(termoIndenizacaoPecuniaria),
	}
}

func aberturaAssistencia(data *formdata.Data) string {
	base := template.Substitute("🚨 *BR CLUBE - ABERTURA DE ATENDIMENTO* 🚨\n\n"+
		"*Protocolo:* {{protocolo}}\n*Solicitante:* {{solicitante}}\n*Telefone:* {{telefone}}\n"+
		"*Placa:* {{placa}}\n*Modelo:* {{modelo}}\n*Situação:* {{adimplencia}}\n"+
		"*Serviço:* {{servico}}\n*Origem:* {{endereco-origem}}\n*Destino:* {{endereco-destino}}\n"+
		"*Hora da Solicitação:* {{hora_solicitacao}}", data)

	if parecer := data.Get("excepcionalidade"); parecer != "" {
		base += fmt.Sprintf("\n\n*Parecer do Supervisor:* %s", parecer)
		if motivo := data.Get("motivo_excepcionalidade"); motivo != "" {
			base += fmt.Sprintf("\n*Motivo:* %s", motivo)
		}
	}
	return base
}

func adesaoWelcome(data *formdata.Data) string {
	var pagamento string
	switch data.Get(template.PaymentMethodField) {
	case template.PaymentMethodBoleto:
		pagamento = "💳 Forma de pagamento da mensalidade: Boleto\n\n" +
			"Vencimento escolhido: dia {{vencimento}} de cada mês.\n" +
			"O boleto será enviado pelo WhatsApp até 5 dias antes do vencimento.\n" +
			"Evite atrasos, o pagamento em dia é impreterível/imprescindível para manter sua proteção ativa — com todos os seus benefícios.\n" +
			"Não recebeu o boleto até 5 dias antes? Avise-nos com a maior brevidade possível para providenciarmos imediatamente.\n\n" +
			"Quer mais comodidade?\n" +
			"Você pode optar pela cobrança recorrente no cartão (não usa limite; funciona como assinatura):\n" +
			"🔗 Cadastrar cartão agora: https://portal.sivisweb.com.br/loja/012/login"
	case "cartao":
		pagamento = "💳 Forma de pagamento da mensalidade: Cobrança recorrente no cartão\n\n" +
			"Sua mensalidade será lançada automaticamente no cartão na data combinada. ✅\n" +
			"✅ Sem boletos • ✅ Sem fricção • ✅ Mais comodidade"
	}

	suffix := "o"
	if data.Get("genero") == "feminino" {
		suffix = "a"
	}

	msg := "🎉 Bem-vind" + suffix + ", {{associado}}!\n" +
		"Você agora faz parte da comunidade BR Clube!\n" +
		"Nossa missão é cuidar do que é importante para você e estar ao seu lado sempre que precisar.\n" +
		"Com excelência, oferecemos uma nova perspectiva de proteção patrimonial para você e sua família. 💙💙\n\n" +
		"✅ Confira seus dados cadastrados:\n" +
		"🅿 Placa: {{placa}}\n" +
		"📍 Endereço: {{endereco}}\n" +
		"📬 CEP: {{cep}}\n" +
		"📧 E-mail: {{email}}\n" +
		"📲 Telefone para contato: {{telefone}}\n" +
		"Se encontrar algum erro ou houver mudança de endereço, e-mail, telefone ou CEP, por favor, nos avise prontamente para mantermos seu cadastro atualizado.\n\n" +
		pagamento + "\n\n" +
		"🆘 Canais oficiais\n" +
		"FALE CONOSCO: 4020-0164\n" +
		"ASSISTÊNCIA 24h (Brasil): WhatsApp: 4020-0164 Telefone: 4020-0164\n\n" +
		"🚀 Continue com a BR Clube\n" +
		"Fique por dentro de benefícios, descontos e conteúdos exclusivos para associados:\n" +
		"🌐 www.brclube.org\n" +
		"📸 @brclubeoficial"

	return template.Substitute(msg, data)
}

func termoCancelamento(data *formdata.Data) string {
	dtHoje := format.Date(data.Get("data_hoje"))

	return `<html>
<head>
<meta charset="UTF-8">
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; margin: 20px; color: #000; }
  .header { text-align: center; margin-bottom: 30px; }
  .header h1 { margin: 0; text-decoration: underline; font-size: 18px; text-transform: uppercase; }
  .section { margin-bottom: 20px; text-align: justify; }
  .section-title { text-align: center; font-weight: bold; margin: 20px 0 10px 0; font-size: 14px; text-transform: uppercase; }
  .data-item { margin: 5px 0; font-size: 12px; }
  .signature { margin-top: 50px; text-align: center; }
  .line { border-top: 1px solid black; width: 250px; margin: 0 auto 5px auto; }
</style>
</head>
<body>
  <div class="header">
    <img src="` + logoImage + `" width="80" alt="BR Clube" />
    <h1>TERMO DE CANCELAMENTO</h1>
  </div>

  <div class="section">
    Solicito que a partir do dia <strong>` + dtHoje + `</strong>, o cancelamento da filiação do veículo abaixo descrito junto a Associação BR CLUBE DE BENEFÍCIOS. Ciente de que meu veículo se encontra a partir desta data, sem qualquer cobertura, portanto, não mais poderei usufruir de qualquer vantagem oferecida pela BR CLUBE.
  </div>

  <div class="section-title">DADOS DO VEÍCULO</div>

  <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
    <tr>
      <td style="width: 50%; vertical-align: top; padding: 5px; border-right: 1px solid #ccc;">
        <div class="data-item"><strong>Tipo:</strong> ` + data.Get("tipo") + `</div>
        <div class="data-item"><strong>Placa:</strong> ` + data.Get("placa") + `</div>
        <div class="data-item"><strong>Marca:</strong> ` + data.Get("marca") + `</div>
        <div class="data-item"><strong>Modelo:</strong> ` + data.Get("modelo") + `</div>
        <div class="data-item"><strong>Chassi:</strong> ` + data.Get("chassi") + `</div>
      </td>
      <td style="width: 50%; vertical-align: top; padding: 5px;">
        <div class="data-item"><strong>RENAVAM:</strong> ` + data.Get("renavam") + `</div>
        <div class="data-item"><strong>Cor:</strong> ` + data.Get("cor") + `</div>
        <div class="data-item"><strong>Ano modelo:</strong> ` + data.Get("ano_modelo") + `</div>
        <div class="data-item"><strong>Ano fabricação:</strong> ` + data.Get("ano_fabricacao") + `</div>
        <div class="data-item"><strong>Código FIPE:</strong> ` + data.Get("fipe") + `</div>
      </td>
    </tr>
  </table>

  <div class="signature">
    <div style="text-align: right; margin-bottom: 40px;">Goiânia - ` + dtHoje + `</div>

    <div class="line"></div>
    <div><strong>` + data.Get("associado") + `</strong></div>
    <div>CPF: ` + data.Get("cpf") + `</div>

    <div style="margin-top: 40px;">
        <img src="` + signatureImage + `" width="150" alt="Assinatura" />
    </div>
  </div>
</body>
</html>`
}

func mensagemCobranca(data *formdata.Data) string {
	var lista strings.Builder
	for _, boleto := range data.Entries("boletos") {
		fmt.Fprintf(&lista, "Vencimento: %s\nValor: %s\n\n", boleto.Get("data_vencimento"), boleto.Get("valor"))
	}

	tratamento := "Sr"
	if data.Get("genero") == "feminino" {
		tratamento = "Sra"
	}

	msg := "Olá, {{associado}}!\n\nTudo bem com você?\n\n" +
		tratamento + ". {{associado}}, até o presente momento nosso sistema não identificou o pagamento dos seguintes boletos vencidos.\n\n" +
		"Placa/Veículo: {{placa}}\n\n" +
		lista.String() +
		"Neste caso, informamos que o pagamento AINDA poderá ser feito via PIX, sem ocorrência de juros por atraso. Nosso código pix é CNPJ:\n\n" +
		"40.410.992/0001-40\n\n" +
		"Após o pagamento, compartilhe o comprovante por aqui, por gentileza, para informarmos a baixa no sistema.\n\n" +
		"Caso o pagamento já tenha sido realizado, por favor desconsiderar essa mensagem.\n\n" +
		"De já, externamos nossa gratidão!\n\n" +
		"Equipe BR Clube!"

	return template.Substitute(msg, data)
}

func termoAcordo(data *formdata.Data) string {
	dtHoje := format.Date(data.Get("data_hoje"))
	dtVenc := format.Date(data.Get("data_vencimento_entrada"))
	numero := data.Get("numero_negociacao")

	return docStyle + `
<div class="page">
  <div class="doc-title">TERMO ADITIVO N.° ` + numero + ` AO INSTRUMENTO DE CONFISSÃO DE DÍVIDA N.° ` + numero + `.</div>

  <div class="doc-text">
    <strong>CREDOR(A):</strong> ` + associationName + `, pessoa jurídica de direito privado,
    sem fins lucrativos, inscrita no CNPJ nº 40.410.992.0001/40 com sede na Av. Deputado Jamel
    Cecílio, nº 2496, andar 14 sala 141, Jardim Goiás, nesta capital, mentora da Associação Br
    clube de benefícios, sem fins lucrativos.
  </div>

  <div class="doc-text bold">
    DEVEDOR(A): ` + data.Get("nome_devedor") + ` Brasileira, Portador(a) do RG ` + data.Get("rg") + ` e do CPF:
    ` + data.Get("cpf") + `, Residente e Domiciliado À ` + data.Get("endereco") + `.
  </div>

  <div class="doc-text bold">
    As partes acima qualificadas querem retificar, como de fato RETIFICAM as cláusulas da
    Confissão de Dívida nº ` + numero + ` referente oriunda da proteção veicular, nos termos que se
    seguem:
  </div>

  <div class="doc-text bold">
    As partes celebram a presente renegociação de forma livre e consciente, sendo a mesma
    decorrente do inadimplemento do(a) Devedor(a), referente parcelas em atraso, com valor
    total de R$ ` + data.Get("total_debito") + `. O devedor solicitou o primeiro pagamento no valor de R$ ` + data.Get("valor_entrada") + ` e o
    pagamento posterior do saldo devedor remanescente em ` + data.Get("parcelas_restantes") + ` vezes de R$ ` + data.Get("valor_parcela") + `. A proposta
    foi acatada pelo credor, que executou a cobrança da entrada, que deverá ser paga até o
    dia ` + dtVenc + `, e fará cobrança do valor remanescente nos meses subsequentes, até
    completa quitação.
  </div>

  <div class="doc-text">
    As parcelas decorrentes do presente acordo são representadas por boletos bancários,
    entregues ao <strong>DEVEDOR(A)</strong> em datas próximas ao vencimento.
  </div>

  <div class="doc-text">
    Cumprida a condição de validade supracitada, o não pagamento de quaisquer das parcelas do
    presente acordo redundará no vencimento antecipado da dívida, facultando ao credor, imediato
    ajuizamento da Execução Judicial do Acordo, ficando ajustado uma multa de 10% (dez por
    cento), juros de 1% ao mês, honorários advocatícios de 05% (cinco) sobre o valor das parcelas
    não quitadas, além do pagamento de despesas administrativas e custas processuais, caso haja,
    independentemente de interpelação. Facultar-se-á à Credora, imediato ajuizamento da
    execução judicial do acordo, pois, a presente confissão de dívida é título executivo extrajudicial,
    nos exatos termos do artigo 784, inciso III, do Código de Processo Civil.
  </div>

  <div class="signature-area">
    <div style="text-align: right; margin-bottom: 40px;">Goiânia, ` + dtHoje + `</div>

    <div class="line"></div>
    <div><strong>` + data.Get("nome_devedor") + `</strong></div>
    <div>CPF: ` + data.Get("cpf") + `</div>
  </div>
</div>`
}

func confirmarRecebimento(data *formdata.Data) string {
	associado := data.Get("associado")
	switch data.Get("select") {
	case "sim":
		return associado + ", somos felizes por ter você com a gente. Nesse kit contém todas as nossas informações para que você possa utilizar bem a nossa proteção BR CLUBE. Mas se ficar alguma dúvida, é só chamar a gente aqui, que teremos o maior prazer em atender. Lembre-se: Se é importante pra você, é importante pra nós!"
	case "nao":
		return associado + ", lamentamos saber que ainda não recebeu o seu kit. Iremos verificar o que houve e, se for o caso, faremos o envio de um novo kit para você. Mas se ficar alguma dúvida, é só chamar a gente aqui, que teremos o maior prazer em atender. Lembre-se: Se é importante pra você, é importante pra nós!"
	default:
		dt := format.Date(data.Get("data"))
		return "Olá " + associado + ", consta em nosso sistema que o seu Kit do associado foi recebido por " + data.Get("recebido_por") + ", no dia " + dt + ". Um envelope contendo um lixocar BR CLUBE, cheirinho, um adesivo automotivo e seus manuais das assistências e coberturas contratadas. Você confirma o recebimento?"
	}
}

func agendamentoOficina(data *formdata.Data) string {
	return "*Confirmação do seu agendamento na* " + data.Get("oficina") + " *com o responsável* " + data.Get("responsavel") + ".\n" +
		"*Data e horário do agendamento:* " + data.Get("datahr") + "\n" +
		"*Serviço agendado:* " + data.Get("servico") + "\n" +
		"*Local:* " + data.Get("endereco") + "\n\n" +
		"Recomendamos a retirada dos objetos de valor de dentro de seu veículo antes do atendimento.\n\n" +
		"*Obs.:* Muito importante a sua pontualidade para que possam também ser pontuais no seu atendimento.\n\n" +
		"Caso não possa comparecer, por gentileza nos informar através desse canal ou no telefone 4020-0164\n\n" +
		"Cordialmente,\n\nCentral de Agendamento\n\n*BR Clube.*"
}

func termoEntregaVeiculo(data *formdata.Data) string {
	dtHoje := format.Date(data.Get("data_hoje"))
	dtInicio := format.Date(data.Get("data_inicio"))
	dtConclusao := format.Date(data.Get("data_conclusao"))

	return docStyle + `
<div class="doc-title">TERMO DE ENTREGA DE VEÍCULO</div>

<div class="doc-text"><strong>Responsável pelo veículo:</strong> ` + data.Get("responsavel") + `</div>
<div class="doc-text"><strong>CPF/CNPJ:</strong> ` + data.Get("cpf_cnpj") + `</div>
<div class="doc-text"><strong>Veículo:</strong> ` + data.Get("veiculo") + `</div>
<div class="doc-text"><strong>Ano:</strong> ` + data.Get("ano") + `</div>
<div class="doc-text"><strong>Placa:</strong> ` + data.Get("placa") + `</div>
<div class="doc-text"><strong>Data de início dos reparos:</strong> ` + dtInicio + `</div>
<div class="doc-text"><strong>Data de conclusão dos reparos:</strong> ` + dtConclusao + `</div>

<div class="doc-text">
  Declaração: <br><br>
  Recebi o veículo acima identificado, devidamente reparado dos danos sofridos de objeto de
  acidente de trânsito, outorgando a mais plena, rasa, irrevogável e irretratável quitação,
  passada, presente e futura, para nada mais reclamar, em Juízo ou fora dele, seja a que título
  for, renunciando expressamente a todo e qualquer outro direito que possa vir a ter em
  decorrência do evento. <br><br>
  Sendo este termo assinado, a quitação é dada à Br Clube, oficina reparadora e ao causador
  do evento.
</div>

<div class="signature-area">
  <div style="text-align: right; margin-bottom: 40px;">Goiânia, ` + dtHoje + `</div>

  <div class="line"></div>
  <div><strong>` + data.Get("responsavel") + `</strong></div>
</div>`
}

func termoAcordoTerceiro(data *formdata.Data) string {
	terceiro := data.Get("terceiro")

	return docStyle + `
<h1 class="doc-title">TERMO DE ACORDO E AMPARO</h1>

<p class="doc-text">
  Por este instrumento, a <strong>` + associationName + `</strong>, pessoa jurídica
  de direito privado, CNPJ no ` + associationCNPJ + `, com sede na Avenida Deputado
  Jamel Cecílio, no 2496, Jardim Goiás, Município de Goiânia, Estado de Goiás, e, de
  outro lado, o terceiro, <strong>` + terceiro + `</strong>, brasileiro, inscrita sob o CPF
  no ` + data.Get("cpf") + `, portador do RG no ` + data.Get("rg") + ` DGPC GO, ajustam, entre si, o
  seguinte termo de amparo:
</p>

<p class="doc-text">
  A BR CLUBE é um grupo associativo que realiza a divisão das despesas passadas e
  ocorridas entre seus membros. A ela recai a responsabilidade de amparar os danos
  sofridos e causados por seus associados, sendo, contudo, respeitados os limites e
  condições determinadas pelo Regulamento Interno e nos termos do Art. 421, do
  Código Civil.
</p>

<p class="doc-text">
  Considerando o evento de acidente de trânsito ocorrido em <strong>` + format.Date(data.Get("data_evento")) + `</strong>, lavrado pelo
  Boletim de Ocorrência no <strong>` + data.Get("boletim_ocorrencia") + `</strong>, envolvendo o veículo do <strong>ASSOCIADO</strong> marca
  <strong>` + data.Get("marca") + `</strong>, modelo <strong>` + data.Get("modelo") + `</strong>, ano <strong>` + data.Get("ano") + `</strong>, placa <strong>` + data.Get("placa") + `</strong>, cor <strong>` + data.Get("cor") + `</strong>, a BR CLUBE
  compromete-se a reembolsar o terceiro <strong>` + terceiro + `</strong> no montante
  de <strong>R$ ` + data.Get("valor") + ` (` + data.Get("valor_extenso") + `)</strong>, a fim de reiterar a boa-fé e o
  compromisso com o bom atendimento de nossos associados e terceiros.
</p>

<p class="doc-subtitle">FORMA DE PAGAMENTO</p>

<p class="doc-text">
  A quitação do valor será realizada exclusivamente por meio de transferência via PIX,
  utilizando a chave PIX do terceiro, que corresponde à chave <strong>` + data.Get("pix") + `</strong>.
  Com o pagamento supracitado, o <strong>terceiro ` + terceiro + `</strong>
  reconhece, com fulcro no Art. 320, do Código Civil, não ter mais direito algum além do
  que ora recebe, dando à BR CLUBE a mais plena, rasa, irrevogável e irretratável
  quitação quanto a todas as despesas originadas do evento noticiado no Boletim de
  Ocorrência acima referido, passada, presente e futura, para nada mais reclamar, em
  Juízo ou fora dele, seja a que título for, renunciando expressamente a todo e qualquer
  outro direito ou fato que possa vir a ter em decorrência do presente evento,
  responsabilizando-se integralmente por qualquer medida que o associado ou qualquer
  outro interessado venha a interpor face ao referido evento no que pertine ao referido
  veículo.
</p>

<p class="doc-text">
  Por fim, nos termos do Art. 104 do Código Civil, cumpre-se que ambas as partes são
  capazes e que o presente acordo ocorreu sem nenhum vício, reconhecendo que a BR
  CLUBE cumpriu integralmente o que se comprometeu por meio de seu Regulamento
  Interno, não tendo mais, ambas as partes, nada a reclamar, conforme já mencionado,
  em tempo algum, sobre os respectivos valores, títulos e condições.
</p>

<div class="signature-area">
  <div style="text-align: right; margin-bottom: 40px;">Goiânia, ` + format.Date(data.Get("data_hoje")) + `</div>

  <div class="line"></div>
  <div><strong>` + terceiro + `</strong></div>

  <img src="` + signatureImage + `" style="width: 200px; margin-top: 40px;">
</div>`
}

func termoRecebimentoRastreador(data *formdata.Data) string {
	var lista strings.Builder
	for i, eq := range data.Entries("equipamentos") {
		fmt.Fprintf(&lista, "\n<div style=\"margin-bottom: 5px;\"><strong>Equipamento %d:</strong> IMEI %s</div>", i+1, eq.Get("imei"))
	}

	return docStyle + `
<div class="doc-title">
  TERMO DE RECEBIMENTO E RESPONSABILIDADE COM EQUIPAMENTO DE RASTREAMENTO
</div>

<div class="doc-text">
  Por meio deste documento, eu, ` + data.Get("instalador") + `, com cadastro no CPF de nº ` + data.Get("cpf") + `, RG ` + data.Get("rg") + `,
  técnico de instalação de rastreadores, declaro que recebi os equipamentos correspondentes
  aos seguintes códigos:
</div>

<div class="doc-text">` + lista.String() + `
</div>

<div class="doc-text">
  Me responsabilizo pelo seu bom uso e, caso o material não seja utilizado, asseguro devolvê-lo
  na sede da Associação BR CLUBE. Ao preencher assinar o presente termo, demonstro estar
  ciente das condições estabelecidas pela BR CLUBE. Declaro também estar ciente de que não
  há vínculo empregatício entre as partes, e que minha atuação se dará de forma independente,
  não caracterizando relação de emprego nos termos da legislação trabalhista vigente.
</div>

<div class="signature-area">
  <div style="text-align: right; margin-bottom: 40px;">Goiânia, ` + format.Date(data.Get("data_hoje")) + `</div>

  <div class="line"></div>
  <div>Assinatura do(a) prestador(a)</div>
</div>`
}

var protocolTypes = map[string]string{
	"instalacao":    "INSTALAÇÃO",
	"desinstalacao": "DESINSTALAÇÃO",
	"manutencao":    "MANUTENÇÃO",
}

func protocoloRastreador(data *formdata.Data) string {
	tipo, ok := protocolTypes[data.Get("tipo_protocolo")]
	if !ok {
		tipo = "SERVIÇO"
	}

	return "*PROTOCOLO DE AGENDAMENTO PARA " + tipo + " DE RASTREADOR*\n\n" +
		"*Protocolo:* " + data.Get("protocolo") + "\n\n" +
		"*Nome completo:* " + data.Get("nome") + "\n\n" +
		"*CPF/CNPJ:* " + data.Get("cpf_cnpj") + "\n\n" +
		"*Data de nascimento:* " + format.Date(data.Get("data_nasc")) + "\n\n" +
		"*E-mail:* " + data.Get("email") + "\n\n" +
		"*Telefone:* " + data.Get("telefone") + "\n\n" +
		"*Gênero:* " + data.Get("genero") + "\n\n" +
		"*Placa:* " + data.Get("placa") + "\n\n" +
		"*Modelo:* " + data.Get("veiculo") + "\n\n" +
		"*Cor:* " + data.Get("cor") + "\n\n" +
		"*Ano:* " + data.Get("ano") + "\n\n" +
		"*Renavam:* " + data.Get("renavam") + "\n\n" +
		"*Chassi:* " + data.Get("chassi") + "\n\n" +
		"*N.º do IMEI:* " + data.Get("imei") + "\n\n" +
		"*Plataforma:* " + data.Get("plataforma") + "\n\n" +
		"*Endereço:* " + data.Get("endereco") + "\n\n" +
		"*Data:* " + data.Get("data_horario") + "\n\n" +
		"*Técnico:* " + data.Get("tecnico")
}

type trackingPlatform struct {
	name        string
	linkAndroid string
	linkIOS     string
	linkSite    string
}

var trackingPlatforms = map[string]trackingPlatform{
	"redeloc": {
		name:        "REDELOC",
		linkAndroid: "https://play.google.com/store/apps/details?id=org.logica.rastreamento.app",
		linkIOS:     "https://apps.apple.com/br/app/logica-monitoramento/id1354154680",
		linkSite:    "https://www.redeloc.com.br/",
	},
	"rastreie_brasil": {
		name:        "RASTREIE BRASIL",
		linkAndroid: "https://play.google.com/store/apps/details?id=org.logica.rastreiebrasil.app",
		linkIOS:     "https://apps.apple.com/br/app/rastreie-brasil/id1508025177",
		linkSite:    "https://rastreiebrasil2.rastreiebrasil.com.br/login/login",
	},
	"locami": {
		name:        "LOCAMI",
		linkAndroid: "https://play.google.com/store/apps/details?id=org.traccar.manager",
		linkIOS:     "https://apps.apple.com/us/app/traccar-manager/id1113966562",
	},
}

func orientacoesRastreamento(data *formdata.Data) string {
	platform := trackingPlatforms[data.Get("plataforma")]

	var download string
	switch data.Get("os") {
	case "android":
		download = "Disponível para Android:\n" + platform.linkAndroid
	case "ios":
		download = "Disponível para iOS:\n" + platform.linkIOS
	default:
		download = "Disponível para Android:\n" + platform.linkAndroid + "\n\nDisponível para iOS:\n" + platform.linkIOS
	}

	var locami string
	if platform.name == "LOCAMI" {
		locami = "Ao abrir o aplicativo no seu celular, selecione o ícone de Globo para mudar o servidor. No campo servidor, insira o endereço: https://track.grupo360graus.com\nAgora é só salvar e pronto!\n"
	}

	var site string
	if platform.linkSite != "" {
		site = "Acesse também pelo site: \n" + platform.linkSite
	}

	msg := "Olá, " + data.Get("associado") + ".\n\n" +
		"O seu equipamento de rastreador já foi instalado, e nós gostaríamos de te orientar sobre o procedimento de monitoramento do seu veículo. É muito simples!\n\n" +
		"1. O primeiro passo é baixar, na loja de aplicativos do seu celular, o app " + platform.name + ".\n\n" +
		download + "\n" + site + "\n\n" +
		"2. Após baixar o app, você poderá entrar no monitoramento do veículo utilizando seu login e senha no primeiro acesso.\n\n" +
		"LOGIN: " + data.Get("login") + "\n" +
		"SENHA: " + data.Get("senha") + "\n\n" +
		locami + "\n" +
		"Pronto!\n\n" +
		"Seguindo as orientações acima você poderá usufruir das funcionalidades de rastreamento e monitoramento disponíveis.\n\n" +
		"Lembrando que o equipamento está sendo emprestado para prestar o serviço, sendo necessário a devolução e ou autorização para a retirada ao final do contrato, caso não seja autorizado, será cobrado o valor do equipamento conforme assinado no contrato.\n\n" +
		"Qualquer dúvida, chama a gente aqui.\n\n" +
		"Muito obrigado!\n\n" +
		"*Equipe BR Clube!*"

	if platform.name == "LOCAMI" {
		return `<div style="white-space: pre-wrap; font-family: inherit;">` + msg + `</div>
<div style="margin-top: 20px;">
  <img src="/images/locami1.webp" style="max-width: 100%; margin-bottom: 10px;">
  <img src="/images/locami2.webp" style="max-width: 100%;">
</div>`
	}
	return msg
}

func personDesignation(data *formdata.Data) string {
	if data.Get("tipo_pessoa") == "pj" {
		return "inscrita no CNPJ de nº"
	}
	return "inscrito(a) no CPF de nº"
}

func reciboPrestador(data *formdata.Data) string {
	return "DECLARAÇÃO DE RECEBIMENTO\n\n" +
		"Eu, " + data.Get("prestador") + ", " + personDesignation(data) + " " + data.Get("cnpj_cpf") + ", declaro que recebi da " +
		associationName + ", CNPJ " + associationCNPJ + ", a importância de " + format.Currency(data.Get("valor")) +
		" (" + data.Get("valor_extenso") + "), referente ao serviço de " + data.Get("servico") +
		" prestado ao associado " + data.Get("associado") + ", veículo de placa " + data.Get("placa") +
		", realizado em " + format.Date(data.Get("data_servico")) + ".\n\n" +
		"Para maior clareza, firmo a presente declaração, dando plena, rasa e irrevogável quitação do valor recebido.\n\n" +
		"Goiânia, " + format.Date(data.Get("data_hoje")) + "\n\n" +
		"______________________________\n" +
		data.Get("prestador")
}

func reciboEstagio(data *formdata.Data, titulo string) string {
	return "DECLARAÇÃO DE RECEBIMENTO\n\n" +
		"Eu, " + data.Get("estagiario") + ", inscrito(a) no CPF de nº " + data.Get("cpf") + ", declaro que recebi da " +
		associationName + ", CNPJ " + associationCNPJ + ", a importância de " + format.Currency(data.Get("valor")) +
		" (" + data.Get("valor_extenso") + "), " + titulo + ".\n\n" +
		"Para maior clareza, firmo a presente declaração, dando plena, rasa e irrevogável quitação do valor recebido.\n\n" +
		"Goiânia, " + format.Date(data.Get("data_hoje")) + "\n\n" +
		"______________________________\n" +
		data.Get("estagiario")
}

func reciboCheque(data *formdata.Data) string {
	return "DECLARAÇÃO DE RECEBIMENTO DE CHEQUE\n\n" +
		"Eu, " + data.Get("prestador") + ", " + personDesignation(data) + " " + data.Get("cnpj_cpf") + ", declaro que recebi da " +
		associationName + ", CNPJ " + associationCNPJ + ", um cheque no valor de " + format.Currency(data.Get("valor")) +
		" (" + data.Get("valor_extenso") + ").\n\n" +
		"Para maior clareza, firmo a presente declaração, dando plena, rasa e irrevogável quitação do valor recebido.\n\n" +
		"Goiânia, " + format.Date(data.Get("data_hoje")) + "\n\n" +
		"______________________________\n" +
		data.Get("prestador")
}

func termoIndenizacaoPecuniaria(data *formdata.Data) string {
	terceiro := data.Get("terceiro_nome")

	return docStyle + `
<h1 class="doc-title">TERMO DE INDENIZAÇÃO PECUNIÁRIA</h1>

<p class="doc-text">
  Por este instrumento, a <strong>` + associationName + `</strong>, pessoa jurídica de direito
  privado, CNPJ no ` + associationCNPJ + `, com sede na Avenida Deputado Jamel Cecílio, no 2496,
  Jardim Goiás, Município de Goiânia, Estado de Goiás, e, de outro lado,
  <strong>` + terceiro + `</strong>, ` + data.Get("terceiro_nacionalidade") + `, inscrito(a) sob o CPF
  no ` + data.Get("terceiro_cpf") + `, portador(a) do RG no ` + data.Get("terceiro_rg") + `, residente e domiciliado(a) à
  ` + data.Get("terceiro_endereco") + `, ajustam o presente termo de indenização pecuniária.
</p>

<p class="doc-text">
  Considerando o evento de trânsito ocorrido em <strong>` + format.Date(data.Get("data_evento")) + `</strong>, registrado pelo
  Boletim de Ocorrência no <strong>` + data.Get("numero_boletim") + `</strong>, envolvendo o veículo marca
  <strong>` + data.Get("veiculo_marca") + `</strong>, modelo <strong>` + data.Get("veiculo_modelo") + `</strong>, ano <strong>` + data.Get("veiculo_ano") + `</strong>,
  placa <strong>` + data.Get("veiculo_placa") + `</strong>, cor <strong>` + data.Get("veiculo_cor") + `</strong>, a BR CLUBE compromete-se a indenizar
  <strong>` + terceiro + `</strong> no montante de <strong>` + format.Currency(data.Get("valor_total")) + ` (` + data.Get("valor_extenso") + `)</strong>,
  nas seguintes condições de pagamento: ` + data.Get("condicoes_pagamento") + `.
</p>

<p class="doc-text">
  Com o pagamento supracitado, o beneficiário dá à BR CLUBE a mais plena, rasa, irrevogável e
  irretratável quitação quanto a todas as despesas originadas do evento acima referido, para nada
  mais reclamar, em Juízo ou fora dele, seja a que título for.
</p>

<div class="signature-area">
  <div style="text-align: right; margin-bottom: 40px;">Goiânia, ` + format.Date(data.Get("data_hoje")) + `</div>

  <div class="line"></div>
  <div><strong>` + terceiro + `</strong></div>
</div>`
}

// docStyle is the shared stylesheet embedded at the top of the HTML terms.
const docStyle = `<style>
  .doc-title { text-align: center; margin-bottom: 20px; font-weight: bold; font-size: 16px; text-transform: uppercase; }
  .doc-subtitle { text-align: start; margin-bottom: 20px; font-weight: bold; font-size: 16px; text-transform: uppercase; }
  .doc-text { text-align: justify; margin-bottom: 20px; line-height: 1.5; font-size: 14px; }
  .section-title { text-align: center; font-weight: bold; margin: 20px 0 10px 0; font-size: 14px; text-transform: uppercase; }
  .bold { font-weight: bold; }
  .signature-area { margin-top: 50px; text-align: center; font-size: 14px; }
  .line { border-top: 1px solid black; width: 250px; margin: 0 auto 5px auto; }
</style>`
