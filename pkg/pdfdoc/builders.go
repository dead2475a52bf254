package pdfdoc

import (
	"fmt"

	"github.com/rodrigobarrosparreira/br-desk/pkg/format"
	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
)

const (
	associationName = "ASSOCIAÇÃO BR CLUBE DE BENEFÍCIOS"
	associationCNPJ = "40.410.992/0001-40"
)

// Build assembles the document of the given type from form data.
func Build(t DocType, data *formdata.Data) (Document, error) {
	builder, ok := builders[t]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return Document{Type: t, Blocks: builder(data)}, nil
}

var builders = map[DocType]func(*formdata.Data) []Block{
	TypeTermoAcordo:                termoAcordoBlocks,
	TypeCobranca:                   cobrancaBlocks,
	TypeRecibo:                     reciboBlocks,
	TypeTermoCancelamento:          termoCancelamentoBlocks,
	TypeEntregaVeiculo:             entregaVeiculoBlocks,
	TypeTermoAcordoAmparo:          termoAcordoAmparoBlocks,
	TypeTermoRecebimentoRastreador: recebimentoRastreadorBlocks,
	TypeTermoPecas:                 termoPecasBlocks,
	TypeTermoReciboPrestador:       reciboPrestadorBlocks,
	TypeTermoReciboEstagio:         reciboEstagioBlocks,
	TypeTermoReciboTransporte:      reciboTransporteBlocks,
	TypeTermoReciboCheque:          reciboChequeBlocks,
	TypeTermoIndenizacao:           termoIndenizacaoBlocks,
}

func termoAcordoBlocks(data *formdata.Data) []Block {
	numero := data.Get("numero_negociacao")
	devedor := data.Get("nome_devedor")
	cpf := data.Get("cpf")

	return []Block{
		title(fmt.Sprintf("TERMO ADITIVO N.º %s AO INSTRUMENTO DE CONFISSÃO DE DÍVIDA N.º %s", numero, numero)),
		paragraph("CREDOR(A): " + associationName + ", pessoa jurídica de direito privado, sem fins lucrativos, " +
			"inscrita no CNPJ nº 40.410.992.0001/40 com sede na Av. Deputado Jamel Cecílio, nº 2496, andar 14 sala 141, " +
			"Jardim Goiás, nesta capital, mentora da Associação Br clube de benefícios, sem fins lucrativos."),
		paragraph(fmt.Sprintf("DEVEDOR(A): %s, Brasileira, Portador(a) do RG %s e do CPF: %s, Residente e Domiciliado À %s.",
			devedor, data.Get("rg"), cpf, data.Get("endereco"))),
		paragraph(fmt.Sprintf("As partes acima qualificadas querem retificar, como de fato RETIFICAM as cláusulas da "+
			"Confissão de Dívida nº %s referente oriunda da proteção veicular, nos termos que se seguem:", numero)),
		paragraph(fmt.Sprintf("As partes celebram a presente renegociação de forma livre e consciente, sendo a mesma "+
			"decorrente do inadimplemento do(a) Devedor(a), referente parcelas em atraso, com valor total de %s. "+
			"O devedor solicitou o primeiro pagamento no valor de %s e o pagamento posterior do saldo devedor "+
			"remanescente em %s vezes de %s. A proposta foi acatada pelo credor, que executou a cobrança da entrada, "+
			"que deverá ser paga até o dia %s, e fará cobrança do valor remanescente nos meses subsequentes, "+
			"até completa quitação.",
			format.Currency(data.Get("total_debito")),
			format.Currency(data.Get("valor_entrada")),
			data.Get("parcelas_restantes"),
			format.Currency(data.Get("valor_parcela")),
			format.Date(data.Get("data_vencimento_entrada")))),
		paragraph("As parcelas decorrentes do presente acordo são representadas por boletos bancários, " +
			"entregues ao DEVEDOR(A) em datas próximas ao vencimento."),
		paragraph("Cumprida a condição de validade supracitada, o não pagamento de quaisquer das parcelas do presente " +
			"acordo redundará no vencimento antecipado da dívida, facultando ao credor, imediato ajuizamento da " +
			"Execução Judicial do Acordo, ficando ajustado uma multa de 10% (dez por cento), juros de 1% ao mês, " +
			"honorários advocatícios de 05% (cinco) sobre o valor das parcelas não quitadas, além do pagamento de " +
			"despesas administrativas e custas processuais, caso haja, independentemente de interpelação. " +
			"Facultar-se-á à Credora, imediato ajuizamento da execução judicial do acordo, pois, a presente confissão " +
			"de dívida é título executivo extrajudicial, nos exatos termos do artigo 784, inciso III, do Código de " +
			"Processo Civil."),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(devedor, true, "CPF: "+cpf),
	}
}

func cobrancaBlocks(data *formdata.Data) []Block {
	blocks := []Block{
		title("AVISO DE COBRANÇA"),
		paragraph(fmt.Sprintf("Olá, %s. Segue seus boletos:", data.Get("associado"))),
	}
	for _, boleto := range data.Entries("boletos") {
		blocks = append(blocks, paragraph(fmt.Sprintf("Venc: %s - Valor: R$ %s",
			boleto.Get("data_vencimento"), boleto.Get("valor"))))
	}
	return blocks
}

func reciboBlocks(data *formdata.Data) []Block {
	return []Block{
		title("RECIBO"),
		paragraph(fmt.Sprintf("Recebi de %s, a importância de %s (%s), referente a %s.",
			data.Get("associado"),
			format.Currency(data.Get("valor")),
			data.Get("valor_extenso"),
			data.Get("referente"))),
		paragraph("Para maior clareza, firmo o presente recibo, dando plena, rasa e irrevogável quitação do valor recebido."),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(associationName, true),
	}
}

func termoCancelamentoBlocks(data *formdata.Data) []Block {
	return []Block{
		title("TERMO DE CANCELAMENTO"),
		paragraph(fmt.Sprintf("Solicito que a partir do dia %s, o cancelamento da filiação do veículo abaixo descrito "+
			"junto a Associação BR CLUBE DE BENEFÍCIOS. Ciente de que meu veículo se encontra a partir desta data, "+
			"sem qualquer cobertura, portanto, não mais poderei usufruir de qualquer vantagem oferecida pela BR CLUBE.",
			format.Date(data.Get("data_cancelamento")))),
		title("DADOS DO VEÍCULO"),
		lines(
			"Tipo: "+data.Get("tipo"),
			"Placa: "+data.Get("placa"),
			"Marca: "+data.Get("marca"),
			"Modelo: "+data.Get("modelo"),
			"Chassi: "+data.Get("chassi"),
			"Renavam: "+data.Get("renavam"),
			"Cor: "+data.Get("cor"),
			"Ano Modelo: "+data.Get("ano_modelo"),
			"Ano Fabricação: "+data.Get("ano_fabricacao"),
			"Código FIPE: "+data.Get("fipe"),
		),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(data.Get("associado"), true, "CPF: "+data.Get("cpf")),
	}
}

func entregaVeiculoBlocks(data *formdata.Data) []Block {
	return []Block{
		title("TERMO DE ENTREGA DE VEÍCULO"),
		lines(
			"Responsável Pelo Veículo: "+data.Get("responsavel"),
			"CPF/CNPJ: "+data.Get("cpf_cnpj"),
			"Veículo: "+data.Get("veiculo"),
			"Ano: "+data.Get("ano"),
			"Placa: "+data.Get("placa"),
			"Data de Início dos Reparos: "+format.Date(data.Get("data_inicio")),
			"Data de Conclusão dos Reparos: "+format.Date(data.Get("data_conclusao")),
		),
		paragraph("Declaração:"),
		paragraph("Recebi o veículo acima identificado, devidamente reparado dos danos sofridos de objeto de acidente " +
			"de trânsito, outorgando a mais plena, rasa, irrevogável e irretratável quitação, passada, presente e " +
			"futura, para nada mais reclamar, em Juízo ou fora dele, seja a que título for, renunciando expressamente " +
			"a todo e qualquer outro direito que possa vir a ter em decorrência do evento."),
		paragraph("Sendo este termo assinado, a quitação é dada à Br Clube, oficina reparadora e ao causador do evento."),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(data.Get("responsavel"), false, "ASSINATURA DO ASSOCIADO"),
	}
}

func termoAcordoAmparoBlocks(data *formdata.Data) []Block {
	terceiro := data.Get("terceiro")

	return []Block{
		title("TERMO DE ACORDO E AMPARO"),
		paragraph(fmt.Sprintf("Por este instrumento, a %s, pessoa jurídica de direito privado, CNPJ no %s, com sede na "+
			"Avenida Deputado Jamel Cecílio, no 2496, Jardim Goiás, Município de Goiânia, Estado de Goiás, e, de outro "+
			"lado, o terceiro, %s, brasileiro, inscrita sob o CPF no %s, portador do RG no %s DGPC GO, ajustam, entre "+
			"si, o seguinte termo de amparo:",
			associationName, associationCNPJ, terceiro, data.Get("cpf"), data.Get("rg"))),
		boldParagraph("A BR CLUBE é um grupo associativo que realiza a divisão das despesas passadas e ocorridas entre " +
			"seus membros. A ela recai a responsabilidade de amparar os danos sofridos e causados por seus associados, " +
			"sendo, contudo, respeitados os limites e condições determinadas pelo Regulamento Interno e nos termos do " +
			"Art. 421, do Código Civil."),
		paragraph(fmt.Sprintf("Considerando o evento de acidente de trânsito ocorrido em %s, lavrado pelo Boletim de "+
			"Ocorrência no %s, envolvendo o veículo do ASSOCIADO marca %s, modelo %s, ano %s, placa %s, cor %s, a BR "+
			"CLUBE compromete-se a reembolsar o terceiro %s no montante de R$ %s (%s reais), a fim de reiterar a "+
			"boa-fé e o compromisso com o bom atendimento de nossos associados e terceiros.",
			format.Date(data.Get("data_evento")), data.Get("boletim_ocorrencia"),
			data.Get("marca"), data.Get("modelo"), data.Get("ano"), data.Get("placa"), data.Get("cor"),
			terceiro, data.Get("valor"), data.Get("valor_extenso"))),
		title("FORMA DE PAGAMENTO:"),
		paragraph(fmt.Sprintf("A quitação do valor será realizada exclusivamente por meio de transferência via PIX, "+
			"utilizando a chave PIX do terceiro, que corresponde à chave %s.", data.Get("pix"))),
		paragraph(fmt.Sprintf("Com o pagamento supracitado, o terceiro %s reconhece, com fulcro no Art. 320, do Código "+
			"Civil, não ter mais direito algum além do que ora recebe, dando à BR CLUBE a mais plena, rasa, "+
			"irrevogável e irretratável quitação quanto a todas as despesas originadas do evento noticiado no Boletim "+
			"de Ocorrência acima referido, passada, presente e futura, para nada mais reclamar, em Juízo ou fora dele, "+
			"seja a que título for, renunciando expressamente a todo e qualquer outro direito ou fato que possa vir a "+
			"ter em decorrência do presente evento, responsabilizando-se integralmente por qualquer medida que o "+
			"associado ou qualquer outro interessado venha a interpor face ao referido evento no que pertine ao "+
			"referido veículo.", terceiro)),
		paragraph("Por fim, nos termos do Art. 104 do Código Civil, cumpre-se que ambas as partes são capazes e que o " +
			"presente acordo ocorreu sem nenhum vício, reconhecendo que a BR CLUBE cumpriu integralmente o que se " +
			"comprometeu por meio de seu Regulamento Interno, não tendo mais, ambas as partes, nada a reclamar, " +
			"conforme já mencionado, em tempo algum, sobre os respectivos valores, títulos e condições."),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(terceiro, true, data.Get("cpf")),
	}
}

func recebimentoRastreadorBlocks(data *formdata.Data) []Block {
	blocks := []Block{
		title("TERMO DE RECEBIMENTO E RESPONSABILIDADE COM EQUIPAMENTO DE RASTREAMENTO"),
		paragraph(fmt.Sprintf("Por meio deste documento, eu, %s, com cadastro no CPF de n° %s, RG %s, técnico de "+
			"instalação de rastreadores, declaro que recebi os equipamentos correspondentes aos seguintes códigos:",
			data.Get("instalador"), data.Get("cpf"), data.Get("rg"))),
		title("Lista de Equipamentos:"),
	}
	for i, eq := range data.Entries("equipamentos") {
		blocks = append(blocks, paragraph(fmt.Sprintf("Equipamento %d: IMEI %s", i+1, eq.Get("imei"))))
	}
	blocks = append(blocks,
		paragraph("Me responsabilizo pelo seu bom uso e, caso o material não seja utilizado, asseguro devolvê-lo na "+
			"sede da Associação BR CLUBE. Ao preencher assinar o presente termo, demonstro estar ciente das condições "+
			"estabelecidas pela BR CLUBE. Declaro também estar ciente de que não há vínculo empregatício entre as "+
			"partes, e que minha atuação se dará de forma independente, não caracterizando relação de emprego nos "+
			"termos da legislação trabalhista vigente."),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature("Assinatura do(a) prestador(a)", false),
	)
	return blocks
}

func termoPecasBlocks(data *formdata.Data) []Block {
	pecas := data.Entries("pecas")
	rows := make([][]string, 0, len(pecas))
	for i, peca := range pecas {
		item := peca.Get("item")
		if item == "" {
			item = fmt.Sprintf("%d", i+1)
		}
		valor := peca.Get("valor")
		if valor != "" {
			valor = "R$ " + valor
		}
		rows = append(rows, []string{item, peca.Get("codigo"), peca.Get("produto"), peca.Get("quantidade"), valor})
	}

	return []Block{
		title("TERMO DE ENTREGA E RECEBIMENTO DE PEÇAS"),
		paragraph("Pelo presente instrumento, a Associação BR Clube de Benefícios, inscrita no CNPJ nº " +
			associationCNPJ + ", e a oficina abaixo identificada, firmam o presente Termo de Entrega e Recebimento de " +
			"Peças, nos seguintes termos:"),
		paragraph("Nome do Responsável pelo Recebimento: " + data.Get("responsavel")),
		paragraph("CPF: " + data.Get("cpf")),
		paragraph("Cargo/Função: " + data.Get("cargo")),
		title("Identificação do Veículo"),
		lines(
			"Associada: "+data.Get("associado"),
			"Placa do Veículo: "+data.Get("placa"),
			"Marca/Modelo: "+data.Get("marca_modelo"),
		),
		title("Peças Entregues"),
		{
			Kind:   KindTable,
			Header: []string{"ITEM", "CÓDIGO", "PRODUTO", "QTD", "VALOR"},
			Rows:   rows,
			Empty:  "Nenhuma peça listada.",
		},
		title("Declarações"),
		paragraph("A Oficina declara que as peças entregues foram solicitadas previamente, de acordo com a necessidade " +
			"técnica do reparo e que recebeu as peças em perfeitas condições, conferindo quantidade e descrição no ato " +
			"da entrega."),
		paragraph("A partir do recebimento, toda responsabilidade por perdas, danos ou substituições passa à oficina, " +
			"não cabendo à BR Clube responsabilidade por quaisquer intercorrências."),
		paragraph("Este documento visa assegurar a rastreabilidade e a segurança da operação logística."),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(data.Get("responsavel"), false, data.Get("cargo"), "CPF: "+data.Get("cpf")),
	}
}

func personClause(data *formdata.Data) string {
	if data.Get("tipo_pessoa") == "pj" {
		return "inscrito no CNPJ sob o n° "
	}
	return "inscrito no CPF sob o n° "
}

func reciboPrestadorBlocks(data *formdata.Data) []Block {
	return []Block{
		title("DECLARAÇÃO DE RECEBIMENTO"),
		paragraph(fmt.Sprintf("Declaro, para os devidos fins, que %s, %s%s, recebeu da Associação BR CLUBE DE "+
			"BENEFÍCIOS, inscrita no CNPJ sob o n° %s, um pagamento de R$ %s (%s reais), referente ao serviço de %s "+
			"para o(a) associado(a) %s, veículo de placa %s, serviço realizado dia %s.",
			data.Get("prestador"), personClause(data), data.Get("cnpj_cpf"), associationCNPJ,
			data.Get("valor"), data.Get("valor_extenso"), data.Get("servico"),
			data.Get("associado"), data.Get("placa"), format.Date(data.Get("data_servico")))),
		paragraph("Por ser verdade, assino"),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(data.Get("prestador"), false),
	}
}

func reciboEstagioBlocks(data *formdata.Data) []Block {
	return []Block{
		title("DECLARAÇÃO DE RECEBIMENTO"),
		paragraph(fmt.Sprintf("Declaro, para os devidos fins, que %s, portador do CPF %s, recebeu da Associação BR "+
			"CLUBE DE BENEFÍCIOS, inscrita no CNPJ sob o n° %s, o pagamento da bolsa estágio no valor de R$ %s (%s reais).",
			data.Get("estagiario"), data.Get("cpf"), associationCNPJ, data.Get("valor"), data.Get("valor_extenso"))),
		paragraph("Por ser verdade, assino"),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(data.Get("estagiario"), false),
	}
}

func reciboTransporteBlocks(data *formdata.Data) []Block {
	return []Block{
		title("DECLARAÇÃO DE RECEBIMENTO"),
		paragraph(fmt.Sprintf("Declaro, para os devidos fins, que %s, portador do CPF %s, recebeu da Associação BR "+
			"CLUBE DE BENEFÍCIOS, inscrita no CNPJ sob o n° %s, o pagamento do vale transporte no valor de R$ %s (%s reais).",
			data.Get("estagiario"), data.Get("cpf"), associationCNPJ, data.Get("valor"), data.Get("valor_extenso"))),
		paragraph("Por ser verdade, assino"),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(data.Get("estagiario"), false),
	}
}

func reciboChequeBlocks(data *formdata.Data) []Block {
	return []Block{
		title("DECLARAÇÃO DE RECEBIMENTO"),
		paragraph(fmt.Sprintf("Declaro, para os devidos fins, que %s, %s%s, recebeu da Associação BR CLUBE DE "+
			"BENEFÍCIOS, inscrita no CNPJ sob o n° %s, um cheque no valor de R$ %s (%s reais).",
			data.Get("prestador"), personClause(data), data.Get("cnpj_cpf"), associationCNPJ,
			data.Get("valor"), data.Get("valor_extenso"))),
		paragraph("Por ser verdade, assino"),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(data.Get("prestador"), false),
	}
}

func termoIndenizacaoBlocks(data *formdata.Data) []Block {
	terceiro := data.Get("terceiro_nome")
	nacionalidade := data.Get("terceiro_nacionalidade")
	if nacionalidade == "" {
		nacionalidade = "brasileiro"
	}
	boletim := data.Get("numero_boletim")

	return []Block{
		title("TERMO DE ACORDO E AMPARO"),
		paragraph(fmt.Sprintf("Por este instrumento, a %s, pessoa jurídica de direito privado, CNPJ n° %s, com sede na "+
			"Avenida Deputado Jamel Cecílio, 2496, Jardim Goiás, Município de Goiânia, Estado de Goiás e, de outro "+
			"lado, o terceiro, %s, %s, inscrito sob o CPF n° %s, C.I. n° %s, residente e domiciliado na %s, ajustam, "+
			"entre si, o seguinte termo de amparo:",
			associationName, associationCNPJ, terceiro, nacionalidade,
			data.Get("terceiro_cpf"), data.Get("terceiro_rg"), data.Get("terceiro_endereco"))),
		paragraph("A Br Clube é um grupo associativo que realiza a divisão das despesas passadas e ocorridas entre " +
			"seus membros. A ela recai a responsabilidade de amparar os danos sofridos e causados por seus associados, " +
			"sendo, contudo, respeitados os limites e condições determinadas pelo Regulamento Interno e nos termos do " +
			"Art. 421, do Código Civil."),
		paragraph(fmt.Sprintf("Considerando o(a) evento de acidente de trânsito ocorrido(a) em %s, lavrado pelo Boletim "+
			"de Ocorrência de nº %s, envolvendo o veículo do terceiro marca %s, modelo %s, ano %s, placa %s, cor %s:",
			format.Date(data.Get("data_evento")), boletim,
			data.Get("veiculo_marca"), data.Get("veiculo_modelo"), data.Get("veiculo_ano"),
			data.Get("veiculo_placa"), data.Get("veiculo_cor"))),
		paragraph(fmt.Sprintf("A BR CLUBE, a título de indenização por todas as despesas ocorridas com o TERCEIRO e o "+
			"veículo, realizará o pagamento do montante de R$ %s (%s), referente a indenização correspondente ao "+
			"conserto do veículo. A quitação do valor se dará por meio de %s.",
			data.Get("valor_total"), data.Get("valor_extenso"), data.Get("condicoes_pagamento"))),
		paragraph(fmt.Sprintf("Com o pagamento supracitado, o TERCEIRO %s, reconhece, com fulcro no Art. 320, do Código "+
			"Civil, não ter mais direito algum além do que ora recebe, dando à BR CLUBE a mais plena, rasa, "+
			"irrevogável e irretratável quitação quanto a todas as despesas originadas do evento noticiado no Boletim "+
			"de Ocorrência de nº %s, passada, presente e futura, para nada mais reclamar, em Juízo ou fora dele, seja "+
			"a que título for, renunciando expressamente a todo e qualquer outro direito ou fato que possa vir a ter "+
			"em decorrência do presente evento, responsabilizando-se integralmente por qualquer medida que terceiro ou "+
			"qualquer outro interessado venha a interpor face ao referido evento no que pertine ao referido veículo.",
			terceiro, boletim)),
		paragraph("Por fim, nos termos do Art. 104 do Código Civil, cumpre-se que ambas as partes são capazes e que o " +
			"presente acordo ocorreu sem nenhum vício, reconhecendo que a BR CLUBE, cumpriu integralmente o que se " +
			"comprometeu por meio de seu Regulamento Interno, não tendo mais, ambas as partes, nada a reclamar, " +
			"conforme já mencionado, em tempo algum sobre os respectivos valores, títulos e condições."),
		dateLine(format.Date(data.Get("data_hoje"))),
		signature(terceiro, false, "TERCEIRO"),
		signature(associationName, true),
	}
}
