package catalog

import "github.com/rodrigobarrosparreira/br-desk/pkg/schema"

var yesNo = []schema.Option{
	{Value: "sim", Label: "Sim"},
	{Value: "nao", Label: "Não"},
}

var genderOptions = []schema.Option{
	{Value: "masculino", Label: "Masculino"},
	{Value: "feminino", Label: "Feminino"},
}

// departments declares the full operations-desk tree. The slice is consumed
// once by New; every lookup afterwards goes through the validated catalogue.
func departments() []schema.Department {
	return []schema.Department{
		{
			ID:          "assistance",
			Name:        "Assistência 24H",
			Description: "Gestão de socorro e suporte emergencial",
			Submodules: []schema.Submodule{
				{
					ID:       "assistance_request",
					Name:     "Acionamento de Assistência 24H",
					ParentID: "assistance",
					Fields: []schema.Field{
						{ID: "protocolo", Label: "Protocolo"},
						{ID: "data-hora", Label: "Data e Hora", Type: schema.FieldTypeDateTime},
						{ID: "placa", Label: "Placa"},
						{ID: "modelo", Label: "Modelo"},
						{ID: "cor", Label: "Cor"},
						{ID: "solicitante", Label: "Solicitante"},
						{ID: "telefone", Label: "Telefone", Type: schema.FieldTypeTel, Placeholder: "(00) 00000-0000"},
						{ID: "fator-gerador", Label: "Fator Gerador", Type: schema.FieldTypeSelect, Options: []schema.Option{
							{Value: "pane-eletrica", Label: "Pane Elétrica"},
							{Value: "pane-mecanica", Label: "Pane Mecânica"},
							{Value: "pane-seca", Label: "Pane Seca"},
							{Value: "chave", Label: "Chave"},
							{Value: "pneu", Label: "Pneu furado"},
							{Value: "colisao", Label: "Colisão"},
						}},
						{ID: "obs-gerador", Label: "Observações do Fator Gerador", Type: schema.FieldTypeTextArea},
						{ID: "chave-documento", Label: "Chave e Documento estão no local?", Type: schema.FieldTypeSelect, Options: yesNo},
						{ID: "facil-acesso", Label: "Veículo de fácil acesso?", Type: schema.FieldTypeSelect, Options: yesNo},
						{ID: "servico", Label: "Serviço"},
						{ID: "endereco-origem", Label: "Endereço de Origem"},
						{ID: "referencia-origem", Label: "Referência de Origem"},
						{ID: "endereco-destino", Label: "Endereço de Destino"},
						{ID: "referencia-destino", Label: "Referência de Destino"},
						{ID: "quilometragem", Label: "Quilometragem"},
						{ID: "quilometragem-total", Label: "Quilometragem Total"},
					},
				},
				{
					ID:       "abertura_assistencia",
					Name:     "Abertura de Atendimento",
					ParentID: "assistance",
					Fields: []schema.Field{
						{ID: "protocolo", Label: "Protocolo", Required: true},
						{ID: "solicitante", Label: "Solicitante", Required: true},
						{ID: "telefone", Label: "Telefone", Type: schema.FieldTypeTel},
						{ID: "placa", Label: "Placa", Required: true},
						{ID: "modelo", Label: "Modelo"},
						{ID: "adimplencia", Label: "Situação do Associado", Type: schema.FieldTypeSelect, Options: []schema.Option{
							{Value: "adimplente", Label: "Adimplente"},
							{Value: "inadimplente", Label: "Inadimplente"},
							{Value: "atrasado", Label: "Atrasado"},
							{Value: "cancelado", Label: "Cancelado"},
							{Value: "suspenso", Label: "Suspenso"},
						}},
						{ID: "excepcionalidade", Label: "Parecer do Supervisor", Type: schema.FieldTypeSelect,
							Options: []schema.Option{
								{Value: "apto", Label: "Apto (liberar atendimento)"},
								{Value: "inapto", Label: "Inapto (recusar atendimento)"},
							},
							ShowIf: &schema.ShowIf{Field: "adimplencia", Values: []string{"inadimplente", "atrasado", "cancelado", "suspenso"}},
						},
						{ID: "motivo_excepcionalidade", Label: "Motivo da Excepcionalidade", Type: schema.FieldTypeTextArea,
							ShowIf: &schema.ShowIf{Field: "excepcionalidade", Value: "apto"},
						},
						{ID: "servico", Label: "Serviço"},
						{ID: "endereco-origem", Label: "Endereço de Origem"},
						{ID: "endereco-destino", Label: "Endereço de Destino"},
						{ID: "hora_solicitacao", Label: "Hora da Solicitação"},
					},
				},
				{
					ID:       "fechamento_assistencia",
					Name:     "Fechamento de Atendimento",
					ParentID: "assistance",
					Fields: []schema.Field{
						{ID: "protocolo", Label: "Protocolo", Required: true},
						{ID: "prestador", Label: "Prestador Acionado"},
						{ID: "hora_prestador", Label: "Saída do Prestador", Type: schema.FieldTypeDateTime},
						{ID: "chegada_prestador", Label: "Chegada ao Local", Type: schema.FieldTypeDateTime},
						{ID: "encerramento_atendimento", Label: "Encerramento", Type: schema.FieldTypeDateTime},
						{ID: "observacoes", Label: "Observações", Type: schema.FieldTypeTextArea},
					},
				},
			},
		},
		{
			ID:          "registration",
			Name:        "Cadastro",
			Description: "Gestão de cadastro de associados",
			Submodules: []schema.Submodule{
				{
					ID:       "adesao",
					Name:     "Boas-vindas: Adesão",
					ParentID: "registration",
					Fields: []schema.Field{
						{ID: "associado", Label: "Nome do Associado"},
						{ID: "placa", Label: "Placa"},
						{ID: "vencimento", Label: "Dia de vencimento do boleto"},
						{ID: "telefone", Label: "Telefone"},
						{ID: "endereco", Label: "Endereço"},
						{ID: "cep", Label: "CEP"},
						{ID: "email", Label: "E-mail", Type: schema.FieldTypeEmail},
						{ID: "forma-pagamento", Label: "Forma de Pagamento", Type: schema.FieldTypeSelect, Options: []schema.Option{
							{Value: "boleto", Label: "Boleto Bancário"},
							{Value: "cartao", Label: "Cartão - cobrança recorrente"},
						}},
						{ID: "genero", Label: "Gênero", Type: schema.FieldTypeSelect, Options: genderOptions},
					},
				},
				{
					ID:       "br-power",
					Name:     "Boas-vindas: BR POWER",
					ParentID: "registration",
					Fields: []schema.Field{
						{ID: "associado", Label: "Nome do Associado"},
						{ID: "codigo", Label: "Código da bateria"},
						{ID: "marca", Label: "Marca"},
						{ID: "amperagem", Label: "Amperagem"},
					},
				},
			},
		},
		{
			ID:          "cancellations",
			Name:        "Cancelamentos",
			Description: "Cancelamento de serviços",
			Submodules: []schema.Submodule{
				{
					ID:       "cancelamento",
					Name:     "Termo de Cancelamento",
					ParentID: "cancellations",
					IsTerm:   true,
					DocType:  "termo_cancelamento",
					Fields: []schema.Field{
						{ID: "associado", Label: "Nome Completo"},
						{ID: "cpf", Label: "CPF"},
						{ID: "tipo", Label: "Tipo de Veículo", Type: schema.FieldTypeSelect, Options: []schema.Option{
							{Value: "Carro", Label: "Carro"},
							{Value: "Moto", Label: "Moto"},
							{Value: "Caminhão", Label: "Caminhão"},
						}},
						{ID: "placa", Label: "Placa"},
						{ID: "marca", Label: "Marca"},
						{ID: "modelo", Label: "Modelo"},
						{ID: "chassi", Label: "Chassi"},
						{ID: "renavam", Label: "RENAVAM"},
						{ID: "cor", Label: "Cor"},
						{ID: "ano_modelo", Label: "Ano Modelo"},
						{ID: "ano_fabricacao", Label: "Ano Fabricação"},
						{ID: "fipe", Label: "Código FIPE"},
						{ID: "data_cancelamento", Label: "Data de cancelamento", Type: schema.FieldTypeDate},
						{ID: "data_hoje", Label: "Data de hoje", Type: schema.FieldTypeDate},
					},
				},
			},
		},
		{
			ID:          "billing",
			Name:        "Cobrança",
			Description: "Cobrança de mensalidades e serviços",
			Submodules: []schema.Submodule{
				{
					ID:       "mensagem_cobranca",
					Name:     "Mensagem de Cobrança",
					ParentID: "billing",
					Fields: []schema.Field{
						{ID: "associado", Label: "Nome Completo", Required: true},
						{ID: "placa", Label: "Placa", Required: true},
						{ID: "genero", Label: "Gênero", Type: schema.FieldTypeSelect, Options: genderOptions, Required: true},
						{ID: "boletos", Label: "Boletos Vencidos", Type: schema.FieldTypeRepeater, AddLabel: "Adicionar boleto", SubFields: []schema.Field{
							{ID: "data_vencimento", Label: "Data de Vencimento", Type: schema.FieldTypeDate},
							{ID: "valor", Label: "Valor", Type: schema.FieldTypeNumber},
						}},
					},
				},
				{
					ID:       "termo_acordo",
					Name:     "Termo de Acordo",
					ParentID: "billing",
					IsTerm:   true,
					DocType:  "termo_acordo",
					Fields: []schema.Field{
						{ID: "numero_negociacao", Label: "Número de Negociação", Required: true, Type: schema.FieldTypeNumber},
						{ID: "nome_devedor", Label: "Nome do Devedor", Required: true},
						{ID: "rg", Label: "RG", Required: true, Type: schema.FieldTypeNumber},
						{ID: "cpf", Label: "CPF", Required: true, Type: schema.FieldTypeNumber},
						{ID: "endereco", Label: "Endereço", Required: true},
						{ID: "total_debito", Label: "Total do Débito", Required: true, Type: schema.FieldTypeNumber},
						{ID: "valor_entrada", Label: "Valor da Entrada", Type: schema.FieldTypeNumber},
						{ID: "parcelas_restantes", Label: "Parcelas Restantes", Type: schema.FieldTypeNumber},
						{ID: "valor_parcela", Label: "Valor de Cada Parcela", Type: schema.FieldTypeNumber},
						{ID: "data_vencimento_entrada", Label: "Vencimento da Entrada", Type: schema.FieldTypeDate},
						{ID: "data_hoje", Label: "Data de Hoje", Type: schema.FieldTypeDate},
					},
				},
			},
		},
		{
			ID:          "commercial",
			Name:        "Comercial",
			Description: "Comunicação comercial e promoções",
			Submodules: []schema.Submodule{
				{
					ID:       "enviar-associado",
					Name:     "Enviar Kit para Associado",
					ParentID: "commercial",
					IsTerm:   true,
					IsBlank:  true,
					Fields: []schema.Field{
						{ID: "destinatario", Label: "Destinatario", Required: true},
						{ID: "endereco", Label: "Endereço"},
						{ID: "cep", Label: "CEP", Type: schema.FieldTypeNumber},
						{ID: "referencia", Label: "Ponto de Referência", Type: schema.FieldTypeTextArea},
					},
				},
				{
					ID:       "confirmar-recebimento",
					Name:     "Confirmar Recebimento do Kit",
					ParentID: "commercial",
					Fields: []schema.Field{
						{ID: "associado", Label: "Associado", Required: true},
						{ID: "select", Label: "Associado recebeu o Kit?", Type: schema.FieldTypeSelect, Placeholder: "selecione", Options: []schema.Option{
							{Value: "verifica", Label: "Verificar"},
							{Value: "sim", Label: "Sim"},
							{Value: "nao", Label: "Não"},
						}},
						{ID: "data", Label: "Data do Recebimento", Type: schema.FieldTypeDate},
						{ID: "recebido_por", Label: "Recebido por"},
					},
				},
			},
		},
		{
			ID:          "events",
			Name:        "Eventos",
			Description: "Acionamento e termos de eventos",
			Submodules: []schema.Submodule{
				{
					ID:       "agendamento-oficina",
					Name:     "Agendamento para Oficina",
					ParentID: "events",
					Fields: []schema.Field{
						{ID: "oficina", Label: "Nome da Oficina", Required: true},
						{ID: "responsavel", Label: "Nome do Responsável", Required: true},
						{ID: "servico", Label: "Tipo de Serviço"},
						{ID: "datahr", Label: "Data/Hora", Type: schema.FieldTypeDateTime, Required: true},
						{ID: "endereco", Label: "Endereço"},
					},
				},
				{
					ID:       "termo-entrega-veiculo",
					Name:     "Termo de Entrega de Veículo",
					ParentID: "events",
					IsTerm:   true,
					DocType:  "entrega_veiculo",
					Fields: []schema.Field{
						{ID: "responsavel", Label: "Responsável do Veículo", Required: true},
						{ID: "cpf_cnpj", Label: "CPF/CNPJ", Required: true},
						{ID: "veiculo", Label: "Veículo"},
						{ID: "ano", Label: "Ano", Required: true},
						{ID: "placa", Label: "Placa"},
						{ID: "data_inicio", Label: "Data de Início dos Reparos", Type: schema.FieldTypeDate},
						{ID: "data_conclusao", Label: "Data de Conclusão dos Reparos", Type: schema.FieldTypeDate},
						{ID: "data_hoje", Label: "Data de Hoje", Type: schema.FieldTypeDate},
					},
				},
				{
					ID:       "termo-acionamento",
					Name:     "Termo de Acionamento",
					ParentID: "events",
					IsTerm:   true,
					Fields: []schema.Field{
						{ID: "associado", Label: "Associado", Required: true},
						{ID: "agendamento", Label: "Data e Hora da Instalação", Type: schema.FieldTypeDateTime, Required: true},
						{ID: "tecnico", Label: "Técnico Responsável"},
						{ID: "local", Label: "Endereço Completo", Type: schema.FieldTypeTextArea, Required: true},
					},
				},
				{
					ID:       "termo-acordo-terceiro",
					Name:     "Termo de Acordo e Amparo (terceiro)",
					ParentID: "events",
					IsTerm:   true,
					DocType:  "termo_acordo_amparo",
					Fields: []schema.Field{
						{ID: "terceiro", Label: "Nome do Terceiro"},
						{ID: "cpf", Label: "CPF do Terceiro"},
						{ID: "rg", Label: "RG do Terceiro"},
						{ID: "data_evento", Label: "Data do Evento", Type: schema.FieldTypeDate},
						{ID: "boletim_ocorrencia", Label: "Nº Boletim de Ocorrência"},
						{ID: "marca", Label: "Marca do Carro do Associado"},
						{ID: "modelo", Label: "Modelo do Carro do Associado"},
						{ID: "ano", Label: "Ano do Carro do Associado"},
						{ID: "placa", Label: "Placa do Carro do Associado"},
						{ID: "cor", Label: "Cor do Carro do Associado"},
						{ID: "valor", Label: "Valor do Reembolso"},
						{ID: "valor_extenso", Label: "Valor por extenso"},
						{ID: "pix", Label: "Chave Pix do Terceiro"},
						{ID: "data_hoje", Label: "Data de Hoje", Type: schema.FieldTypeDate},
					},
				},
				{
					ID:       "termo_entrega_pecas",
					Name:     "Termo de Entrega e Recebimento de Peças",
					ParentID: "events",
					IsTerm:   true,
					DocType:  "termo_pecas",
					Fields: []schema.Field{
						{ID: "responsavel", Label: "Responsável pelo Recebimento"},
						{ID: "cpf", Label: "CPF"},
						{ID: "cargo", Label: "Cargo/Função"},
						{ID: "associado", Label: "Associado"},
						{ID: "placa", Label: "Placa"},
						{ID: "marca_modelo", Label: "Marca/Modelo"},
						{ID: "pecas", Label: "Peças", Type: schema.FieldTypeRepeater, AddLabel: "Adicionar peça", SubFields: []schema.Field{
							{ID: "item", Label: "Item"},
							{ID: "codigo", Label: "Código"},
							{ID: "produto", Label: "Produto"},
							{ID: "quantidade", Label: "Quantidade"},
							{ID: "valor", Label: "Valor"},
						}},
						{ID: "data_hoje", Label: "Data de Hoje", Type: schema.FieldTypeDate},
					},
				},
			},
		},
		{
			ID:          "tracking",
			Name:        "Rastreamento",
			Description: "Agendamento e termos de rastreamento",
			Submodules: []schema.Submodule{
				{
					ID:       "termo-recebimento-rastreador",
					Name:     "Termo de Recebimento do Rastreador",
					ParentID: "tracking",
					IsTerm:   true,
					DocType:  "termo_recebimento_rastreador",
					Fields: []schema.Field{
						{ID: "instalador", Label: "Nome do Instalador"},
						{ID: "cpf", Label: "CPF"},
						{ID: "rg", Label: "RG"},
						{ID: "equipamentos", Label: "Equipamentos", Type: schema.FieldTypeRepeater, AddLabel: "Adicionar equipamento", SubFields: []schema.Field{
							{ID: "imei", Label: "IMEI"},
						}},
						{ID: "data_hoje", Label: "Data", Type: schema.FieldTypeDate},
					},
				},
				{
					ID:       "protocolo-instalar-rastreador",
					Name:     "Protocolo: Agendar Instalação do Rastreador",
					ParentID: "tracking",
					Fields: []schema.Field{
						{ID: "tipo_protocolo", Label: "Escolha o tipo de protocolo", Type: schema.FieldTypeSelect, Options: []schema.Option{
							{Value: "instalacao", Label: "Instalação"},
							{Value: "desinstalacao", Label: "Desinstalação"},
							{Value: "manutencao", Label: "Manutenção"},
						}},
						{ID: "protocolo", Label: "Protocolo"},
						{ID: "nome", Label: "Nome Completo"},
						{ID: "cpf_cnpj", Label: "CPF/CNPJ"},
						{ID: "data_nasc", Label: "Data de Nascimento", Type: schema.FieldTypeDate},
						{ID: "email", Label: "E-mail"},
						{ID: "telefone", Label: "Telefone/Celular"},
						{ID: "genero", Label: "Gênero", Type: schema.FieldTypeSelect, Options: genderOptions},
						{ID: "placa", Label: "Placa"},
						{ID: "veiculo", Label: "Veículo"},
						{ID: "cor", Label: "Cor"},
						{ID: "ano", Label: "Ano"},
						{ID: "renavam", Label: "RENAVAM"},
						{ID: "chassi", Label: "Chassi"},
						{ID: "imei", Label: "Nº do IMEI"},
						{ID: "plataforma", Label: "Plataforma"},
						{ID: "endereco", Label: "Endereço"},
						{ID: "data_horario", Label: "Data/Horário", Type: schema.FieldTypeDateTime},
						{ID: "tecnico", Label: "Técnico"},
					},
				},
				{
					ID:       "orientacoes-rastreamento",
					Name:     "Orientações pós-instalação",
					ParentID: "tracking",
					Fields: []schema.Field{
						{ID: "associado", Label: "Nome do Associado", Required: true},
						{ID: "login", Label: "Login de Acesso", Required: true},
						{ID: "senha", Label: "Senha de Acesso", Required: true},
						{ID: "plataforma", Label: "Plataforma", Type: schema.FieldTypeSelect, Required: true, Options: []schema.Option{
							{Value: "redeloc", Label: "RedeLoc"},
							{Value: "rastreie_brasil", Label: "Rastreie Brasil"},
							{Value: "locami", Label: "Locami"},
						}},
						{ID: "os", Label: "Sistema Operacional do Cliente", Type: schema.FieldTypeSelect, Required: true, Options: []schema.Option{
							{Value: "android", Label: "Android"},
							{Value: "ios", Label: "iOS (iPhone)"},
							{Value: "indefinido", Label: "Enviar Ambos (Indefinido)"},
						}},
					},
				},
			},
		},
		{
			ID:          "legal",
			Name:        "Jurídico",
			Description: "Recibos, declarações e termos de indenização",
			Submodules: []schema.Submodule{
				{
					ID:       "recibo-prestador",
					Name:     "Declaração de Recebimento (Prestador)",
					ParentID: "legal",
					IsTerm:   true,
					DocType:  "termo_recibo_prestador",
					Fields: []schema.Field{
						{ID: "prestador", Label: "Nome do Prestador", Required: true},
						{ID: "tipo_pessoa", Label: "Tipo de Pessoa", Type: schema.FieldTypeSelect, Options: []schema.Option{
							{Value: "pf", Label: "Pessoa Física"},
							{Value: "pj", Label: "Pessoa Jurídica"},
						}},
						{ID: "cnpj_cpf", Label: "CPF/CNPJ", Required: true},
						{ID: "valor", Label: "Valor", Type: schema.FieldTypeNumber},
						{ID: "valor_extenso", Label: "Valor por extenso"},
						{ID: "servico", Label: "Serviço Prestado"},
						{ID: "associado", Label: "Associado Atendido"},
						{ID: "placa", Label: "Placa"},
						{ID: "data_servico", Label: "Data do Serviço", Type: schema.FieldTypeDate},
						{ID: "data_hoje", Label: "Data de Hoje", Type: schema.FieldTypeDate},
					},
				},
				{
					ID:       "recibo-estagio",
					Name:     "Declaração de Recebimento (Bolsa Estágio)",
					ParentID: "legal",
					IsTerm:   true,
					DocType:  "termo_recibo_estagio",
					Fields: []schema.Field{
						{ID: "estagiario", Label: "Nome do Estagiário", Required: true},
						{ID: "cpf", Label: "CPF", Required: true},
						{ID: "valor", Label: "Valor", Type: schema.FieldTypeNumber},
						{ID: "valor_extenso", Label: "Valor por extenso"},
						{ID: "data_hoje", Label: "Data de Hoje", Type: schema.FieldTypeDate},
					},
				},
				{
					ID:       "recibo-transporte",
					Name:     "Declaração de Recebimento (Vale Transporte)",
					ParentID: "legal",
					IsTerm:   true,
					DocType:  "termo_recibo_transporte",
					Fields: []schema.Field{
						{ID: "estagiario", Label: "Nome do Estagiário", Required: true},
						{ID: "cpf", Label: "CPF", Required: true},
						{ID: "valor", Label: "Valor", Type: schema.FieldTypeNumber},
						{ID: "valor_extenso", Label: "Valor por extenso"},
						{ID: "data_hoje", Label: "Data de Hoje", Type: schema.FieldTypeDate},
					},
				},
				{
					ID:       "recibo-cheque",
					Name:     "Declaração de Recebimento (Cheque)",
					ParentID: "legal",
					IsTerm:   true,
					DocType:  "termo_recibo_cheque",
					Fields: []schema.Field{
						{ID: "prestador", Label: "Nome do Recebedor", Required: true},
						{ID: "tipo_pessoa", Label: "Tipo de Pessoa", Type: schema.FieldTypeSelect, Options: []schema.Option{
							{Value: "pf", Label: "Pessoa Física"},
							{Value: "pj", Label: "Pessoa Jurídica"},
						}},
						{ID: "cnpj_cpf", Label: "CPF/CNPJ", Required: true},
						{ID: "valor", Label: "Valor", Type: schema.FieldTypeNumber},
						{ID: "valor_extenso", Label: "Valor por extenso"},
						{ID: "data_hoje", Label: "Data de Hoje", Type: schema.FieldTypeDate},
					},
				},
				{
					ID:       "termo-indenizacao-pecuniaria",
					Name:     "Termo de Indenização Pecuniária",
					ParentID: "legal",
					IsTerm:   true,
					DocType:  "termo_indenizacao_pecuniaria",
					Fields: []schema.Field{
						{ID: "terceiro_nome", Label: "Nome do Terceiro", Required: true},
						{ID: "terceiro_nacionalidade", Label: "Nacionalidade"},
						{ID: "terceiro_cpf", Label: "CPF"},
						{ID: "terceiro_rg", Label: "RG"},
						{ID: "terceiro_endereco", Label: "Endereço"},
						{ID: "data_evento", Label: "Data do Evento", Type: schema.FieldTypeDate},
						{ID: "numero_boletim", Label: "Nº Boletim de Ocorrência"},
						{ID: "veiculo_marca", Label: "Marca do Veículo"},
						{ID: "veiculo_modelo", Label: "Modelo do Veículo"},
						{ID: "veiculo_ano", Label: "Ano do Veículo"},
						{ID: "veiculo_placa", Label: "Placa do Veículo"},
						{ID: "veiculo_cor", Label: "Cor do Veículo"},
						{ID: "valor_total", Label: "Valor Total", Type: schema.FieldTypeNumber},
						{ID: "valor_extenso", Label: "Valor por extenso"},
						{ID: "condicoes_pagamento", Label: "Condições de Pagamento"},
						{ID: "data_hoje", Label: "Data de Hoje", Type: schema.FieldTypeDate},
					},
				},
			},
		},
	}
}
