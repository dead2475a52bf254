// Package pdfdoc assembles the printable documents of the desk. A builder
// turns form data into a backend-neutral Document; rendering to bytes is
// the concern of internal/pdf.
package pdfdoc

import "fmt"

// DocType identifies a printable document layout.
type DocType string

const (
	TypeTermoAcordo                DocType = "termo_acordo"
	TypeCobranca                   DocType = "cobranca"
	TypeRecibo                     DocType = "recibo"
	TypeTermoCancelamento          DocType = "termo_cancelamento"
	TypeEntregaVeiculo             DocType = "entrega_veiculo"
	TypeTermoAcordoAmparo          DocType = "termo_acordo_amparo"
	TypeTermoRecebimentoRastreador DocType = "termo_recebimento_rastreador"
	TypeTermoPecas                 DocType = "termo_pecas"
	TypeTermoReciboPrestador       DocType = "termo_recibo_prestador"
	TypeTermoReciboEstagio         DocType = "termo_recibo_estagio"
	TypeTermoReciboTransporte      DocType = "termo_recibo_transporte"
	TypeTermoReciboCheque          DocType = "termo_recibo_cheque"
	TypeTermoIndenizacao           DocType = "termo_indenizacao_pecuniaria"
)

// ErrUnknownType reports a document type outside the known set.
var ErrUnknownType = fmt.Errorf("pdfdoc: unknown document type")

// Types lists every supported document type.
func Types() []DocType {
	return []DocType{
		TypeTermoAcordo,
		TypeCobranca,
		TypeRecibo,
		TypeTermoCancelamento,
		TypeEntregaVeiculo,
		TypeTermoAcordoAmparo,
		TypeTermoRecebimentoRastreador,
		TypeTermoPecas,
		TypeTermoReciboPrestador,
		TypeTermoReciboEstagio,
		TypeTermoReciboTransporte,
		TypeTermoReciboCheque,
		TypeTermoIndenizacao,
	}
}

// Known reports whether t is a supported document type.
func Known(t DocType) bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

// BlockKind discriminates the content block variants of a Document.
type BlockKind string

const (
	KindTitle     BlockKind = "title"
	KindParagraph BlockKind = "paragraph"
	KindLines     BlockKind = "lines"
	KindTable     BlockKind = "table"
	KindDateLine  BlockKind = "dateline"
	KindSignature BlockKind = "signature"
)

// Block is one content unit of a document page. Only the fields of the
// block's kind are meaningful.
type Block struct {
	Kind BlockKind

	// Title, Paragraph, DateLine.
	Text string
	Bold bool

	// Lines: one label/value row per entry.
	Lines []string

	// Table.
	Header []string
	Rows   [][]string
	Empty  string // shown instead of rows when there are none

	// Signature.
	Name      string
	Details   []string
	WithImage bool
}

// Document is the backend-neutral description of a printable page flow.
type Document struct {
	Type   DocType
	Blocks []Block
}

func title(text string) Block     { return Block{Kind: KindTitle, Text: text} }
func paragraph(text string) Block { return Block{Kind: KindParagraph, Text: text} }

func boldParagraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text, Bold: true}
}

func lines(rows ...string) Block { return Block{Kind: KindLines, Lines: rows} }

func dateLine(formatted string) Block {
	return Block{Kind: KindDateLine, Text: "Goiânia, " + formatted + "."}
}

func signature(name string, withImage bool, details ...string) Block {
	return Block{Kind: KindSignature, Name: name, Details: details, WithImage: withImage}
}
