package pdfdoc

import (
	"fmt"
	"strings"
	"time"

	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
)

// prefixes maps each document type to the short code used in file names.
var prefixes = map[DocType]string{
	TypeTermoAcordo:                "TAC",
	TypeCobranca:                   "COB",
	TypeRecibo:                     "RCB",
	TypeTermoCancelamento:          "TCP",
	TypeEntregaVeiculo:             "TEV",
	TypeTermoAcordoAmparo:          "TAA",
	TypeTermoRecebimentoRastreador: "TRR",
	TypeTermoPecas:                 "TPE",
	TypeTermoReciboPrestador:       "RPR",
	TypeTermoReciboEstagio:         "RES",
	TypeTermoReciboTransporte:      "RTR",
	TypeTermoReciboCheque:          "RCH",
	TypeTermoIndenizacao:           "TIP",
}

// fallbackPrefix names documents of an unmapped type.
const fallbackPrefix = "DOC"

// fallbackInitials stands in when no subject name was filled.
const fallbackInitials = "BR"

// Prefix returns the file name code for a document type.
func Prefix(t DocType) string {
	if p, ok := prefixes[t]; ok {
		return p
	}
	return fallbackPrefix
}

// nameFields is the probe order for the document subject across form
// shapes. The first non-empty field wins.
var nameFields = []string{
	"associado",
	"nome_devedor",
	"destinatario",
	"terceiro",
	"terceiro_nome",
	"responsavel",
	"estagiario",
	"prestador",
	"instalador",
	"nome",
}

// SubjectName probes the form data for the person the document is about.
func SubjectName(data *formdata.Data) string {
	for _, id := range nameFields {
		if v := strings.TrimSpace(data.Get(id)); v != "" {
			return v
		}
	}
	return ""
}

// plateFields is the probe order for the vehicle plate.
var plateFields = []string{"placa", "veiculo_placa"}

// Plate probes the form data for a vehicle plate.
func Plate(data *formdata.Data) string {
	for _, id := range plateFields {
		if v := strings.TrimSpace(data.Get(id)); v != "" {
			return v
		}
	}
	return ""
}

// Initials reduces a full name to at most three uppercase initials.
// "Maria da Silva" becomes "MDS".
func Initials(name string) string {
	var b strings.Builder
	taken := 0
	for _, part := range strings.Fields(name) {
		runes := []rune(part)
		b.WriteString(strings.ToUpper(string(runes[0])))
		taken++
		if taken == 3 {
			break
		}
	}
	if taken == 0 {
		return fallbackInitials
	}
	return b.String()
}

// Filename builds the download name for a generated document:
// PREFIX-INITIALS[-PLATE]-YYMMDD.pdf. The plate segment is dropped when the
// form carries no plate; hyphens inside the plate are stripped.
func Filename(t DocType, name, plate string, now time.Time) string {
	parts := []string{Prefix(t), Initials(name)}

	plate = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), "-", ""))
	if plate != "" {
		parts = append(parts, plate)
	}

	stamp := fmt.Sprintf("%02d%02d%02d", now.Year()%100, int(now.Month()), now.Day())
	parts = append(parts, stamp)

	return strings.Join(parts, "-") + ".pdf"
}
