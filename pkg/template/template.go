// Package template implements the message template model and resolver.
// A template is either a static string with `{{identifier}}` placeholders
// or a function of the whole form data store; the resolver pattern-matches
// on that tag and applies the cross-cutting boleto reminder rule to
// plain-text output.
package template

import (
	"regexp"
	"strings"

	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
)

// Func is a dynamic template: a function of the full form data store,
// trusted to perform its own substitution and formatting. This is the
// escape hatch for documents whose wording branches on data (gendered
// greetings, payment-method paragraphs).
type Func func(*formdata.Data) string

// Template is the tagged Static|Dynamic variant. The zero value is the
// "no template" case used by blank-document submodules.
type Template struct {
	text string
	fn   Func
}

// Static builds a template from a placeholder string.
func Static(text string) Template {
	return Template{text: text}
}

// Dynamic builds a template from a function of the data store.
func Dynamic(fn Func) Template {
	return Template{fn: fn}
}

// IsZero reports whether no template is defined at all.
func (t Template) IsZero() bool {
	return t.fn == nil && t.text == ""
}

// IsDynamic reports whether the template is a function. A dynamic template
// always takes precedence over a submodule's blank-document flag.
func (t Template) IsDynamic() bool {
	return t.fn != nil
}

var placeholderRE = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// PaymentMethodField is the form field the boleto rule watches.
const PaymentMethodField = "forma-pagamento"

// PaymentMethodBoleto is the enumerated value that triggers the reminder.
const PaymentMethodBoleto = "boleto"

// BoletoNotice is appended to plain-text output when the payment method is
// boleto. It never fires for markup output or any other payment method.
const BoletoNotice = "\n\n📌 *Importante:* Não perca o prazo de vencimento do boleto!"

// IsMarkup classifies a resolved string as HTML when it contains the start
// of a tag-like sequence. The heuristic is deliberately loose: plain text
// with a bare `<` ("5 < 10") misclassifies as markup. That is an accepted
// limitation, pinned by tests, not a bug to special-case.
func IsMarkup(s string) bool {
	return strings.ContainsRune(s, '<')
}

// Substitute replaces every `{{identifier}}` occurrence in text with the
// current value of that identifier in the store. Missing or empty fields
// substitute to the empty string; the literal placeholder never survives
// resolution.
func Substitute(text string, data *formdata.Data) string {
	return placeholderRE.ReplaceAllStringFunc(text, func(match string) string {
		id := match[2 : len(match)-2]
		return data.Get(id)
	})
}

// Resolve produces the final output string for a template. Dynamic
// templates are invoked with the store and their return value is the
// candidate output; a panic inside the function is not recovered here,
// the caller surfaces the failure and keeps the previous preview intact.
// Static templates get placeholder substitution. Either way the boleto
// reminder is appended afterwards when the store's payment method is
// boleto and the candidate output is plain text.
func Resolve(t Template, data *formdata.Data) string {
	var message string
	if t.fn != nil {
		message = t.fn(data)
	} else {
		message = Substitute(t.text, data)
	}

	if data.Get(PaymentMethodField) == PaymentMethodBoleto && !IsMarkup(message) {
		message += BoletoNotice
	}
	return message
}

// WrapForHTMLExport prepares a resolved string for the HTML-based PDF
// export path: markup passes through untouched, plain text is wrapped in a
// whitespace-preserving container so literal line breaks survive.
func WrapForHTMLExport(resolved string) string {
	if IsMarkup(resolved) {
		return resolved
	}
	return `<pre style="font-family: Arial, sans-serif; white-space: pre-wrap; word-wrap: break-word;">` + resolved + `</pre>`
}
