// Command br-desk-tui fills a desk form interactively in the terminal and
// prints the resolved outgoing message, optionally rendering the PDF term.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/rodrigobarrosparreira/br-desk/internal/pdf"
	"github.com/rodrigobarrosparreira/br-desk/pkg/catalog"
	"github.com/rodrigobarrosparreira/br-desk/pkg/formdata"
	"github.com/rodrigobarrosparreira/br-desk/pkg/pdfdoc"
	"github.com/rodrigobarrosparreira/br-desk/pkg/schema"
	"github.com/rodrigobarrosparreira/br-desk/pkg/template"
)

func main() {
	output := flag.String("output", "", "directory for generated PDFs (current dir if empty)")
	flag.Parse()

	cat := catalog.Default()

	sub, err := pickSubmodule(cat)
	if err != nil {
		log.Fatalf("Failed to pick form: %v", err)
	}

	data := formdata.New()
	if err := fillForm(sub, data); err != nil {
		log.Fatalf("Failed to fill form: %v", err)
	}
	formdata.Normalize(data, sub)

	if tmpl, ok := cat.Message(sub.ID); ok && !tmpl.IsZero() {
		fmt.Println()
		fmt.Println(template.Resolve(tmpl, data))
	}

	if sub.DocType == "" {
		return
	}

	generate := false
	if err := survey.AskOne(&survey.Confirm{Message: "Gerar PDF do termo?", Default: true}, &generate); err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}
	if !generate {
		return
	}

	doc, err := pdfdoc.Build(pdfdoc.DocType(sub.DocType), data)
	if err != nil {
		log.Fatalf("Failed to assemble document: %v", err)
	}
	rendered, err := pdf.NewRenderer().Render(doc)
	if err != nil {
		log.Fatalf("Failed to render PDF: %v", err)
	}

	name := pdfdoc.Filename(doc.Type, pdfdoc.SubjectName(data), pdfdoc.Plate(data), time.Now())
	path := name
	if *output != "" {
		path = *output + string(os.PathSeparator) + name
	}
	if err := os.WriteFile(path, rendered, 0o644); err != nil {
		log.Fatalf("Failed to write PDF: %v", err)
	}
	fmt.Printf("PDF salvo em %s\n", path)
}

func pickSubmodule(cat *catalog.Catalog) (schema.Submodule, error) {
	departments := cat.Departments()
	deptNames := make([]string, len(departments))
	for i, dept := range departments {
		deptNames[i] = dept.Name
	}

	var deptName string
	if err := survey.AskOne(&survey.Select{Message: "Departamento:", Options: deptNames}, &deptName); err != nil {
		return schema.Submodule{}, err
	}

	var dept schema.Department
	for _, d := range departments {
		if d.Name == deptName {
			dept = d
			break
		}
	}

	subNames := make([]string, len(dept.Submodules))
	for i, sub := range dept.Submodules {
		subNames[i] = sub.Name
	}

	var subName string
	if err := survey.AskOne(&survey.Select{Message: "Formulário:", Options: subNames}, &subName); err != nil {
		return schema.Submodule{}, err
	}
	for _, sub := range dept.Submodules {
		if sub.Name == subName {
			return sub, nil
		}
	}
	return schema.Submodule{}, fmt.Errorf("submodule %q not found", subName)
}

func fillForm(sub schema.Submodule, data *formdata.Data) error {
	for _, field := range sub.Fields {
		if !formdata.Visible(data, field) {
			continue
		}
		if field.IsRepeater() {
			if err := fillRepeater(field, data); err != nil {
				return err
			}
			continue
		}
		value, err := askField(field)
		if err != nil {
			return err
		}
		data.Set(field.ID, value)
	}
	return nil
}

func fillRepeater(field schema.Field, data *formdata.Data) error {
	addLabel := field.AddLabel
	if addLabel == "" {
		addLabel = "Adicionar item"
	}
	for {
		more := false
		if err := survey.AskOne(&survey.Confirm{Message: addLabel + "?"}, &more); err != nil {
			return err
		}
		if !more {
			return nil
		}
		entry := formdata.Entry{}
		for _, subField := range field.SubFields {
			value, err := askField(subField)
			if err != nil {
				return err
			}
			entry[subField.ID] = value
		}
		data.AppendEntry(field.ID, entry)
	}
}

func askField(field schema.Field) (string, error) {
	message := field.Label + ":"

	var prompt survey.Prompt
	switch field.Type {
	case schema.FieldTypeSelect:
		options := make([]string, len(field.Options))
		labels := make(map[string]string, len(field.Options))
		for i, opt := range field.Options {
			options[i] = opt.Label
			labels[opt.Label] = opt.Value
		}
		var label string
		if err := survey.AskOne(&survey.Select{Message: message, Options: options}, &label); err != nil {
			return "", err
		}
		return labels[label], nil
	case schema.FieldTypeTextArea:
		prompt = &survey.Multiline{Message: message}
	default:
		prompt = &survey.Input{Message: message, Default: field.Placeholder}
	}

	var value string
	var opts []survey.AskOpt
	if field.Required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	if err := survey.AskOne(prompt, &value, opts...); err != nil {
		return "", err
	}
	return value, nil
}
