package schema

import "testing"

func validDepartments() []Department {
	return []Department{
		{
			ID:   "billing",
			Name: "Cobrança",
			Submodules: []Submodule{
				{
					ID:       "mensagem_cobranca",
					Name:     "Mensagem de Cobrança",
					ParentID: "billing",
					Fields: []Field{
						{ID: "associado", Label: "Associado"},
						{ID: "genero", Label: "Gênero", Type: FieldTypeSelect, Options: []Option{
							{Value: "masculino", Label: "Masculino"},
							{Value: "feminino", Label: "Feminino"},
						}},
						{ID: "boletos", Label: "Boletos", Type: FieldTypeRepeater, SubFields: []Field{
							{ID: "valor", Label: "Valor"},
						}},
					},
				},
			},
		},
	}
}

func TestNewCatalog_Valid(t *testing.T) {
	cat, err := NewCatalog(validDepartments())
	if err != nil {
		t.Fatalf("expected valid catalogue, got %v", err)
	}

	sub, ok := cat.Submodule("mensagem_cobranca")
	if !ok {
		t.Fatalf("expected submodule lookup to succeed")
	}
	if sub.ParentID != "billing" {
		t.Fatalf("expected parent billing, got %q", sub.ParentID)
	}
}

func TestNewCatalog_AccessorsReturnCopies(t *testing.T) {
	cat, err := NewCatalog(validDepartments())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub, _ := cat.Submodule("mensagem_cobranca")
	sub.Fields[0].ID = "mutated"

	again, _ := cat.Submodule("mensagem_cobranca")
	if again.Fields[0].ID != "associado" {
		t.Fatalf("catalogue leaked internal state through Submodule")
	}

	depts := cat.Departments()
	depts[0].Submodules[0].Name = "mutated"
	if cat.Departments()[0].Submodules[0].Name != "Mensagem de Cobrança" {
		t.Fatalf("catalogue leaked internal state through Departments")
	}
}

func TestNewCatalog_DuplicateSubmoduleIDs(t *testing.T) {
	departments := validDepartments()
	departments = append(departments, Department{
		ID:   "other",
		Name: "Outro",
		Submodules: []Submodule{
			{ID: "mensagem_cobranca", Name: "Duplicada", ParentID: "other", Fields: []Field{{ID: "x", Label: "X"}}},
		},
	})

	if _, err := NewCatalog(departments); err == nil {
		t.Fatalf("expected duplicate submodule id to be rejected")
	}
}

func TestNewCatalog_SelectWithoutOptions(t *testing.T) {
	departments := validDepartments()
	departments[0].Submodules[0].Fields = append(departments[0].Submodules[0].Fields,
		Field{ID: "quebrado", Label: "Quebrado", Type: FieldTypeSelect})

	if _, err := NewCatalog(departments); err == nil {
		t.Fatalf("expected select without options to be rejected")
	}
}

func TestNewCatalog_NestedRepeaterRejected(t *testing.T) {
	departments := validDepartments()
	departments[0].Submodules[0].Fields = []Field{
		{ID: "externo", Label: "Externo", Type: FieldTypeRepeater, SubFields: []Field{
			{ID: "interno", Label: "Interno", Type: FieldTypeRepeater, SubFields: []Field{
				{ID: "valor", Label: "Valor"},
			}},
		}},
	}

	if _, err := NewCatalog(departments); err == nil {
		t.Fatalf("expected nested repeater to be rejected")
	}
}

func TestNewCatalog_ShowIfMustReferenceSibling(t *testing.T) {
	departments := validDepartments()
	departments[0].Submodules[0].Fields = append(departments[0].Submodules[0].Fields,
		Field{ID: "dependente", Label: "Dependente", ShowIf: &ShowIf{Field: "inexistente", Value: "x"}})

	if _, err := NewCatalog(departments); err == nil {
		t.Fatalf("expected showIf on unknown field to be rejected")
	}
}

func TestShowIf_Matches(t *testing.T) {
	scalar := ShowIf{Field: "f", Value: "apto"}
	if !scalar.Matches("apto") || scalar.Matches("inapto") {
		t.Fatalf("scalar rule mismatch")
	}

	list := ShowIf{Field: "f", Values: []string{"a", "b"}}
	if !list.Matches("b") || list.Matches("c") {
		t.Fatalf("list rule mismatch")
	}
}
