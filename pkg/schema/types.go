package schema

// FieldType enumerates the input kinds a form field can take.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextArea FieldType = "textarea"
	FieldTypeDate     FieldType = "date"
	FieldTypeDateTime FieldType = "datetime-local"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
	FieldTypeNumber   FieldType = "number"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRepeater FieldType = "repeater"
)

// Option is a single value/label pair for select fields.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ShowIf couples a field's visibility to the current value of a sibling
// field. The field is shown when the sibling's value equals Value, or is a
// member of Values when more than one condition is accepted. Exactly one of
// Value/Values is set.
type ShowIf struct {
	Field  string   `json:"field"`
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// Matches reports whether the visibility condition holds for the given
// sibling value.
func (s *ShowIf) Matches(current string) bool {
	if s == nil {
		return true
	}
	if len(s.Values) > 0 {
		for _, v := range s.Values {
			if v == current {
				return true
			}
		}
		return false
	}
	return current == s.Value
}

// Field models an individual input inside a submodule form. Struct fields
// are annotated so the HTTP catalogue endpoint can serialise them directly.
type Field struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	SubFields   []Field   `json:"subFields,omitempty"`
	AddLabel    string    `json:"addButtonLabel,omitempty"`
	ShowIf      *ShowIf   `json:"showIf,omitempty"`
}

// IsRepeater reports whether the field holds an ordered list of sub-records.
func (f Field) IsRepeater() bool {
	return f.Type == FieldTypeRepeater
}

// Department groups submodules under a named area of the operations desk.
type Department struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Submodules  []Submodule  `json:"submodules"`
	Groups      []GroupEntry `json:"groups,omitempty"`
}

// GroupEntry is an optional department-level sub-grouping of submodules.
type GroupEntry struct {
	Name  string      `json:"name"`
	Items []Submodule `json:"items"`
}

// Submodule is one catalogued document type: its form fields plus rendering
// metadata. The message template itself lives in pkg/catalog; this type only
// carries the identifiers the schema layer needs for validation and lookup.
type Submodule struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID string  `json:"parentId"`
	Fields   []Field `json:"fields,omitempty"`
	// DocType selects a PDF layout for formal documents; empty for
	// chat-only submodules.
	DocType string `json:"pdfType,omitempty"`
	// IsTerm marks submodules whose output is a formal PDF document
	// rather than a copyable chat message.
	IsTerm bool `json:"isTerm,omitempty"`
	// IsBlank marks data-dump containers that have no body template at
	// all (e.g. shipping labels).
	IsBlank bool `json:"isBlank,omitempty"`
}
