package schema

// Catalog is the read-only Department -> Submodule tree handed out by
// pkg/catalog. It is built once at startup and never mutated afterwards;
// lookup methods return copies so callers cannot reach into the shared tree.
type Catalog struct {
	departments []Department
	byID        map[string]Submodule
}

// NewCatalog validates the department tree and builds the flattened
// submodule index. Construction fails on the first invalid definition.
func NewCatalog(departments []Department) (*Catalog, error) {
	if err := Validate(departments); err != nil {
		return nil, err
	}

	byID := make(map[string]Submodule)
	for _, dept := range departments {
		for _, sub := range dept.Submodules {
			byID[sub.ID] = sub
		}
		for _, group := range dept.Groups {
			for _, sub := range group.Items {
				byID[sub.ID] = sub
			}
		}
	}

	return &Catalog{
		departments: copyDepartments(departments),
		byID:        byID,
	}, nil
}

// Departments returns a copy of the full department tree in catalogue order.
func (c *Catalog) Departments() []Department {
	if c == nil {
		return nil
	}
	return copyDepartments(c.departments)
}

// Submodule resolves a submodule by identifier across all departments,
// flattening department-level groups. The boolean is false when the
// identifier is unknown; callers must degrade to an empty form.
func (c *Catalog) Submodule(id string) (Submodule, bool) {
	if c == nil {
		return Submodule{}, false
	}
	sub, ok := c.byID[id]
	if !ok {
		return Submodule{}, false
	}
	sub.Fields = copyFields(sub.Fields)
	return sub, true
}

// Submodules returns every catalogued submodule, flattened, in tree order.
func (c *Catalog) Submodules() []Submodule {
	if c == nil {
		return nil
	}
	var out []Submodule
	for _, dept := range c.departments {
		for _, sub := range dept.Submodules {
			sub.Fields = copyFields(sub.Fields)
			out = append(out, sub)
		}
		for _, group := range dept.Groups {
			for _, sub := range group.Items {
				sub.Fields = copyFields(sub.Fields)
				out = append(out, sub)
			}
		}
	}
	return out
}

func copyDepartments(departments []Department) []Department {
	out := make([]Department, len(departments))
	for i, dept := range departments {
		dept.Submodules = copySubmodules(dept.Submodules)
		dept.Groups = copyGroups(dept.Groups)
		out[i] = dept
	}
	return out
}

func copyGroups(groups []GroupEntry) []GroupEntry {
	if groups == nil {
		return nil
	}
	out := make([]GroupEntry, len(groups))
	for i, group := range groups {
		group.Items = copySubmodules(group.Items)
		out[i] = group
	}
	return out
}

func copySubmodules(subs []Submodule) []Submodule {
	if subs == nil {
		return nil
	}
	out := make([]Submodule, len(subs))
	for i, sub := range subs {
		sub.Fields = copyFields(sub.Fields)
		out[i] = sub
	}
	return out
}

func copyFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		field.Options = append([]Option(nil), field.Options...)
		field.SubFields = copyFields(field.SubFields)
		if field.ShowIf != nil {
			rule := *field.ShowIf
			rule.Values = append([]string(nil), rule.Values...)
			field.ShowIf = &rule
		}
		out[i] = field
	}
	return out
}
