package schema

import (
	"errors"
	"fmt"
)

var (
	errSubmoduleIDMissing = errors.New("schema: submodule id is required")
	errFieldIDMissing     = errors.New("schema: field id is required")
)

// Validate runs the one-time startup checks over a department tree:
// submodule identifiers must be unique across departments, select fields
// must carry options, repeater fields must carry sub-fields and never nest
// another repeater, and every showIf rule must reference an existing
// sibling field. A dangling showIf would otherwise be a silent no-op at
// render time.
func Validate(departments []Department) error {
	seen := make(map[string]struct{})
	for _, dept := range departments {
		if dept.ID == "" {
			return errors.New("schema: department id is required")
		}
		for _, sub := range dept.Submodules {
			if err := validateSubmodule(sub, seen); err != nil {
				return err
			}
		}
		for _, group := range dept.Groups {
			for _, sub := range group.Items {
				if err := validateSubmodule(sub, seen); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateSubmodule(sub Submodule, seen map[string]struct{}) error {
	if sub.ID == "" {
		return errSubmoduleIDMissing
	}
	if _, dup := seen[sub.ID]; dup {
		return fmt.Errorf("schema: duplicate submodule id %q", sub.ID)
	}
	seen[sub.ID] = struct{}{}

	siblings := make(map[string]struct{}, len(sub.Fields))
	for _, field := range sub.Fields {
		if field.ID == "" {
			return fmt.Errorf("submodule %q: %w", sub.ID, errFieldIDMissing)
		}
		if _, dup := siblings[field.ID]; dup {
			return fmt.Errorf("schema: submodule %q: duplicate field id %q", sub.ID, field.ID)
		}
		siblings[field.ID] = struct{}{}
	}

	for _, field := range sub.Fields {
		if err := validateField(sub.ID, field, siblings); err != nil {
			return err
		}
	}
	return nil
}

func validateField(subID string, field Field, siblings map[string]struct{}) error {
	switch field.Type {
	case FieldTypeSelect:
		if len(field.Options) == 0 {
			return fmt.Errorf("schema: submodule %q: select field %q has no options", subID, field.ID)
		}
	case FieldTypeRepeater:
		if len(field.SubFields) == 0 {
			return fmt.Errorf("schema: submodule %q: repeater field %q has no sub-fields", subID, field.ID)
		}
		for _, sf := range field.SubFields {
			if sf.ID == "" {
				return fmt.Errorf("submodule %q: repeater %q: %w", subID, field.ID, errFieldIDMissing)
			}
			if sf.IsRepeater() {
				return fmt.Errorf("schema: submodule %q: repeater %q nests repeater %q", subID, field.ID, sf.ID)
			}
		}
	}

	if field.ShowIf != nil {
		if field.ShowIf.Field == "" {
			return fmt.Errorf("schema: submodule %q: field %q has a showIf without a field reference", subID, field.ID)
		}
		if _, ok := siblings[field.ShowIf.Field]; !ok {
			return fmt.Errorf("schema: submodule %q: field %q showIf references unknown field %q", subID, field.ID, field.ShowIf.Field)
		}
		if field.ShowIf.Value == "" && len(field.ShowIf.Values) == 0 {
			return fmt.Errorf("schema: submodule %q: field %q showIf has no accepted value", subID, field.ID)
		}
	}
	return nil
}
