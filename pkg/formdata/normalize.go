package formdata

import "github.com/rodrigobarrosparreira/br-desk/pkg/schema"

// Normalize rewrites every repeating-group field declared by the submodule
// into fixed-shape records: each entry ends up with every declared sub-field
// key present, missing values as empty strings, extra keys dropped. Sparse
// entries are a UI artifact (records created but never touched); fixing the
// shape here keeps the table assemblers free of nil checks.
func Normalize(d *Data, sub schema.Submodule) {
	if d == nil {
		return
	}
	for _, field := range sub.Fields {
		if !field.IsRepeater() {
			continue
		}
		entries := d.Entries(field.ID)
		if entries == nil {
			continue
		}
		fixed := make([]Entry, len(entries))
		for i, entry := range entries {
			record := make(Entry, len(field.SubFields))
			for _, sf := range field.SubFields {
				record[sf.ID] = entry.Get(sf.ID)
			}
			fixed[i] = record
		}
		d.SetEntries(field.ID, fixed)
	}
}

// Visible reports whether a field should currently be rendered and
// editable, evaluating its showIf rule against the store.
func Visible(d *Data, field schema.Field) bool {
	if field.ShowIf == nil {
		return true
	}
	return field.ShowIf.Matches(d.Get(field.ShowIf.Field))
}
