// Package formdata holds the flat field-identifier -> value mapping that
// every rendering component consumes. Scalar fields map to strings and
// repeating-group fields map to ordered lists of fixed-shape records.
// Absent keys behave exactly like empty strings; no accessor ever fails on
// a missing identifier.
package formdata

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Entry is one record of a repeating-group field. Records are fixed-shape:
// Normalize fills every sub-field key with an empty string so downstream
// code never distinguishes "absent" from "empty".
type Entry map[string]string

// Get returns the sub-field value, or "" when absent.
func (e Entry) Get(id string) string {
	if e == nil {
		return ""
	}
	return e[id]
}

// Data is the form data store for one open document type. It is created
// empty, mutated field-by-field on input events, and replaced wholesale on
// navigation. It is never persisted locally.
type Data struct {
	values  map[string]string
	entries map[string][]Entry
}

// New returns an empty store.
func New() *Data {
	return &Data{
		values:  make(map[string]string),
		entries: make(map[string][]Entry),
	}
}

// Get returns the scalar value for id, or "" when the field is absent.
func (d *Data) Get(id string) string {
	if d == nil {
		return ""
	}
	return d.values[id]
}

// Set stores a scalar value. Setting "" keeps the key present but is
// indistinguishable from deleting it as far as resolution is concerned.
func (d *Data) Set(id, value string) {
	if d == nil {
		return
	}
	d.values[id] = value
}

// Entries returns the ordered records of a repeating-group field. The
// result is nil for scalar or absent identifiers.
func (d *Data) Entries(id string) []Entry {
	if d == nil {
		return nil
	}
	return d.entries[id]
}

// SetEntries replaces the record list of a repeating-group field.
func (d *Data) SetEntries(id string, entries []Entry) {
	if d == nil {
		return
	}
	d.entries[id] = entries
}

// AppendEntry adds one record to the end of a repeating-group field.
func (d *Data) AppendEntry(id string, entry Entry) {
	if d == nil {
		return
	}
	d.entries[id] = append(d.entries[id], entry)
}

// Empty reports whether no field carries a non-empty value. Mirrors the
// "has data" gate that enables the copy/download controls.
func (d *Data) Empty() bool {
	if d == nil {
		return true
	}
	for _, v := range d.values {
		if v != "" {
			return false
		}
	}
	for _, list := range d.entries {
		if len(list) > 0 {
			return false
		}
	}
	return true
}

// Reset clears every field, returning the store to its just-opened state.
func (d *Data) Reset() {
	if d == nil {
		return
	}
	d.values = make(map[string]string)
	d.entries = make(map[string][]Entry)
}

// Clone returns an independent deep copy of the store.
func (d *Data) Clone() *Data {
	out := New()
	if d == nil {
		return out
	}
	for k, v := range d.values {
		out.values[k] = v
	}
	for k, list := range d.entries {
		copied := make([]Entry, len(list))
		for i, entry := range list {
			dup := make(Entry, len(entry))
			for sk, sv := range entry {
				dup[sk] = sv
			}
			copied[i] = dup
		}
		out.entries[k] = copied
	}
	return out
}

// Keys returns every scalar identifier currently present, sorted.
func (d *Data) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromMap builds a store from a generic decoded-JSON payload: strings stay
// scalars, lists of objects become repeating-group entries, and everything
// else is stringified. This is the shape the HTTP handlers and the ticketing
// backend exchange.
func FromMap(raw map[string]any) *Data {
	d := New()
	for key, value := range raw {
		switch typed := value.(type) {
		case nil:
			d.Set(key, "")
		case string:
			d.Set(key, typed)
		case []any:
			entries := make([]Entry, 0, len(typed))
			for _, item := range typed {
				record, ok := item.(map[string]any)
				if !ok {
					continue
				}
				entry := make(Entry, len(record))
				for sk, sv := range record {
					entry[sk] = stringify(sv)
				}
				entries = append(entries, entry)
			}
			d.SetEntries(key, entries)
		default:
			d.Set(key, stringify(typed))
		}
	}
	return d
}

// ToMap flattens the store back into a JSON-ready payload.
func (d *Data) ToMap() map[string]any {
	out := make(map[string]any)
	if d == nil {
		return out
	}
	for k, v := range d.values {
		out[k] = v
	}
	for k, list := range d.entries {
		records := make([]map[string]string, len(list))
		for i, entry := range list {
			records[i] = map[string]string(entry)
		}
		out[k] = records
	}
	return out
}

// MarshalJSON serialises the store as a flat object.
func (d *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

// UnmarshalJSON replaces the store contents from a flat object.
func (d *Data) UnmarshalJSON(raw []byte) error {
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	replacement := FromMap(decoded)
	d.values = replacement.values
	d.entries = replacement.entries
	return nil
}

func stringify(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		// JSON numbers decode as float64; drop the fraction when whole.
		if typed == float64(int64(typed)) {
			return fmt.Sprintf("%d", int64(typed))
		}
		return fmt.Sprintf("%v", typed)
	case bool:
		if typed {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", typed)
	}
}
