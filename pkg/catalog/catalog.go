// Package catalog holds the operations-desk tree of departments, submodules
// and their outgoing message templates.
package catalog

import (
	"fmt"
	"sync"

	"github.com/rodrigobarrosparreira/br-desk/pkg/schema"
	"github.com/rodrigobarrosparreira/br-desk/pkg/template"
)

// Catalog pairs the validated submodule tree with the message template
// bound to each submodule.
type Catalog struct {
	tree     *schema.Catalog
	messages map[string]template.Template
}

// New builds the full desk catalogue. It fails when the declared tree is
// inconsistent or when a message template points at an unknown submodule.
func New() (*Catalog, error) {
	tree, err := schema.NewCatalog(departments())
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	msgs := messages()
	for id := range msgs {
		if _, ok := tree.Submodule(id); !ok {
			return nil, fmt.Errorf("catalog: message template for unknown submodule %q", id)
		}
	}

	return &Catalog{tree: tree, messages: msgs}, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the shared catalogue instance. The declarations in this
// package are static, so a failure here is a programming error and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := New()
		if err != nil {
			panic(err)
		}
		defaultCat = cat
	})
	return defaultCat
}

// Departments lists the full department tree.
func (c *Catalog) Departments() []schema.Department {
	return c.tree.Departments()
}

// Submodule looks up a submodule by id.
func (c *Catalog) Submodule(id string) (schema.Submodule, bool) {
	return c.tree.Submodule(id)
}

// Submodules lists every submodule across all departments.
func (c *Catalog) Submodules() []schema.Submodule {
	return c.tree.Submodules()
}

// SubmoduleByDocType finds the submodule whose form feeds the given
// document type. The boolean is false for document types without a
// catalogued form.
func (c *Catalog) SubmoduleByDocType(docType string) (schema.Submodule, bool) {
	for _, sub := range c.tree.Submodules() {
		if sub.DocType != "" && sub.DocType == docType {
			return sub, true
		}
	}
	return schema.Submodule{}, false
}

// Message returns the message template bound to a submodule. The zero
// template is returned for submodules that only produce PDF documents.
func (c *Catalog) Message(id string) (template.Template, bool) {
	t, ok := c.messages[id]
	return t, ok
}
