// Package document is a file-backed design document that serves as a rename
// host.
//
// Import path: github.com/erraggy/namekit/document
//
// A document lists pages of component nodes, local styles grouped by kind, and
// local variables. It can be read from and written back to YAML or JSON:
//
//	name: Design System
//	currentPage: "0:1"
//	pages:
//	  - id: "0:1"
//	    name: Buttons
//	    components:
//	      - id: "1:2"
//	        name: button/primary
//	        type: COMPONENT
//	      - id: "1:3"
//	        name: Icon Button
//	        type: COMPONENT_SET
//	        children:
//	          - {id: "1:4", name: "size=small", type: COMPONENT}
//	styles:
//	  color:
//	    - {id: "S:1", name: brand primary}
//	  text:
//	    - {id: "S:2", name: Heading Large}
//	variables:
//	  - {id: "V:1", name: spacing-md, type: FLOAT, collection: Tokens}
//
// [*Document] implements bridge.Host: Items lists the elements of a category
// and Rename applies a batch of renames in memory. Call [Document.Save] to
// persist them.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/erraggy/namekit/bridge"
	"github.com/erraggy/namekit/element"
	"github.com/erraggy/namekit/internal/fileutil"
	"github.com/erraggy/namekit/nkerrors"
	"github.com/erraggy/namekit/preview"
	"go.yaml.in/yaml/v4"
)

// Locations reported for document-wide elements.
const (
	locationColor     = "Styles"
	locationText      = "Typography"
	locationEffect    = "Effects"
	locationGrid      = "Grids"
	locationVariables = "Variables"
)

// Document is a design document. It is safe for concurrent use once loaded.
type Document struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// CurrentPage is the id or name of the page searched for the
	// CurrentPage scope. Empty means the first page.
	CurrentPage string     `yaml:"currentPage,omitempty" json:"currentPage,omitempty"`
	Pages       []Page     `yaml:"pages,omitempty" json:"pages,omitempty"`
	Styles      Styles     `yaml:"styles,omitempty" json:"styles,omitempty"`
	Variables   []Variable `yaml:"variables,omitempty" json:"variables,omitempty"`

	mu     sync.RWMutex
	format SourceFormat
}

// Page is a top-level canvas.
type Page struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Components []Node `yaml:"components,omitempty" json:"components,omitempty"`
}

// Node is a scene node. Only COMPONENT and COMPONENT_SET nodes are listed
// as items, but any node can be renamed by id and its children are searched.
type Node struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type,omitempty" json:"type,omitempty"`
	Children []Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// nodeType returns the node's type; nodes without one are components.
func (n Node) nodeType() string {
	if n.Type == "" {
		return element.SubtypeComponent
	}
	return strings.ToUpper(n.Type)
}

// Styles groups local styles by kind.
type Styles struct {
	Color  []Style `yaml:"color,omitempty" json:"color,omitempty"`
	Text   []Style `yaml:"text,omitempty" json:"text,omitempty"`
	Effect []Style `yaml:"effect,omitempty" json:"effect,omitempty"`
	Grid   []Style `yaml:"grid,omitempty" json:"grid,omitempty"`
}

// Style is a local style.
type Style struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Variable is a local variable. Type is the resolved type: COLOR, FLOAT,
// BOOLEAN or STRING.
type Variable struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Type       string `yaml:"type,omitempty" json:"type,omitempty"`
	Collection string `yaml:"collection,omitempty" json:"collection,omitempty"`
}

// subtype maps the resolved type to the item subtype.
func (v Variable) subtype() string {
	switch strings.ToUpper(v.Type) {
	case "COLOR":
		return element.SubtypeColor
	case "FLOAT":
		return element.SubtypeNumber
	case "BOOLEAN":
		return element.SubtypeBool
	default:
		return element.SubtypeString
	}
}

var _ bridge.Host = (*Document)(nil)

// Load reads a document from path. The format is taken from the file
// extension, or sniffed from the content when the extension is unknown.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user on purpose
	if err != nil {
		return nil, fmt.Errorf("document: failed to read %s: %w", path, err)
	}
	doc, err := Parse(data, detectFormatFromPath(path))
	if err != nil {
		var pe *nkerrors.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse decodes a document. Pass SourceFormatUnknown to sniff the format.
func Parse(data []byte, format SourceFormat) (*Document, error) {
	if format == SourceFormatUnknown || format == "" {
		format = detectFormatFromContent(data)
	}
	if format == SourceFormatUnknown {
		return nil, &nkerrors.ParseError{Message: "empty document"}
	}

	doc := &Document{}
	var err error
	if format == SourceFormatJSON {
		err = json.Unmarshal(data, doc)
	} else {
		err = yaml.Unmarshal(data, doc)
	}
	if err != nil {
		return nil, &nkerrors.ParseError{Format: string(format), Message: "decoding design document", Cause: err}
	}
	doc.format = format
	return doc, nil
}

// Format returns the format the document was parsed from.
func (d *Document) Format() SourceFormat {
	if d.format == "" {
		return SourceFormatUnknown
	}
	return d.format
}

// Encode serializes the document. JSON output is indented; any other format
// produces YAML.
func (d *Document) Encode(format SourceFormat) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if format == SourceFormatJSON {
		return json.MarshalIndent(d, "", "  ")
	}
	return yaml.Marshal(d)
}

// Save writes the document to path. The format follows the extension of
// path, falling back to the format the document was parsed from.
func (d *Document) Save(path string) error {
	format := detectFormatFromPath(path)
	if format == SourceFormatUnknown {
		format = d.Format()
	}
	data, err := d.Encode(format)
	if err != nil {
		return fmt.Errorf("document: failed to marshal document: %w", err)
	}
	if err := fileutil.RejectSymlink(path); err != nil {
		return fmt.Errorf("document: %w", err)
	}
	if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("document: failed to write %s: %w", path, err)
	}
	return nil
}

// Items lists the elements of category c in document order. Scope only
// applies to components; styles and variables are document-wide.
func (d *Document) Items(ctx context.Context, c element.Category, scope element.Scope) ([]element.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	switch c {
	case element.Component:
		pages, err := d.searchPages(scope)
		if err != nil {
			return nil, err
		}
		var items []element.Item
		for _, p := range pages {
			items = collectComponents(items, p.Components, p.Name)
		}
		return items, nil
	case element.Style:
		var items []element.Item
		items = appendStyles(items, d.Styles.Color, element.SubtypeColor, locationColor)
		items = appendStyles(items, d.Styles.Text, element.SubtypeText, locationText)
		items = appendStyles(items, d.Styles.Effect, element.SubtypeEffect, locationEffect)
		items = appendStyles(items, d.Styles.Grid, element.SubtypeGrid, locationGrid)
		return items, nil
	case element.Variable:
		items := make([]element.Item, 0, len(d.Variables))
		for _, v := range d.Variables {
			loc := v.Collection
			if loc == "" {
				loc = locationVariables
			}
			items = append(items, element.Item{ID: v.ID, Name: v.Name, Category: element.Variable, Subtype: v.subtype(), Location: loc})
		}
		return items, nil
	}
	return nil, &nkerrors.ConfigError{Option: "category", Value: int(c), Message: "unknown category"}
}

func (d *Document) searchPages(scope element.Scope) ([]Page, error) {
	if scope == element.AllPages || len(d.Pages) == 0 {
		return d.Pages, nil
	}
	if d.CurrentPage == "" {
		return d.Pages[:1], nil
	}
	for i, p := range d.Pages {
		if p.ID == d.CurrentPage || p.Name == d.CurrentPage {
			return d.Pages[i : i+1], nil
		}
	}
	return nil, &nkerrors.NotFoundError{ID: d.CurrentPage, Category: "PAGE"}
}

func collectComponents(items []element.Item, nodes []Node, page string) []element.Item {
	for _, n := range nodes {
		switch t := n.nodeType(); t {
		case element.SubtypeComponent, element.SubtypeComponentSet:
			items = append(items, element.Item{ID: n.ID, Name: n.Name, Category: element.Component, Subtype: t, Location: page})
		}
		items = collectComponents(items, n.Children, page)
	}
	return items
}

func appendStyles(items []element.Item, styles []Style, subtype, location string) []element.Item {
	for _, s := range styles {
		items = append(items, element.Item{ID: s.ID, Name: s.Name, Category: element.Style, Subtype: subtype, Location: location})
	}
	return items
}

// Rename applies changes best-effort. Ids that do not resolve to an element of
// category c are reported as failures. Components are looked up on every page
// regardless of scope.
func (d *Document) Rename(ctx context.Context, c element.Category, _ element.Scope, changes []preview.Change) (bridge.Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var res bridge.Result
	for _, ch := range changes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		name := d.lookup(c, ch.ID)
		if name == nil {
			nf := &nkerrors.NotFoundError{ID: ch.ID, Category: c.String()}
			res.Failures = append(res.Failures, bridge.Failure{ID: ch.ID, Reason: nf.Error()})
			continue
		}
		*name = ch.Name
		res.Renamed++
	}
	return res, nil
}

// lookup returns a pointer to the name of the element with id, or nil.
func (d *Document) lookup(c element.Category, id string) *string {
	switch c {
	case element.Component:
		for i := range d.Pages {
			if n := findNode(d.Pages[i].Components, id); n != nil {
				return &n.Name
			}
		}
	case element.Style:
		for _, group := range [][]Style{d.Styles.Color, d.Styles.Text, d.Styles.Effect, d.Styles.Grid} {
			for i := range group {
				if group[i].ID == id {
					return &group[i].Name
				}
			}
		}
	case element.Variable:
		for i := range d.Variables {
			if d.Variables[i].ID == id {
				return &d.Variables[i].Name
			}
		}
	}
	return nil
}

func findNode(nodes []Node, id string) *Node {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
		if n := findNode(nodes[i].Children, id); n != nil {
			return n
		}
	}
	return nil
}
