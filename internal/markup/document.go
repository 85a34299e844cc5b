// Package markup keeps a live, parsed HTML document and binds translation
// dictionaries onto it.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attribute names read from the markup.
const (
	AttrI18n  = "data-i18n"
	AttrSpeed = "data-speed"
)

// Document is a parsed HTML page. All methods are safe for concurrent use.
type Document struct {
	mu      sync.Mutex
	root    *html.Node
	changed map[string]bool
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{root: root}, nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// String renders the document, mostly for tests and logging.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Has reports whether an element with the given id exists.
func (d *Document) Has(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.byID(id) != nil
}

// Text returns the text content of the element with the given id.
func (d *Document) Text(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return ""
	}
	return textContent(n)
}

// SetText replaces the children of the element with one text node. It
// reports whether the element exists.
func (d *Document) SetText(id, text string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return false
	}
	setText(n, text)
	d.touch(id, true)
	return true
}

// Attr returns an attribute of the element with the given id.
func (d *Document) Attr(id, key string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return "", false
	}
	return getAttr(n, key)
}

// SetAttr sets an attribute on the element with the given id.
func (d *Document) SetAttr(id, key, val string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return false
	}
	setAttr(n, key, val)
	d.touch(id, false)
	return true
}

// SetLang sets the lang attribute of the <html> element.
func (d *Document) SetLang(lang string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n := find(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Html }); n != nil {
		setAttr(n, "lang", lang)
	}
}

// Lang returns the lang attribute of the <html> element.
func (d *Document) Lang() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n := find(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Html }); n != nil {
		v, _ := getAttr(n, "lang")
		return v
	}
	return ""
}

// AddClass adds class to the element with the given id.
func (d *Document) AddClass(id, class string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return false
	}
	if !hasClass(n, class) {
		addClass(n, class)
		d.touch(id, false)
	}
	return true
}

// RemoveClass removes class from the element with the given id.
func (d *Document) RemoveClass(id, class string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return false
	}
	if hasClass(n, class) {
		removeClass(n, class)
		d.touch(id, false)
	}
	return true
}

// HasClass reports whether the element with the given id carries class.
func (d *Document) HasClass(id, class string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	return n != nil && hasClass(n, class)
}

// Element describes an element found by a query.
type Element struct {
	ID    string
	Attrs map[string]string
}

// ElementsByClass returns the elements carrying class, in document order.
func (d *Document) ElementsByClass(class string) []Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return collect(d.root, func(n *html.Node) bool { return hasClass(n, class) })
}

// ElementsWithAttr returns the elements carrying the attribute key.
func (d *Document) ElementsWithAttr(key string) []Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return collect(d.root, func(n *html.Node) bool {
		_, ok := getAttr(n, key)
		return ok
	})
}

// AppendHTML parses fragment in the context of the element with the given
// id and appends the resulting nodes to it.
func (d *Document) AppendHTML(id, fragment string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	parent := d.byID(id)
	if parent == nil {
		return fmt.Errorf("no element %q", id)
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), parent)
	if err != nil {
		return fmt.Errorf("parsing fragment: %w", err)
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
	d.touch(id, true)
	return nil
}

// ReplaceHTML replaces the children of the element with the parsed
// fragment.
func (d *Document) ReplaceHTML(id, fragment string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return fmt.Errorf("no element %q", id)
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), n)
	if err != nil {
		return fmt.Errorf("parsing fragment: %w", err)
	}
	removeChildren(n)
	for _, c := range nodes {
		n.AppendChild(c)
	}
	d.touch(id, true)
	return nil
}

// Change is an element modified since the last TakeChanges call.
type Change struct {
	ID    string            `json:"id"`
	Attrs map[string]string `json:"attrs"`
	// HTML is the new inner HTML, set only when the children changed.
	HTML *string `json:"html,omitempty"`
}

// TakeChanges returns the modified elements in document order and forgets
// them.
func (d *Document) TakeChanges() []Change {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.changed) == 0 {
		return nil
	}
	var out []Change
	walk(d.root, func(n *html.Node) {
		id, ok := getAttr(n, "id")
		if !ok {
			return
		}
		content, ok := d.changed[id]
		if !ok {
			return
		}
		delete(d.changed, id)
		c := Change{ID: id, Attrs: attrMap(n)}
		if content {
			inner := innerHTML(n)
			c.HTML = &inner
		}
		out = append(out, c)
	})
	d.changed = nil
	return out
}

// InnerHTML renders the children of the element with the given id.
func (d *Document) InnerHTML(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return "", false
	}
	return innerHTML(n), true
}

// touch records a modification. content marks a change of the children.
func (d *Document) touch(id string, content bool) {
	if d.changed == nil {
		d.changed = make(map[string]bool)
	}
	d.changed[id] = d.changed[id] || content
}

func (d *Document) byID(id string) *html.Node {
	return find(d.root, func(n *html.Node) bool { return hasID(n, id) })
}

func collect(root *html.Node, match func(*html.Node) bool) []Element {
	var out []Element
	walk(root, func(n *html.Node) {
		if !match(n) {
			return
		}
		el := Element{Attrs: attrMap(n)}
		el.ID = el.Attrs["id"]
		out = append(out, el)
	})
	return out
}
