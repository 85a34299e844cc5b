package markup

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Resolver looks up a translation key. *i18n.Dictionary implements it.
type Resolver interface {
	Resolve(path string) (string, bool)
}

// ApplyAll writes the resolved value of every data-i18n element. Input and
// textarea elements receive it as placeholder, all others as their text.
// Keys that do not resolve to a non-empty string leave the element as it
// is. It returns the number of elements written.
func (d *Document) ApplyAll(r Resolver) int {
	if r == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	applied := 0
	walk(d.root, func(n *html.Node) {
		key, ok := getAttr(n, AttrI18n)
		if !ok || key == "" {
			return
		}
		val, ok := r.Resolve(key)
		if !ok || val == "" {
			return
		}
		if isInputLike(n) {
			setAttr(n, "placeholder", val)
		} else {
			setText(n, val)
		}
		applied++
	})
	return applied
}

// Keys returns every data-i18n key in document order, without duplicates.
func (d *Document) Keys() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	seen := make(map[string]bool)
	var keys []string
	walk(d.root, func(n *html.Node) {
		key, ok := getAttr(n, AttrI18n)
		if !ok || key == "" || seen[key] {
			return
		}
		seen[key] = true
		keys = append(keys, key)
	})
	return keys
}

func isInputLike(n *html.Node) bool {
	return n.DataAtom == atom.Input || n.DataAtom == atom.Textarea
}
