package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Catalog holds one dictionary per supported language.
type Catalog struct {
	dicts map[Language]*Dictionary
}

// Embedded loads the dictionaries compiled into the binary.
func Embedded() (*Catalog, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("opening embedded locales: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir loads <lang>.json files from dir.
func LoadDir(dir string) (*Catalog, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("accessing locales dir %s: %w", dir, err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS loads every <lang>.json at the root of fsys. Files for unknown
// languages are ignored; a missing or malformed dictionary for a supported
// language is an error.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	matches, err := doublestar.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("listing locales: %w", err)
	}

	c := &Catalog{dicts: make(map[Language]*Dictionary, len(Supported))}
	for _, name := range matches {
		lang, err := ParseLanguage(strings.TrimSuffix(path.Base(name), ".json"))
		if err != nil {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		dict, err := ParseDictionary(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		c.dicts[lang] = dict
	}

	for _, lang := range Supported {
		if _, ok := c.dicts[lang]; !ok {
			return nil, fmt.Errorf("no dictionary for %q", lang)
		}
	}
	return c, nil
}

// Get returns the dictionary for lang.
func (c *Catalog) Get(lang Language) (*Dictionary, bool) {
	d, ok := c.dicts[lang]
	return d, ok
}

// Problem is a key that does not resolve to a non-empty string in one
// language.
type Problem struct {
	Language Language
	Key      string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: missing %q", p.Language, p.Key)
}

// Check reports every key that is missing or empty in any supported
// dictionary.
func (c *Catalog) Check(keys []string) []Problem {
	var problems []Problem
	for _, lang := range Supported {
		dict := c.dicts[lang]
		for _, key := range keys {
			if s, ok := dict.Resolve(key); !ok || strings.TrimSpace(s) == "" {
				problems = append(problems, Problem{Language: lang, Key: key})
			}
		}
	}
	return problems
}
