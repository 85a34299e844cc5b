// Package i18n holds the supported languages, the translation dictionaries
// and the key resolver used to paint the page.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the supported locale codes.
type Language string

const (
	German  Language = "de"
	English Language = "en"
)

// Default is the primary locale, used whenever a preference does not
// select the secondary one.
const Default = German

// Supported lists every language a dictionary must exist for.
var Supported = []Language{German, English}

// ErrUnknownLanguage is returned when a code is not in Supported.
var ErrUnknownLanguage = errors.New("unknown language")

// ParseLanguage maps a code such as "en" to a supported Language.
func ParseLanguage(code string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case German:
		return German, nil
	case English:
		return English, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
}

// Other returns the language the toggle switches to.
func (l Language) Other() Language {
	if l == English {
		return German
	}
	return English
}

// ShortLabel is the two-letter code shown on the toggle button.
func (l Language) ShortLabel() string {
	return strings.ToUpper(string(l))
}

// Name is the language's own name, shown in the mobile menu.
func (l Language) Name() string {
	switch l {
	case English:
		return "English"
	default:
		return "Deutsch"
	}
}

// Detect returns English iff preference starts with its ISO code, and the
// default language otherwise. An empty preference yields the default.
func Detect(preference string) Language {
	if strings.HasPrefix(strings.ToLower(preference), string(English)) {
		return English
	}
	return Default
}

// PreferenceFromHeader extracts the visitor's top preference from an
// Accept-Language header, honouring q-values. It returns "" when the
// header is empty or malformed.
func PreferenceFromHeader(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}
