// Package inquiry validates and stores messages sent through the contact
// form.
package inquiry

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wassat/website/internal/i18n"
)

// ErrInvalidInquiry is returned when a submission fails validation.
var ErrInvalidInquiry = errors.New("invalid inquiry")

// SubjectOther is stored when the subject is not one of the offered ones.
const SubjectOther = "other"

// Field limits, matching the form's maxlength attributes.
const (
	MaxNameLength    = 200
	MaxEmailLength   = 254
	MaxMessageLength = 5000
)

// Inquiry is one contact form submission.
type Inquiry struct {
	ID         string        `json:"id"`
	CreatedAt  time.Time     `json:"created_at"`
	Language   i18n.Language `json:"lang"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Subject    string        `json:"subject"`
	Message    string        `json:"message"`
	RemoteAddr string        `json:"-"`
}

// Submission is the raw form input.
type Submission struct {
	Lang    string `json:"lang"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Subjects lists the offered subjects of a language, in form order.
type Subjects func(lang i18n.Language) []string

// CatalogSubjects reads contact.subjects from the catalog.
func CatalogSubjects(cat *i18n.Catalog) Subjects {
	return func(lang i18n.Language) []string {
		dict, ok := cat.Get(lang)
		if !ok {
			return nil
		}
		n := dict.Count("contact.subjects")
		out := make([]string, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, dict.Lookup(fmt.Sprintf("contact.subjects.%d", i), ""))
		}
		return out
	}
}

// Validate normalizes s into an Inquiry. The subject may be given as an
// index into the offered subjects or as one of their texts; anything else
// is stored as SubjectOther.
func Validate(s Submission, subjects Subjects) (Inquiry, error) {
	lang, err := i18n.ParseLanguage(s.Lang)
	if err != nil {
		lang = i18n.Default
	}

	in := Inquiry{
		Language: lang,
		Name:     strings.TrimSpace(s.Name),
		Email:    strings.TrimSpace(s.Email),
		Message:  strings.TrimSpace(s.Message),
	}

	var problems []string
	switch n := utf8.RuneCountInString(in.Name); {
	case n == 0:
		problems = append(problems, "name is required")
	case n > MaxNameLength:
		problems = append(problems, fmt.Sprintf("name exceeds %d characters", MaxNameLength))
	}

	if in.Email == "" {
		problems = append(problems, "email is required")
	} else if len(in.Email) > MaxEmailLength {
		problems = append(problems, "email is too long")
	} else if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		problems = append(problems, "email is not a valid address")
	}

	switch n := utf8.RuneCountInString(in.Message); {
	case n == 0:
		problems = append(problems, "message is required")
	case n > MaxMessageLength:
		problems = append(problems, fmt.Sprintf("message exceeds %d characters", MaxMessageLength))
	}

	if len(problems) > 0 {
		return Inquiry{}, fmt.Errorf("%w: %s", ErrInvalidInquiry, strings.Join(problems, "; "))
	}

	in.Subject = resolveSubject(strings.TrimSpace(s.Subject), subjects(lang))
	return in, nil
}

func resolveSubject(raw string, offered []string) string {
	if i, err := strconv.Atoi(raw); err == nil && i >= 0 && i < len(offered) {
		return offered[i]
	}
	for _, s := range offered {
		if strings.EqualFold(s, raw) {
			return s
		}
	}
	return SubjectOther
}
