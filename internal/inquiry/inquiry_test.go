package inquiry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wassat/website/internal/db"
	"github.com/wassat/website/internal/i18n"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func testSubjects(t *testing.T) Subjects {
	t.Helper()
	cat, err := i18n.Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	return CatalogSubjects(cat)
}

func validSubmission() Submission {
	return Submission{
		Lang:    "en",
		Name:    "  Dr. Jane Roe ",
		Email:   "jane@example.org",
		Subject: "2",
		Message: "I would like a second opinion on a CT finding.",
	}
}

func TestValidate(t *testing.T) {
	subjects := testSubjects(t)

	in, err := Validate(validSubmission(), subjects)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if in.Name != "Dr. Jane Roe" {
		t.Errorf("Name = %q, want trimmed", in.Name)
	}
	if in.Language != i18n.English {
		t.Errorf("Language = %q, want en", in.Language)
	}
	if in.Subject != subjects(i18n.English)[2] {
		t.Errorf("Subject = %q, want %q", in.Subject, subjects(i18n.English)[2])
	}
}

func TestValidateSubjects(t *testing.T) {
	subjects := testSubjects(t)
	german := subjects(i18n.German)
	if len(german) == 0 {
		t.Fatal("no German subjects in the catalog")
	}

	tests := []struct {
		name    string
		lang    string
		subject string
		want    string
	}{
		{"index", "de", "0", german[0]},
		{"text", "de", strings.ToUpper(german[1]), german[1]},
		{"out of range", "de", "99", SubjectOther},
		{"free text", "de", "Something else", SubjectOther},
		{"unknown language falls back", "fr", "0", german[0]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			s.Lang, s.Subject = tt.lang, tt.subject
			in, err := Validate(s, subjects)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if in.Subject != tt.want {
				t.Errorf("Subject = %q, want %q", in.Subject, tt.want)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	subjects := testSubjects(t)

	tests := []struct {
		name   string
		modify func(*Submission)
	}{
		{"missing name", func(s *Submission) { s.Name = "   " }},
		{"long name", func(s *Submission) { s.Name = strings.Repeat("a", MaxNameLength+1) }},
		{"missing email", func(s *Submission) { s.Email = "" }},
		{"bad email", func(s *Submission) { s.Email = "not-an-address" }},
		{"display name email", func(s *Submission) { s.Email = "Jane <jane@example.org>" }},
		{"missing message", func(s *Submission) { s.Message = "" }},
		{"long message", func(s *Submission) { s.Message = strings.Repeat("ü", MaxMessageLength+1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.modify(&s)
			if _, err := Validate(s, subjects); !errors.Is(err, ErrInvalidInquiry) {
				t.Errorf("Validate error = %v, want ErrInvalidInquiry", err)
			}
		})
	}
}

func TestStoreCreateListCount(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		_, err := store.Create(ctx, Inquiry{
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Language:  i18n.German,
			Name:      name,
			Email:     name + "@example.org",
			Subject:   SubjectOther,
			Message:   "hello",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}

	all, err := store.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].Name != "third" {
		t.Fatalf("List = %+v, want newest first", all)
	}
	if !all[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("CreatedAt = %v, want %v", all[0].CreatedAt, base.Add(2*time.Hour))
	}
	if all[0].ID == "" {
		t.Error("expected a generated ID")
	}

	since := base.Add(time.Hour)
	recent, err := store.List(ctx, ListFilter{Since: &since, Limit: 1})
	if err != nil {
		t.Fatalf("List since: %v", err)
	}
	if len(recent) != 1 || recent[0].Name != "third" {
		t.Errorf("List since = %+v, want only third", recent)
	}
}

func newRouter(t *testing.T) (*Store, http.Handler) {
	t.Helper()
	store := setupStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store, testSubjects(t), nil)
	return store, r
}

func TestHandleCreateForm(t *testing.T) {
	store, router := newRouter(t)

	form := url.Values{
		"lang":    {"de"},
		"name":    {"Max Mustermann"},
		"email":   {"max@example.at"},
		"subject": {"1"},
		"message": {"Bitte um Rückruf."},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/?contact=sent&lang=de#contact" {
		t.Errorf("Location = %q", loc)
	}
	if n, _ := store.Count(context.Background()); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}

	form.Set("email", "broken")
	req = httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/?contact=failed&lang=de#contact" {
		t.Errorf("Location = %q", loc)
	}
}

func TestHandleCreateJSON(t *testing.T) {
	store, router := newRouter(t)

	body, _ := json.Marshal(validSubmission())
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["status"] != "sent" || resp["id"] == "" {
		t.Errorf("response = %v", resp)
	}

	list, err := store.List(context.Background(), ListFilter{})
	if err != nil || len(list) != 1 {
		t.Fatalf("List = %v, %v", list, err)
	}
	if list[0].RemoteAddr == "" {
		t.Error("expected the remote address to be recorded")
	}

	req = httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}
