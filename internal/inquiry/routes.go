package inquiry

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// maxFormBody bounds a contact submission.
const maxFormBody = 64 << 10

// RegisterRoutes mounts POST /contact on the given router.
func RegisterRoutes(r chi.Router, store *Store, subjects Subjects, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	r.Post("/contact", handleCreate(store, subjects, logger))
}

// handleCreate accepts a JSON body, answering with JSON, or a regular form
// post, answering with a redirect back to the contact section.
func handleCreate(store *Store, subjects Subjects, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
		asJSON := isJSON(r)

		var sub Submission
		if asJSON {
			if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				redirect(w, r, "failed", "")
				return
			}
			sub = Submission{
				Lang:    r.PostFormValue("lang"),
				Name:    r.PostFormValue("name"),
				Email:   r.PostFormValue("email"),
				Subject: r.PostFormValue("subject"),
				Message: r.PostFormValue("message"),
			}
		}

		in, err := Validate(sub, subjects)
		if err != nil {
			if asJSON {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			} else {
				redirect(w, r, "failed", sub.Lang)
			}
			return
		}
		in.RemoteAddr = r.RemoteAddr

		in, err = store.Create(r.Context(), in)
		if err != nil {
			logger.Error("storing inquiry", "error", err)
			if asJSON {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "inquiry could not be stored"})
			} else {
				redirect(w, r, "failed", sub.Lang)
			}
			return
		}
		logger.Info("inquiry received", "id", in.ID, "lang", in.Language, "subject", in.Subject)

		if asJSON {
			writeJSON(w, http.StatusCreated, map[string]string{"id": in.ID, "status": "sent"})
			return
		}
		redirect(w, r, "sent", string(in.Language))
	}
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

func redirect(w http.ResponseWriter, r *http.Request, status, lang string) {
	target := "/?contact=" + status
	if lang = strings.ToLower(strings.TrimSpace(lang)); lang == "de" || lang == "en" {
		target += "&lang=" + lang
	}
	http.Redirect(w, r, target+"#contact", http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
