package page

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wassat/website/internal/chat"
	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/language"
)

// maxEventBody bounds a posted event batch.
const maxEventBody = 256 << 10

// Handler serves the page views over HTTP.
type Handler struct {
	registry *Registry
	logger   *slog.Logger
}

// NewHandler creates a Handler. logger may be nil.
func NewHandler(registry *Registry, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{registry: registry, logger: logger}
}

// RegisterRoutes mounts the page routes onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleNew)
	r.Get("/pages/{id}", h.handlePage)
	r.Get("/api/pages/{id}", h.handleState)
	r.Post("/api/pages/{id}/events", h.handleEvents)
	r.Post("/api/pages/{id}/language", h.handleLanguage)
	r.Post("/api/pages/{id}/chat", h.handleChat)
}

// RegisterSocketRoutes mounts the websocket endpoint. It is kept apart
// from RegisterRoutes so it can live outside request timeouts.
func (h *Handler) RegisterSocketRoutes(r chi.Router) {
	r.Get("/ws/pages/{id}", h.handleWebSocket)
}

// eventsRequest is the body of the events endpoint.
type eventsRequest struct {
	Events []Event `json:"events"`
}

// patchResponse answers every mutating endpoint.
type patchResponse struct {
	Patch Patch `json:"patch"`
	State State `json:"state"`
}

type languageRequest struct {
	Lang string `json:"lang"`
}

type languageResponse struct {
	Result language.Result `json:"result"`
	Error  string          `json:"error,omitempty"`
	Patch  Patch           `json:"patch"`
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatResponse struct {
	Outcome chat.Outcome `json:"outcome"`
	Error   string       `json:"error,omitempty"`
	Patch   Patch        `json:"patch"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	pref := i18n.PreferenceFromHeader(r.Header.Get("Accept-Language"))
	if q := r.URL.Query().Get("lang"); q != "" {
		pref = q
	}
	contact := r.URL.Query().Get("contact")
	if contact != "sent" && contact != "failed" {
		contact = ""
	}

	p, err := h.registry.Create(r.Context(), CreateOptions{Preference: pref, Contact: contact})
	if err != nil {
		h.logger.Error("creating page view", "error", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	h.renderPage(w, p)
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.renderPage(w, p)
}

func (h *Handler) renderPage(w http.ResponseWriter, p *Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := p.Document().Render(w); err != nil {
		h.logger.Error("rendering page view", "page", p.ID(), "error", err)
	}
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, p.State())
}

func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req eventsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	patch, err := p.Dispatch(r.Context(), req.Events)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, patchResponse{Patch: patch, State: p.State()})
}

func (h *Handler) handleLanguage(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req languageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	lang, err := i18n.ParseLanguage(req.Lang)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	res, patch := p.SetLanguage(r.Context(), lang)
	resp := languageResponse{Result: res, Patch: patch}
	if res.Err != nil {
		resp.Error = "translations unavailable, keeping current content"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	out, patch := p.SendChat(r.Context(), req.Prompt)
	resp := chatResponse{Outcome: out, Patch: patch}
	if out.Err != nil {
		resp.Error = "assistant unavailable"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*Page, bool) {
	p, err := h.registry.Get(chi.URLParam(r, "id"))
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "page not found"})
		return nil, false
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return nil, false
	}
	return p, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
