package page

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/site"
)

func newTestHandler(t *testing.T) (*Registry, http.Handler) {
	t.Helper()
	deps := testDeps(t, &fakeGenerator{reply: "A tumor board is an interdisciplinary conference."}, &manualClock{})
	reg := NewRegistry(NewBuilder(deps), RegistryOptions{})
	r := chi.NewRouter()
	h := NewHandler(reg, nil)
	h.RegisterRoutes(r)
	h.RegisterSocketRoutes(r)
	return reg, r
}

func createPage(t *testing.T, reg *Registry, router http.Handler, header string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Accept-Language", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, reg.Len())

	for id := range reg.pages {
		assert.Contains(t, rec.Body.String(), `data-page-id="`+id+`"`)
		return id
	}
	t.Fatal("no page created")
	return ""
}

func postJSON(router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleNewDetectsLanguage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"english browser", "en-GB,en;q=0.9", `lang="en"`},
		{"german browser", "de-AT,de;q=0.9,en;q=0.5", `lang="de"`},
		{"no header", "", `lang="de"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, router := newTestHandler(t)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.Equal(t, 1, reg.Len())
		})
	}
}

func TestHandleNewQueryOverride(t *testing.T) {
	reg, router := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/?lang=en&contact=sent", nil)
	req.Header.Set("Accept-Language", "de-DE")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[i18n.Language]int{i18n.English: 1}, reg.Languages())
}

func TestHandleEvents(t *testing.T) {
	reg, router := newTestHandler(t)
	id := createPage(t, reg, router, "de")

	rec := postJSON(router, "/api/pages/"+id+"/events", eventsRequest{Events: []Event{
		{Type: EventToggle, Target: TargetModal},
	}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp patchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.State.Overlay.ModalOpen)
	assert.True(t, resp.State.Overlay.Locked)
	_, ok := changeFor(resp.Patch, site.IDModal)
	assert.True(t, ok)

	rec = postJSON(router, "/api/pages/"+id+"/events", eventsRequest{Events: []Event{{Type: "explode"}}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/pages/"+id+"/events", strings.NewReader("{"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUnknownPage(t *testing.T) {
	_, router := newTestHandler(t)

	for _, path := range []string{"/pages/missing", "/api/pages/missing"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}

	rec := postJSON(router, "/api/pages/missing/events", eventsRequest{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleLanguage(t *testing.T) {
	reg, router := newTestHandler(t)
	id := createPage(t, reg, router, "de")

	rec := postJSON(router, "/api/pages/"+id+"/language", languageRequest{Lang: "en"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp languageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, "en", resp.Patch.Lang)
	assert.Equal(t, "About", resp.Patch.Translations["nav.about"])

	rec = postJSON(router, "/api/pages/"+id+"/language", languageRequest{Lang: "fr"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/pages/"+id, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var st State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, i18n.English, st.Language)
}

func TestHandleChat(t *testing.T) {
	reg, router := newTestHandler(t)
	id := createPage(t, reg, router, "en")

	rec := postJSON(router, "/api/pages/"+id+"/chat", chatRequest{Prompt: "What is a tumor board?"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Outcome.Sent)
	assert.Equal(t, "A tumor board is an interdisciplinary conference.", resp.Outcome.Reply.Text)
	assert.True(t, resp.Patch.ScrollChat)
	assert.Empty(t, resp.Error)
}

func TestWebSocketStreamsChatPatches(t *testing.T) {
	reg, router := newTestHandler(t)
	id := createPage(t, reg, router, "en")

	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/pages/" + id
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(socketRequest{Type: "bogus"}))
	var msg socketMessage
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)

	require.NoError(t, conn.WriteJSON(socketRequest{Type: "send", Content: "Hello"}))

	var turns int
	for turns < 2 {
		var m socketMessage
		require.NoError(t, conn.ReadJSON(&m))
		require.Equal(t, "patch", m.Type)
		require.NotNil(t, m.Patch)
		for _, c := range m.Patch.Changes {
			if c.ID == site.IDChatMessages {
				turns++
			}
		}
	}

	p, err := reg.Get(id)
	require.NoError(t, err)
	assert.Len(t, p.State().Turns, 2)
}

// scriptedReader replays messages, then fails like a closed connection.
type scriptedReader struct {
	msgs  []string
	reads int
}

func (r *scriptedReader) ReadMessage() (int, []byte, error) {
	r.reads++
	if len(r.msgs) == 0 {
		return 0, nil, io.EOF
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return websocket.TextMessage, []byte(msg), nil
}

func TestReadLoopStopsOnWriteFailure(t *testing.T) {
	reg, router := newTestHandler(t)
	id := createPage(t, reg, router, "en")
	p, err := reg.Get(id)
	require.NoError(t, err)

	writeErr := errors.New("broken pipe")
	tests := []struct {
		name string
		msgs []string
	}{
		{"invalid json", []string{"{", "{", "{"}},
		{"unknown type", []string{`{"type":"bogus"}`, `{"type":"bogus"}`}},
		{"chat patch", []string{`{"type":"send","content":"Hello"}`, `{"type":"send","content":"again"}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rd := &scriptedReader{msgs: tt.msgs}
			var sends int
			h := NewHandler(reg, nil)
			err := h.readLoop(t.Context(), p, rd, func(socketMessage) error {
				sends++
				return writeErr
			})
			assert.ErrorIs(t, err, writeErr)
			assert.Equal(t, 1, rd.reads)
			assert.Equal(t, 1, sends)
		})
	}
}

func TestReadLoopReturnsReadError(t *testing.T) {
	reg, router := newTestHandler(t)
	id := createPage(t, reg, router, "en")
	p, err := reg.Get(id)
	require.NoError(t, err)

	var sent []socketMessage
	rd := &scriptedReader{msgs: []string{`{"type":"bogus"}`}}
	err = NewHandler(reg, nil).readLoop(t.Context(), p, rd, func(m socketMessage) error {
		sent = append(sent, m)
		return nil
	})
	assert.ErrorIs(t, err, io.EOF)
	require.Len(t, sent, 1)
	assert.Equal(t, "error", sent[0].Type)
}
