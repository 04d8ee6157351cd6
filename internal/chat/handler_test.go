package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(remote *fakeAI) http.Handler {
	var svc Service
	if remote == nil {
		svc = NewService(NewMemoryRepo(), nil, testEngine(), quietLogger())
	} else {
		svc = NewService(NewMemoryRepo(), remote, testEngine(), quietLogger())
	}
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		RegisterRoutes(r, NewHandler(svc))
	})
	return r
}

func TestHandleChatBlankMessage(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(`{"message":"   "}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	_ = json.NewDecoder(w.Body).Decode(&body)
	if body["error"] != "message required" {
		t.Fatalf("expected message required, got %v", body)
	}
}

func TestHandleChatInvalidJSON(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(`{`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleChatRemoteThenHistory(t *testing.T) {
	router := newTestRouter(&fakeAI{reply: "Hello from the model"})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat",
		strings.NewReader(`{"message":"hi","persona":"jannu","tone":"friendly","session_id":"abc"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp chatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reply != "Hello from the model" || resp.Source != SourceAI || resp.SessionID != "abc" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/ai/chat/abc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var msgs []Message
	if err := json.NewDecoder(w.Body).Decode(&msgs); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Text != "hi" {
		t.Fatalf("unexpected transcript: %+v", msgs)
	}
}

func TestHandleHistoryUnknownSession(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/ai/chat/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %d %q", w.Code, w.Body.String())
	}
}

func TestHandleAssistantReply(t *testing.T) {
	router := newTestRouter(nil)

	body := `{"message":"Suggest a laptop under 1500","context":{"cart":[]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/reply", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Reply  string `json:"reply"`
		Intent string `json:"intent"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Intent != "laptop" {
		t.Fatalf("expected laptop intent, got %q", resp.Intent)
	}
	if !strings.Contains(resp.Reply, "Premium Ultrabook (€1299)") {
		t.Fatalf("expected ultrabook in reply, got %q", resp.Reply)
	}
}

func TestHandleAssistantReplyEmptyMessage(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/reply", strings.NewReader(`{"message":""}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp struct {
		Reply  string `json:"reply"`
		Intent string `json:"intent"`
	}
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if w.Code != http.StatusOK || resp.Reply == "" || resp.Intent != "fallback" {
		t.Fatalf("expected fallback reply, got %d %+v", w.Code, resp)
	}
}

func TestHandleAssistantReplyLenientCart(t *testing.T) {
	router := newTestRouter(nil)

	body := `{"message":"what's in my cart","context":{"cart":[{"title":"X","price":"10","qty":"2"},{"title":"Y","price":"n/a"}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/reply", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Reply  string `json:"reply"`
		Intent string `json:"intent"`
	}
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if resp.Intent != "cart" || !strings.Contains(resp.Reply, "X x2 @ €10") {
		t.Fatalf("expected cart summary with parsed line, got %+v", resp)
	}
}
