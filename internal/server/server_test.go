package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/muurk/deckcalc/internal/config"
	"github.com/muurk/deckcalc/internal/estimate"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	cfg := config.Default()
	return NewRouter(cfg, estimate.NewCalculator(cfg.Materials, cfg.Limits))
}

func postJSON(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, r http.Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" || body["version"] == "" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestIndex(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Floating Deck Calculator") {
		t.Error("page title missing")
	}
	for _, id := range []string{
		"deckForm", "length", "width", "use2x6", "results", "deckBoards",
		"deckBoardsLinearFeet", "baseWood", "framingInfo", "screws",
		"fastenersList", "fasteners",
	} {
		if !strings.Contains(body, `id="`+id+`"`) {
			t.Errorf("element id %q missing", id)
		}
	}
	if !strings.Contains(body, `<section id="results" hidden>`) {
		t.Error("results should be hidden before a calculation")
	}
}

func TestCalculateJSON(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBoards int
		wantLF     float64
	}{
		{"12x12", `{"length": 12, "width": 12}`, http.StatusOK, 26, 343.2},
		{"1x1", `{"length": 1, "width": 1}`, http.StatusOK, 3, 3.3},
		{"zero", `{"length": 0, "width": 0}`, http.StatusBadRequest, 0, 0},
		{"missing width", `{"length": 10}`, http.StatusBadRequest, 0, 0},
		{"too long", `{"length": 101, "width": 10}`, http.StatusBadRequest, 0, 0},
		{"not JSON", `length=10`, http.StatusBadRequest, 0, 0},
		{"string dimension", `{"length": "ten", "width": 10}`, http.StatusBadRequest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}

			if tt.wantStatus != http.StatusOK {
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid JSON: %v", err)
				}
				if body["error"] == "" {
					t.Error("expected an error message")
				}
				return
			}

			var est estimate.Estimate
			if err := json.Unmarshal(w.Body.Bytes(), &est); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if est.DeckBoards != tt.wantBoards {
				t.Errorf("deck_boards = %d, want %d", est.DeckBoards, tt.wantBoards)
			}
			if est.DeckBoardsLinearFeet != tt.wantLF {
				t.Errorf("deck_boards_linear_feet = %v, want %v", est.DeckBoardsLinearFeet, tt.wantLF)
			}
			if est.BoardSize != "2x8" || est.JoistSpacing != 16 {
				t.Errorf("framing = %s @ %v, want 2x8 @ 16", est.BoardSize, est.JoistSpacing)
			}
		})
	}
}

func TestCalculateJSON_Use2x6(t *testing.T) {
	w := postJSON(t, newTestRouter(), `{"length": 12, "width": 12, "use2x6": true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var est estimate.Estimate
	if err := json.Unmarshal(w.Body.Bytes(), &est); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if est.BoardSize != "2x6" || est.JoistSpacing != 12 {
		t.Errorf("framing = %s @ %v, want 2x6 @ 12", est.BoardSize, est.JoistSpacing)
	}
	if len(est.Fasteners) == 0 || est.Fasteners[0].Name != estimate.ScrewFastenerName {
		t.Errorf("fasteners = %+v", est.Fasteners)
	}
}

func TestCalculateForm(t *testing.T) {
	r := newTestRouter()

	w := postForm(t, r, url.Values{"length": {"12"}, "width": {"12"}, "use2x6": {"on"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		`<strong id="deckBoards">26</strong>`,
		`<span id="deckBoardsLinearFeet">343.2</span>`,
		"Joist Hangers — ",
		"checked",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, `<section id="results" hidden>`) {
		t.Error("results should be visible")
	}
	if strings.Contains(body, "<li>2.5in Deck Screws") {
		t.Error("deck screws should not be listed with the other fasteners")
	}
}

func TestCalculateForm_Invalid(t *testing.T) {
	w := postForm(t, newTestRouter(), url.Values{"length": {""}, "width": {"0"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		"Please enter a valid length (minimum 1 foot)",
		"Please enter a valid width (minimum 1 foot)",
		`<section id="results" hidden>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRequestID(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter()

	// httptest requests are addressed to example.com; use another origin
	// so the request is cross-origin
	req := httptest.NewRequest(http.MethodOptions, "/calculate", nil)
	req.Header.Set("Origin", "http://decks.test")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("preflight Access-Control-Allow-Origin = %q, want *", got)
	}

	req = httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(`{"length": 12, "width": 12}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://decks.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("POST status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("POST Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestCorsConfig(t *testing.T) {
	if _, ok := corsConfig(nil); ok {
		t.Error("empty origin list should disable CORS")
	}

	cc, ok := corsConfig([]string{"*"})
	if !ok || !cc.AllowAllOrigins || len(cc.AllowOrigins) != 0 {
		t.Errorf("wildcard config = %+v", cc)
	}

	cc, ok = corsConfig([]string{"http://localhost:3000"})
	if !ok || cc.AllowAllOrigins || len(cc.AllowOrigins) != 1 {
		t.Errorf("explicit config = %+v", cc)
	}
}

func TestCheckOrigin(t *testing.T) {
	h := &handlers{origins: []string{"http://localhost:3000"}}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"no origin", "", true},
		{"listed", "http://localhost:3000", true},
		{"same host", "http://deck.local:5000", true},
		{"foreign", "http://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://deck.local:5000/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if got := h.checkOrigin(req); got != tt.want {
				t.Errorf("checkOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWebSocket(t *testing.T) {
	ts := httptest.NewServer(newTestRouter())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"length": 12, "width": 12}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var est estimate.Estimate
	if err := conn.ReadJSON(&est); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if est.DeckBoards != 26 {
		t.Errorf("deck_boards = %d, want 26", est.DeckBoards)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"length": 0, "width": 12}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var reply wsError
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(reply.Error, "length") {
		t.Errorf("error = %q, want a length error", reply.Error)
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	srv, err := New(config.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}

	errChan := make(chan error, 1)
	go func() { errChan <- srv.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if err := <-errChan; err != nil {
		t.Errorf("Serve() error = %v", err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 0
	if _, err := New(cfg); err == nil {
		t.Error("New() should reject an invalid config")
	}
}

func TestAddr(t *testing.T) {
	if got := Addr(config.ServerConfig{Port: 5000}); got != ":5000" {
		t.Errorf("Addr() = %q, want :5000", got)
	}
	if got := Addr(config.ServerConfig{Host: "::1", Port: 8080}); got != "[::1]:8080" {
		t.Errorf("Addr() = %q, want [::1]:8080", got)
	}
}
